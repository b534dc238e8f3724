package formatter

import (
	"github.com/theoremus-urban-solutions/sftraintimes/alexa"
)

// Output describes what a handler wants to say. Every field is optional.
type Output struct {
	Speech      string
	CardTitle   string
	CardContent string

	// Delegate, when set, hands the dialog back to the platform to keep
	// prompting for the intent's missing slots.
	Delegate *alexa.Intent
}

// Speak is shorthand for an Output carrying only speech.
func Speak(text string) Output { return Output{Speech: text} }

// Build assembles the response envelope for o.
func Build(o Output) alexa.ResponseEnvelope {
	env := alexa.ResponseEnvelope{
		Version:           alexa.ResponseVersion,
		SessionAttributes: map[string]any{},
	}
	if o.Speech != "" {
		env.Response.OutputSpeech = &alexa.OutputSpeech{
			Type: alexa.PlainTextSpeech,
			Text: o.Speech,
		}
	}
	if o.CardTitle != "" && o.CardContent != "" {
		env.Response.Card = &alexa.Card{
			Type:    alexa.SimpleCard,
			Title:   o.CardTitle,
			Content: o.CardContent,
		}
	}
	if o.Delegate != nil {
		env.Response.Directives = []alexa.Directive{{
			Type: alexa.DialogDelegate,
			UpdatedIntent: alexa.UpdatedIntent{
				Name:               o.Delegate.Name,
				ConfirmationStatus: alexa.ConfirmationNone,
				Slots:              o.Delegate.RawSlots(),
			},
		}}
		keepOpen := false
		env.Response.ShouldEndSession = &keepOpen
	}
	return env
}
