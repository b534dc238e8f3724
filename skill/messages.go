package skill

const (
	WelcomeMessage      = "Welcome to SF Train Times. You can set your home stop, or ask when the next train arrives."
	HelpMessage         = "You can say things like set my home stop, set my home line to N, or when is the next train."
	FallbackMessage     = "Sorry, I can't help with that. Try asking when the next train arrives."
	GoodbyeMessage      = "Goodbye."
	SetStopByIDMessage  = "I've set your home stop to %s."
	SetLineMessage      = "I've set your home line to %s."
	SetDirectionMessage = "I've set your direction to %s."
	NoHomeStopMessage   = "Sorry, you'll need to set your home stop before asking for train times."
	CardTitle           = "SF Train Times"
	NextTrainsCardTitle = "Next trains"
)

// Apologies spoken when a request fails.
const (
	InvalidInputApology     = "Sorry, I didn't catch that. Please try again."
	InsufficientDataApology = "Sorry, I couldn't find enough upcoming trains for your stop right now."
	GenericApology          = "Sorry, something went wrong. Please try again later."
)
