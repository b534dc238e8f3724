package formatter

import (
	"encoding/json"
	"io"

	"github.com/theoremus-urban-solutions/sftraintimes/alexa"
)

// EncodeEnvelope writes env to w as JSON followed by a newline. A non-empty
// indent pretty-prints it.
func EncodeEnvelope(w io.Writer, env alexa.ResponseEnvelope, indent string) error {
	enc := json.NewEncoder(w)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(env)
}
