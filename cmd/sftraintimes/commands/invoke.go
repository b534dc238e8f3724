package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/sftraintimes/alexa"
	"github.com/theoremus-urban-solutions/sftraintimes/config"
	"github.com/theoremus-urban-solutions/sftraintimes/formatter"
)

func invokeCmd() *cobra.Command {
	var eventPath string
	cmd := &cobra.Command{
		Use:   "invoke",
		Short: "Handle one event from a file (or stdin with -) and print the response",
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if eventPath != "-" {
				f, err := os.Open(eventPath)
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			var event alexa.RequestEnvelope
			if err := json.NewDecoder(r).Decode(&event); err != nil {
				return fmt.Errorf("decode event: %w", err)
			}

			h, err := newHandler(cmd.Context(), config.Config)
			if err != nil {
				return err
			}
			return formatter.EncodeEnvelope(cmd.OutOrStdout(), h.Handle(cmd.Context(), event), "  ")
		},
	}
	cmd.Flags().StringVar(&eventPath, "event", "-", "event JSON file")
	return cmd
}
