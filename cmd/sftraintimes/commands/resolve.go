package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/sftraintimes/config"
	"github.com/theoremus-urban-solutions/sftraintimes/dialog"
	"github.com/theoremus-urban-solutions/sftraintimes/model"
	"github.com/theoremus-urban-solutions/sftraintimes/resolver"
)

func resolveCmd() *cobra.Command {
	var line, first, second, direction string
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Look up the stop id at an intersection",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := model.ParseDirectionAny(direction)
			if err != nil {
				return err
			}
			name := dialog.StopName(first, second)
			r := resolver.NewStopResolver(newFiveElevenClient(config.Config.Transit))
			id, found, err := r.Resolve(cmd.Context(), line, name, dir)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("no %s stop named %q on line %s", dir.Word(), name, resolver.NormalizeLineID(line))
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
	cmd.Flags().StringVar(&line, "line", "", "line id, e.g. N or KT")
	cmd.Flags().StringVar(&first, "first", "", "first cross street")
	cmd.Flags().StringVar(&second, "second", "", "second cross street")
	cmd.Flags().StringVar(&direction, "direction", "IB", "IB|OB|inbound|outbound")
	_ = cmd.MarkFlagRequired("line")
	_ = cmd.MarkFlagRequired("first")
	_ = cmd.MarkFlagRequired("second")
	return cmd
}
