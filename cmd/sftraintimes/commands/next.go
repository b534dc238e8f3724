package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/sftraintimes/arrivals"
	"github.com/theoremus-urban-solutions/sftraintimes/config"
)

func nextCmd() *cobra.Command {
	var stopID string
	cmd := &cobra.Command{
		Use:   "next",
		Short: "Print the next-train message for a stop",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Config.Transit
			visits, err := newVisitSource(cfg, newFiveElevenClient(cfg))
			if err != nil {
				return err
			}
			v, err := visits.GetUpcomingVisits(cmd.Context(), stopID)
			if err != nil {
				return err
			}
			logger.Debug("upcoming visits", "stop", stopID, "count", len(v))
			msg, err := arrivals.Message(v, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
	cmd.Flags().StringVar(&stopID, "stop", "", "stop id")
	_ = cmd.MarkFlagRequired("stop")
	return cmd
}
