package commands

import (
	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/sftraintimes/config"
	"github.com/theoremus-urban-solutions/sftraintimes/server"
)

func serveCmd() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve skill events over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Config
			h, err := newHandler(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if port == 0 {
				port = cfg.Server.Port
			}
			srv := server.New(port, h, server.Info{
				StoreDriver:   cfg.Store.Driver,
				VisitProvider: cfg.Transit.VisitProvider,
			}, logger)
			srv.Start()
			srv.WaitForSignal()
			return nil
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "listen port (overrides config)")
	return cmd
}
