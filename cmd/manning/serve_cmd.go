package main

import (
	"github.com/spf13/cobra"

	"github.com/dkusuma/manning/internal/server"
	"github.com/dkusuma/manning/pkg/configuration"
	"github.com/dkusuma/manning/pkg/logging"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve manning-table generation over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := configuration.Use()
			logger := logging.Setup(conf)

			srv := server.Default(&server.DefaultOptions{
				Logger:        logger,
				Configuration: conf,
			})
			logger.WithField("address", conf.SocketAddress).Info("listening")
			return srv.Start(conf.SocketAddress)
		},
	}
}
