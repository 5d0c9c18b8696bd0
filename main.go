package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	cfg "github.com/maastricht-university/ohcr-dashboard/config"
	"github.com/maastricht-university/ohcr-dashboard/server"
)

func main() {
	root := &cobra.Command{
		Use:   "ohcr-dashboard",
		Short: "Analysis dashboard for OHCR classroom audio sessions",
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := cfg.Load()
			if err != nil {
				return err
			}

			log := logrus.New()
			if lvl, err := logrus.ParseLevel(conf.Log.Level); err == nil {
				log.SetLevel(lvl)
			}

			srv, err := server.New(conf, log)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"listen": conf.Server.Listen,
				"api":    conf.API.Base,
			}).Info("dashboard up")
			return srv.ListenAndServe()
		},
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
