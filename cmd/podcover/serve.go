package main

import (
	"github.com/spf13/cobra"

	"github.com/mucteba/podcover/clients/server"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP cover generation API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.RunServe(servePort)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "8080", "Port to listen on")
}
