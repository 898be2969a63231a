package cmd

import (
	"github.com/carousell/ct-go/pkg/logger/log"
	"github.com/spf13/cobra"

	"github.com/nguyentranbao-ct/dream-api/internal/app"
	"github.com/nguyentranbao-ct/dream-api/internal/server"
)

var rootCmd = &cobra.Command{
	Use:           "dream-api",
	Short:         "Dream journal API: leads, dream analysis, history and reports",
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		app.Invoke(server.StartServer).Run()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
