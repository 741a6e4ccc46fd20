// file: cmd/serve.go
// version: 1.0.0
// guid: b297d255-8300-459f-bede-f5458097ad51

package cmd

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/jdfalk/rankcheck/internal/config"
	"github.com/jdfalk/rankcheck/internal/server"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the ranking API server",
	Long:  `Start the HTTP API that ranks keywords against posted search results.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.AppConfig.Server

		// Override with command line flags if provided
		if cmd.Flags().Changed("host") {
			cfg.Host, _ = cmd.Flags().GetString("host")
		}
		if cmd.Flags().Changed("port") {
			cfg.Port, _ = cmd.Flags().GetString("port")
		}
		if !config.DebugEnabled() {
			gin.SetMode(gin.ReleaseMode)
		}

		srv := server.NewServer(cfg, config.AppConfig.Matching)
		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().String("host", "localhost", "host to bind the API server to")
	serveCmd.Flags().String("port", "8080", "port to run the API server on")
}
