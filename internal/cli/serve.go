package cli

import (
	"fmt"

	"github.com/ehrlich-b/cuberithm/internal/web"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the solver over HTTP",
	Long: `Serve starts an HTTP API over the same Driver the CLI uses: POST
/api/solve with a JSON body of initial/desired states and a move-count
range, GET /api/health for liveness.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		host, _ := cmd.Flags().GetString("host")

		fmt.Printf("Starting web server at http://%s:%s\n", host, port)

		server := web.NewServer()
		return server.Start(host + ":" + port)
	},
}

func init() {
	serveCmd.Flags().StringP("port", "p", "8080", "port to run the server on")
	serveCmd.Flags().StringP("host", "H", "localhost", "host to bind the server to")
}
