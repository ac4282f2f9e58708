package cmds

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kevinzuniga/soultv-cron-schedule-guide/internal/app/router"
)

var servePort int

func NewServeCLI() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP preview service for parsed and normalized guide data.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := conf.Validate(); err != nil {
				return err
			}

			r := router.NewEngine(conf)
			return r.Run(fmt.Sprintf(":%d", servePort))
		},
	}

	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "listen port of the HTTP service")

	return serveCmd
}
