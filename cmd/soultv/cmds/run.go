package cmds

import (
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kevinzuniga/soultv-cron-schedule-guide/internal/app/cms"
	"github.com/kevinzuniga/soultv-cron-schedule-guide/internal/app/pipeline"
)

var httpTimeout time.Duration

func NewRunCLI() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Process every configured guide source and submit the schedules.",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zap.L()

			if err := conf.Validate(); err != nil {
				return err
			}

			cmsClient, err := cms.NewClient(&http.Client{
				Timeout: httpTimeout,
			}, conf.Endpoint, conf.AuditDir, conf.Headers)
			if err != nil {
				return err
			}

			report := pipeline.NewRunner(conf, cmsClient).Run(cmd.Context())

			logger.Sugar().Infof("Processed %d sources successfully and %d with failures in %.2f seconds.",
				report.Succeeded, report.Failed, report.Elapsed.Seconds())

			// failures are already counted and logged; the run itself
			// always completes
			return nil
		},
	}

	runCmd.Flags().DurationVarP(&httpTimeout, "timeout", "t", 60*time.Second, "timeout for each HTTP call, e.g. `60s or 2m`")

	return runCmd
}
