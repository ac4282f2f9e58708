package cmds

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/kevinzuniga/soultv-cron-schedule-guide/internal/app/config"
	"github.com/kevinzuniga/soultv-cron-schedule-guide/internal/pkg/logging"
	"github.com/kevinzuniga/soultv-cron-schedule-guide/internal/pkg/util"
)

var (
	cfgFile string

	conf *config.Config
)

func init() {
	cobra.OnInitialize(initConfig)
}

func NewRootCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "soultv",
		Short:         "Ingest broadcaster guide files and submit normalized schedules to the CMS.",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.AddCommand(NewRunCLI())
	rootCmd.AddCommand(NewConvertCLI())
	rootCmd.AddCommand(NewServeCLI())
	rootCmd.AddCommand(NewKeyCLI())
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to the YAML config file")

	return rootCmd
}

// initConfig loads the config file and sets up the global logger.
func initConfig() {
	var err error
	var fPath string

	if cfgFile != "" {
		fPath = cfgFile
	} else {
		cfgHome, err := util.GetCurrentAbPathByExecutable()
		cobra.CheckErr(err)

		fPath = filepath.Join(cfgHome, "config.yml")

		// write a default config file on first run
		if _, err = os.Stat(fPath); os.IsNotExist(err) {
			err = config.CreateDefaultCfg(fPath)
			cobra.CheckErr(err)
		}
	}

	conf, err = config.Load(fPath)
	cobra.CheckErr(err)

	lCfg := conf.Log
	if lCfg == nil {
		lCfg = &logging.LogConfig{
			Level:    zapcore.InfoLevel,
			FileName: "schedule-guide.log",
			IsStdout: true,
		}
	}
	cobra.CheckErr(logging.InitLogger(lCfg))
}
