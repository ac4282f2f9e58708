package cmds

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kevinzuniga/soultv-cron-schedule-guide/internal/app/config"
	"github.com/kevinzuniga/soultv-cron-schedule-guide/internal/app/guide"
	"github.com/kevinzuniga/soultv-cron-schedule-guide/internal/app/pipeline"
)

var (
	convertFile    string
	convertFormat  string
	convertChannel string
	convertSheet   string
	convertOut     string
)

func NewConvertCLI() *cobra.Command {
	convertCmd := &cobra.Command{
		Use:   "convert",
		Short: "Parse and normalize one local guide file, writing the payload JSON without submitting.",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zap.L()

			adapter, err := pipeline.NewAdapter(config.Source{
				Format:    convertFormat,
				ChannelID: convertChannel,
				Sheet:     convertSheet,
				Path:      convertFile,
			})
			if err != nil {
				return err
			}

			airings, err := adapter.Parse(convertFile)
			if err != nil {
				return err
			}

			schedules := guide.Normalize(airings, conf.NormalizeOptions())
			if len(schedules) == 0 {
				return errors.New("no schedules survived normalization")
			}

			payload, err := json.MarshalIndent(schedules, "", "  ")
			if err != nil {
				return err
			}

			outPath := convertOut
			if outPath == "" {
				base := filepath.Base(convertFile)
				outPath = strings.TrimSuffix(base, filepath.Ext(base)) + ".json"
			}
			if err = os.WriteFile(outPath, payload, 0o644); err != nil {
				logger.Error("Failed to write the payload file.", zap.Error(err))
				return err
			}

			logger.Sugar().Infof("A total of %d programs with %d raw airings have been written to the file %s.",
				len(schedules), len(airings), outPath)

			return nil
		},
	}

	convertCmd.Flags().StringVarP(&convertFile, "file", "f", "", "path to the local guide file")
	convertCmd.Flags().StringVarP(&convertFormat, "format", "F", "", "source format, e.g. `modelo1, xls or xml`")
	convertCmd.Flags().StringVarP(&convertChannel, "channel", "c", "", "channel id for channel-scoped sources")
	convertCmd.Flags().StringVarP(&convertSheet, "sheet", "s", "", "preferred workbook sheet name")
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "", "output path, defaults to the input name with a .json extension")

	_ = convertCmd.MarkFlagRequired("file")
	_ = convertCmd.MarkFlagRequired("format")

	return convertCmd
}
