// Package pipeline drives one ingestion run: fetch each source, parse it
// with the matching adapter, normalize, submit, and record the outcome.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/kevinzuniga/soultv-cron-schedule-guide/internal/app/cms"
	"github.com/kevinzuniga/soultv-cron-schedule-guide/internal/app/config"
	"github.com/kevinzuniga/soultv-cron-schedule-guide/internal/app/fetch"
	"github.com/kevinzuniga/soultv-cron-schedule-guide/internal/app/guide"
)

// Report accumulates one run's outcome. It is passed by value up the call
// chain; there are no global counters.
type Report struct {
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
	Elapsed   time.Duration `json:"elapsed"`
}

type Runner struct {
	conf   *config.Config
	cms    *cms.Client
	logger *zap.Logger
}

func NewRunner(conf *config.Config, cmsClient *cms.Client) *Runner {
	return &Runner{
		conf:   conf,
		cms:    cmsClient,
		logger: zap.L(),
	}
}

// Run processes the CMS listing (when enabled) and every configured source
// sequentially. Failures abort only the source they belong to; the run
// always reaches its final logging step.
func (r *Runner) Run(ctx context.Context) Report {
	start := time.Now()
	var report Report

	if r.conf.ListFiles {
		files, err := r.cms.ListGuideFiles(ctx)
		if err != nil {
			r.logger.Error("Failed to fetch the guide-file listing.", zap.Error(err))
			report.Failed++
		} else {
			for _, file := range files {
				if err := r.processListedFile(ctx, file); err != nil {
					r.logger.Error("Failed to process a listed guide file.",
						zap.String("fileUrl", file.FileURL),
						zap.String("format", file.FileFormatType),
						zap.Error(err))
					report.Failed++
					continue
				}
				report.Succeeded++
			}
		}
	}

	for _, src := range r.conf.Sources {
		if err := r.processSource(ctx, src); err != nil {
			r.logger.Error("Failed to process a configured source.",
				zap.String("source", src.Name), zap.Error(err))
			report.Failed++
			continue
		}
		report.Succeeded++
	}

	report.Elapsed = time.Since(start)
	r.appendRunLog(report)
	r.logger.Info("Run completed.",
		zap.Int("succeeded", report.Succeeded),
		zap.Int("failed", report.Failed),
		zap.Duration("elapsed", report.Elapsed))
	return report
}

func (r *Runner) processListedFile(ctx context.Context, file cms.GuideFile) error {
	localPath, err := r.cms.DownloadFile(ctx, file.FileURL, r.conf.TmpDir)
	if err != nil {
		return err
	}

	adapter, err := NewAdapter(config.Source{
		Format:    file.FileFormatType,
		ChannelID: file.ID.String(),
	})
	if err != nil {
		return err
	}
	return r.convertAndSubmit(ctx, adapter, localPath)
}

func (r *Runner) processSource(ctx context.Context, src config.Source) error {
	localPath := src.Path
	var err error
	switch src.Type {
	case "http":
		localPath, err = r.cms.DownloadFile(ctx, src.Path, r.conf.TmpDir)
	case "ftp":
		localPath, err = fetch.NewFTPFetcher(*src.FTP).Fetch(ctx, r.conf.TmpDir)
	}
	if err != nil {
		return err
	}

	adapter, err := NewAdapter(src)
	if err != nil {
		return err
	}
	return r.convertAndSubmit(ctx, adapter, localPath)
}

func (r *Runner) convertAndSubmit(ctx context.Context, adapter guide.Adapter, path string) error {
	airings, err := adapter.Parse(path)
	if err != nil {
		return err
	}

	schedules := guide.Normalize(airings, r.conf.NormalizeOptions())
	if len(schedules) == 0 {
		// every airing fell below the duration threshold; nothing to send
		r.logger.Warn("No schedules survived normalization.", zap.String("file", path))
		return nil
	}

	submitStart := time.Now()
	err = r.cms.SubmitSchedules(ctx, schedules)
	r.logServiceCall(time.Since(submitStart), len(schedules))
	return err
}

// appendRunLog adds one outcome line to the append-only run log. Writes are
// short and append-only, interleaved runs are tolerated without locking.
func (r *Runner) appendRunLog(report Report) {
	line := fmt.Sprintf("successful calls: %d, failed calls: %d, elapsed: %.2f seconds\n",
		report.Succeeded, report.Failed, report.Elapsed.Seconds())
	r.appendLogLine(line)
}

// logServiceCall records one submission's duration and size.
func (r *Runner) logServiceCall(elapsed time.Duration, programCount int) {
	line := fmt.Sprintf("call duration: %.2f seconds, programs sent: %d\n",
		elapsed.Seconds(), programCount)
	r.appendLogLine(line)
}

func (r *Runner) appendLogLine(line string) {
	f, err := os.OpenFile(r.conf.RunLogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		r.logger.Warn("Failed to open the run log.", zap.Error(err))
		return
	}
	defer f.Close()

	if _, err = f.WriteString(line); err != nil {
		r.logger.Warn("Failed to write to the run log.", zap.Error(err))
	}
}
