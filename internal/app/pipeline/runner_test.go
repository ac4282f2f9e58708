package pipeline

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kevinzuniga/soultv-cron-schedule-guide/internal/app/cms"
	"github.com/kevinzuniga/soultv-cron-schedule-guide/internal/app/config"
	"github.com/kevinzuniga/soultv-cron-schedule-guide/internal/app/guide"
)

const runnerFeed = `<?xml version="1.0" encoding="UTF-8"?>
<tv>
  <programme start="20240301200000 -0300" stop="20240301220000 -0300" channel="cine.br">
    <title>Cinema</title>
  </programme>
</tv>`

func writeLocalFeed(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "guide.xml")
	if err := os.WriteFile(path, []byte(runnerFeed), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

// newTestCMS serves a one-file listing, the file itself and the submission
// endpoint, collecting every submitted batch.
func newTestCMS(t *testing.T, submitted *[][]guide.ProgramSchedule) *httptest.Server {
	t.Helper()

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/v1/brand/files/":
			resp := map[string]interface{}{
				"success": true,
				"data": []map[string]interface{}{{
					"id":               74,
					"file_url":         srv.URL + "/files/guide.xml",
					"file_format_type": "xml",
				}},
			}
			_ = json.NewEncoder(w).Encode(resp)
		case strings.HasPrefix(r.URL.Path, "/files/"):
			_, _ = w.Write([]byte(runnerFeed))
		case r.URL.Path == "/v1/program/all/":
			var batch []guide.ProgramSchedule
			if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
				t.Errorf("decoding a submission: %v", err)
			}
			*submitted = append(*submitted, batch)
			_, _ = w.Write([]byte(`{"success":true}`))
		default:
			http.NotFound(w, r)
		}
	}))
	return srv
}

func TestRunnerRun(t *testing.T) {
	var submitted [][]guide.ProgramSchedule
	srv := newTestCMS(t, &submitted)
	defer srv.Close()

	workDir := t.TempDir()
	conf := &config.Config{
		Endpoint:   srv.URL,
		ListFiles:  true,
		TmpDir:     filepath.Join(workDir, "tmp"),
		RunLogFile: filepath.Join(workDir, "service_call_log.txt"),
		Sources: []config.Source{{
			Name:      "local-feed",
			Type:      "local",
			Format:    "xml",
			ChannelID: "99",
			Path:      writeLocalFeed(t, workDir),
		}},
	}
	if err := conf.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	client, err := cms.NewClient(srv.Client(), srv.URL, "", nil)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	report := NewRunner(conf, client).Run(context.Background())
	if report.Succeeded != 2 || report.Failed != 0 {
		t.Fatalf("Run() report = %d succeeded / %d failed, want 2/0", report.Succeeded, report.Failed)
	}

	// one batch per processed file, channel ids resolved per origin
	if len(submitted) != 2 {
		t.Fatalf("CMS received %d submissions, want 2", len(submitted))
	}
	if submitted[0][0].ChannelID != "74" {
		t.Errorf("listed-file batch channel = %q, want the listing id 74", submitted[0][0].ChannelID)
	}
	if submitted[1][0].ChannelID != "99" {
		t.Errorf("configured-source batch channel = %q, want 99", submitted[1][0].ChannelID)
	}

	logContent, err := os.ReadFile(conf.RunLogFile)
	if err != nil {
		t.Fatalf("ReadFile(run log) error = %v", err)
	}
	if !strings.Contains(string(logContent), "successful calls: 2, failed calls: 0") {
		t.Errorf("run log = %q, want the outcome line", logContent)
	}
	if !strings.Contains(string(logContent), "programs sent: 1") {
		t.Errorf("run log = %q, want the per-call lines", logContent)
	}
}

func TestRunnerRunCountsFailures(t *testing.T) {
	var submitted [][]guide.ProgramSchedule
	srv := newTestCMS(t, &submitted)
	defer srv.Close()

	workDir := t.TempDir()
	conf := &config.Config{
		Endpoint:   srv.URL,
		TmpDir:     filepath.Join(workDir, "tmp"),
		RunLogFile: filepath.Join(workDir, "service_call_log.txt"),
		Sources: []config.Source{
			{
				Name:   "missing-file",
				Type:   "local",
				Format: "xml",
				Path:   filepath.Join(workDir, "absent.xml"),
			},
			{
				Name:      "good-feed",
				Type:      "local",
				Format:    "xml",
				ChannelID: "99",
				Path:      writeLocalFeed(t, workDir),
			},
		},
	}
	if err := conf.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	client, err := cms.NewClient(srv.Client(), srv.URL, "", nil)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	report := NewRunner(conf, client).Run(context.Background())
	if report.Succeeded != 1 || report.Failed != 1 {
		t.Fatalf("Run() report = %d succeeded / %d failed, want 1/1", report.Succeeded, report.Failed)
	}
	if len(submitted) != 1 {
		t.Errorf("CMS received %d submissions, want 1", len(submitted))
	}
}

func TestRunnerShortProgramsOnlyIsNotAFailure(t *testing.T) {
	var submitted [][]guide.ProgramSchedule
	srv := newTestCMS(t, &submitted)
	defer srv.Close()

	shortFeed := `<?xml version="1.0"?>
<tv>
  <programme start="20240301200000 -0300" stop="20240301201000 -0300" channel="cine.br">
    <title>Interstitial</title>
  </programme>
</tv>`

	workDir := t.TempDir()
	feedPath := filepath.Join(workDir, "short.xml")
	if err := os.WriteFile(feedPath, []byte(shortFeed), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	conf := &config.Config{
		Endpoint:   srv.URL,
		TmpDir:     filepath.Join(workDir, "tmp"),
		RunLogFile: filepath.Join(workDir, "service_call_log.txt"),
		Sources: []config.Source{{
			Name: "short-only", Type: "local", Format: "xml", ChannelID: "99", Path: feedPath,
		}},
	}
	if err := conf.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	client, err := cms.NewClient(srv.Client(), srv.URL, "", nil)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	report := NewRunner(conf, client).Run(context.Background())
	if report.Succeeded != 1 || report.Failed != 0 {
		t.Fatalf("Run() report = %d succeeded / %d failed, want 1/0", report.Succeeded, report.Failed)
	}
	if len(submitted) != 0 {
		t.Errorf("CMS received %d submissions, want none for an all-short source", len(submitted))
	}
}
