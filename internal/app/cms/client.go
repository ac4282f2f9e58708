// Package cms talks to the content-management API: it lists the guide
// files each broadcaster uploaded, downloads them, and submits the
// normalized schedules.
package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/kevinzuniga/soultv-cron-schedule-guide/internal/app/guide"
)

var (
	// ErrRejected means the API answered without a success flag; it is
	// treated exactly like a transport failure, no retry.
	ErrRejected = errors.New("cms response without success flag")
	// ErrNoSchedules means the batch was empty and nothing was submitted.
	ErrNoSchedules = errors.New("no schedules to submit")
)

// GuideFile is one entry of the guide-file listing.
type GuideFile struct {
	ID             json.Number `json:"id"` // doubles as the channel id hint
	FileURL        string      `json:"file_url"`
	FileFormatType string      `json:"file_format_type"`
}

type listResponse struct {
	Success bool        `json:"success"`
	Data    []GuideFile `json:"data"`
}

type submitResponse struct {
	Success bool `json:"success"`
}

type Client struct {
	httpClient *http.Client
	endpoint   string            // base URL of the CMS
	headers    map[string]string // custom request headers
	auditDir   string            // outgoing payload copies land here

	logger *zap.Logger
}

func NewClient(httpClient *http.Client, endpoint, auditDir string, headers map[string]string) (*Client, error) {
	if endpoint == "" {
		return nil, errors.New("cms endpoint is empty")
	}

	c := Client{
		httpClient: httpClient,
		endpoint:   endpoint,
		headers:    headers,
		auditDir:   auditDir,
		logger:     zap.L(),
	}
	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}
	return &c, nil
}

func (c *Client) setCommonHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
}

// ListGuideFiles fetches the pending guide-file listing.
func (c *Client) ListGuideFiles(ctx context.Context) ([]GuideFile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/v1/brand/files/", nil)
	if err != nil {
		return nil, err
	}
	c.setCommonHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http status code: %d", resp.StatusCode)
	}

	var listing listResponse
	if err = json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, err
	}
	if !listing.Success {
		return nil, ErrRejected
	}
	return listing.Data, nil
}

// DownloadFile fetches one guide file into destDir and returns the local path.
func (c *Client) DownloadFile(ctx context.Context, fileURL, destDir string) (string, error) {
	parsed, err := url.Parse(fileURL)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("http status code: %d", resp.StatusCode)
	}

	if err = os.MkdirAll(destDir, 0o755); err != nil {
		return "", err
	}
	localPath := filepath.Join(destDir, path.Base(parsed.Path))
	f, err := os.Create(localPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err = io.Copy(f, resp.Body); err != nil {
		os.Remove(localPath)
		return "", err
	}
	return localPath, nil
}

// SubmitSchedules sends the whole batch in one POST. A timestamped audit
// copy is written first; the write is best-effort and never blocks the
// submission.
func (c *Client) SubmitSchedules(ctx context.Context, schedules []guide.ProgramSchedule) error {
	if len(schedules) == 0 {
		return ErrNoSchedules
	}

	payload, err := json.MarshalIndent(schedules, "", "  ")
	if err != nil {
		return err
	}

	c.writeAuditCopy(payload)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.endpoint+"/v1/program/all/", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	c.setCommonHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("http status code: %d", resp.StatusCode)
	}

	var result submitResponse
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return err
	}
	if !result.Success {
		return ErrRejected
	}

	c.logger.Info("Schedules submitted successfully.", zap.Int("programs", len(schedules)))
	return nil
}

// writeAuditCopy persists the outgoing payload for audit.
func (c *Client) writeAuditCopy(payload []byte) {
	if c.auditDir == "" {
		return
	}
	if err := os.MkdirAll(c.auditDir, 0o755); err != nil {
		c.logger.Warn("Failed to create the audit directory.", zap.Error(err))
		return
	}

	timestamp := time.Now().UTC().Format("2006-01-02T15-04-05.000Z")
	auditPath := filepath.Join(c.auditDir, fmt.Sprintf("program_data_%s.json", timestamp))
	if err := os.WriteFile(auditPath, payload, 0o644); err != nil {
		c.logger.Warn("Failed to write the audit copy.", zap.String("path", auditPath), zap.Error(err))
		return
	}
	c.logger.Info("Audit copy written.", zap.String("path", auditPath))
}
