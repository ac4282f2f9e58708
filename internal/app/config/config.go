package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/kevinzuniga/soultv-cron-schedule-guide/internal/app/fetch"
	"github.com/kevinzuniga/soultv-cron-schedule-guide/internal/app/guide"
	"github.com/kevinzuniga/soultv-cron-schedule-guide/internal/pkg/logging"
)

// Source is one configured guide-file origin.
type Source struct {
	Name      string `json:"name" yaml:"name"`
	Type      string `json:"type" yaml:"type"`           // local, http or ftp
	Format    string `json:"format" yaml:"format"`       // adapter format name, e.g. modelo1, xls, xml
	ChannelID string `json:"channelId" yaml:"channelId"` // channel hint for channel-scoped sources
	Path      string `json:"path" yaml:"path"`           // local path or download URL
	Sheet     string `json:"sheet" yaml:"sheet"`         // preferred workbook sheet, optional

	ChannelMap map[string]string `json:"channelMap,omitempty" yaml:"channelMap,omitempty"` // multi-channel feeds only

	FTP *fetch.FTPOptions `json:"ftp,omitempty" yaml:"ftp,omitempty"` // required when type is ftp
	// PasswordEncrypted marks FTP.Password as a 3DES hex value produced by
	// the key command; Validate() decrypts it in place.
	PasswordEncrypted bool `json:"passwordEncrypted,omitempty" yaml:"passwordEncrypted,omitempty"`
}

type Config struct {
	Endpoint string            `json:"endpoint" yaml:"endpoint"` // required, CMS base URL
	Key      string            `json:"key" yaml:"key"`           // secret for encrypted credential values
	Headers  map[string]string `json:"headers" yaml:"headers"`   // custom HTTP request headers

	MinDurationMinutes int  `json:"minDurationMinutes" yaml:"minDurationMinutes"` // 0 means the default of 30
	NoDurationFilter   bool `json:"noDurationFilter" yaml:"noDurationFilter"`     // historical send-everything behavior

	ListFiles bool     `json:"listFiles" yaml:"listFiles"` // also process the CMS guide-file listing
	Sources   []Source `json:"sources" yaml:"sources"`

	TmpDir     string `json:"tmpDir" yaml:"tmpDir"`         // downloaded files land here
	AuditDir   string `json:"auditDir" yaml:"auditDir"`     // outgoing payload copies land here
	RunLogFile string `json:"runLogFile" yaml:"runLogFile"` // append-only run outcome log

	Log *logging.LogConfig `json:"log,omitempty" yaml:"log,omitempty"`
}

// Validate checks required options and fills derived fields, decrypting
// credential values marked as encrypted.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return errors.New("invalid schedule-guide config: endpoint is required")
	}
	if c.MinDurationMinutes < 0 {
		return errors.New("invalid schedule-guide config: minDurationMinutes cannot be negative")
	}

	logger := zap.L()

	for i := range c.Sources {
		src := &c.Sources[i]
		if src.Format == "" {
			return fmt.Errorf("source %q has no format", src.Name)
		}

		switch src.Type {
		case "local", "http", "":
			if src.Path == "" {
				return fmt.Errorf("source %q has no path", src.Name)
			}
		case "ftp":
			if src.FTP == nil || src.FTP.Host == "" || src.FTP.RemotePath == "" {
				return fmt.Errorf("source %q has an incomplete ftp section", src.Name)
			}
			if src.PasswordEncrypted {
				if c.Key == "" {
					return fmt.Errorf("source %q has an encrypted password but no key is configured", src.Name)
				}
				crypto := guide.NewTripleDESCrypto(c.Key)
				plain, err := crypto.ECBDecrypt(src.FTP.Password)
				if err != nil {
					return fmt.Errorf("source %q: failed to decrypt password: %w", src.Name, err)
				}
				src.FTP.Password = plain
				src.PasswordEncrypted = false
			}
		default:
			return fmt.Errorf("source %q has unknown type %q", src.Name, src.Type)
		}
	}

	if c.TmpDir == "" {
		c.TmpDir = "tmp"
	}
	if c.RunLogFile == "" {
		c.RunLogFile = "service_call_log.txt"
	}
	if c.NoDurationFilter && c.MinDurationMinutes > 0 {
		logger.Warn("noDurationFilter is set, minDurationMinutes is ignored.")
	}

	return nil
}

// NormalizeOptions resolves the configured duration filter.
func (c *Config) NormalizeOptions() guide.NormalizeOptions {
	if c.NoDurationFilter {
		return guide.NormalizeOptions{}
	}
	min := c.MinDurationMinutes
	if min == 0 {
		min = guide.DefaultMinDurationMinutes
	}
	return guide.NormalizeOptions{MinDurationMinutes: min}
}

func Load(fPath string) (*Config, error) {
	data, err := os.ReadFile(fPath)
	if err != nil {
		return nil, err
	}
	var config Config
	if err = yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func CreateDefaultCfg(fPath string) error {
	f, err := os.Create(fPath)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := yaml.NewEncoder(f)

	defaultCfg := Config{
		Endpoint:           "https://cms.example.com",
		MinDurationMinutes: guide.DefaultMinDurationMinutes,
		ListFiles:          true,
		TmpDir:             "tmp",
		AuditDir:           "audit",
		RunLogFile:         "service_call_log.txt",
		Sources: []Source{
			{
				Name:      "example-weekly-grid",
				Type:      "local",
				Format:    "modelo1",
				ChannelID: "74",
				Path:      "guides/grade.xlsx",
			},
			{
				Name:   "example-xmltv-feed",
				Type:   "http",
				Format: "modeloxmlall",
				Path:   "https://feeds.example.com/all.xml",
				ChannelMap: map[string]string{
					"5029": "245",
					"5500": "99",
				},
			},
		},
	}

	return encoder.Encode(&defaultCfg)
}
