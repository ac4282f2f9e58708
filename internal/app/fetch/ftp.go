// Package fetch acquires guide files from upstream FTP drops.
package fetch

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/jlaffaye/ftp"
	"go.uber.org/zap"
)

const dialTimeout = 30 * time.Second

// FTPOptions locates one FTP-delivered guide file. RemotePath may contain
// a {date} placeholder, replaced with the current date in YYYYMMDD form
// for the date-named drops.
type FTPOptions struct {
	Host       string `json:"host" yaml:"host"` // host:port
	User       string `json:"user" yaml:"user"`
	Password   string `json:"password" yaml:"password"`
	RemotePath string `json:"remotePath" yaml:"remotePath"`
}

// FTPFetcher downloads a remote guide file to local storage.
type FTPFetcher struct {
	opts   FTPOptions
	logger *zap.Logger
}

func NewFTPFetcher(opts FTPOptions) *FTPFetcher {
	return &FTPFetcher{
		opts:   opts,
		logger: zap.L(),
	}
}

// Fetch retrieves the remote file into destDir and returns the local path.
func (f *FTPFetcher) Fetch(ctx context.Context, destDir string) (string, error) {
	conn, err := ftp.Dial(f.opts.Host,
		ftp.DialWithContext(ctx),
		ftp.DialWithTimeout(dialTimeout))
	if err != nil {
		return "", err
	}
	defer conn.Quit()

	if err = conn.Login(f.opts.User, f.opts.Password); err != nil {
		return "", err
	}

	remote := strings.ReplaceAll(f.opts.RemotePath, "{date}", time.Now().Format("20060102"))

	resp, err := conn.Retr(remote)
	if err != nil {
		return "", err
	}
	defer resp.Close()

	if err = os.MkdirAll(destDir, 0o755); err != nil {
		return "", err
	}
	localPath := filepath.Join(destDir, path.Base(remote))
	out, err := os.Create(localPath)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err = io.Copy(out, resp); err != nil {
		os.Remove(localPath)
		return "", err
	}

	f.logger.Info("Guide file fetched over FTP.",
		zap.String("remote", remote), zap.String("local", localPath))
	return localPath, nil
}
