package api

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// FallbackFilename is used when the response names no file.
const FallbackFilename = "fajl"

var filenamePattern = regexp.MustCompile(`filename="(.+)"`)

// FilenameFromContentDisposition extracts the quoted filename parameter, or
// returns FallbackFilename.
func FilenameFromContentDisposition(header string) string {
	if header == "" {
		return FallbackFilename
	}
	match := filenamePattern.FindStringSubmatch(header)
	if match == nil {
		return FallbackFilename
	}
	return match[1]
}

// Download is an open file download. The caller must close Body.
type Download struct {
	Filename    string
	ContentType string
	Body        io.ReadCloser
}

func (c *Client) DownloadFile(ctx context.Context, fileID int64) (*Download, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+routeFileDownload(fileID), nil)
	if err != nil {
		return nil, errors.Wrap(err, "[Client DownloadFile]")
	}
	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	return &Download{
		Filename:    FilenameFromContentDisposition(resp.Header.Get("Content-Disposition")),
		ContentType: resp.Header.Get("Content-Type"),
		Body:        resp.Body,
	}, nil
}

// FileSaver stores a downloaded file and returns where it went.
type FileSaver interface {
	Save(filename string, content io.Reader) (string, error)
}

// DirSaver writes downloads into a directory. Only the base name of the
// server-supplied filename is used.
type DirSaver struct {
	Dir string
}

func (d DirSaver) Save(filename string, content io.Reader) (string, error) {
	name := safeBaseName(filename)
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return "", errors.Wrap(err, "[DirSaver Save] mkdir")
	}
	path := filepath.Join(d.Dir, name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", errors.Wrap(err, "[DirSaver Save] create")
	}
	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		os.Remove(path)
		return "", errors.Wrap(err, "[DirSaver Save] write")
	}
	if err := f.Close(); err != nil {
		return "", errors.Wrap(err, "[DirSaver Save] close")
	}
	return path, nil
}

func safeBaseName(filename string) string {
	name := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	switch name {
	case "", ".", "..", "/":
		return FallbackFilename
	}
	return name
}
