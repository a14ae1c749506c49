package m2

import (
	"context"
	"crypto/sha1" //nolint:gosec // Maven publishes sha1 checksums
	"encoding/hex"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/jarlock/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

const (
	httpClientTimeout = 30 * time.Second
	checksumSuffix    = ".sha1"
)

var errNotFound = errors.New("not found")

type downloader struct {
	client *http.Client
	group  singleflight.Group
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: httpClientTimeout}
}

func newDownloader(client *http.Client) *downloader {
	return &downloader{client: client}
}

// fetch tries each repository in order and stores the first hit at dest.
// A 404 moves on to the next repository; any other failure aborts.
func (d *downloader) fetch(ctx context.Context, relPath, dest string, repositories []string) error {
	for _, repo := range repositories {
		url := strings.TrimRight(repo, "/") + "/" + relPath
		err := d.fetchOne(ctx, url, dest)
		if err == nil {
			return nil
		}
		if errors.Is(err, errNotFound) {
			continue
		}
		return zerr.With(err, "url", url)
	}
	err := zerr.Wrap(domain.ErrUnresolvableDependency, "artifact not found in any repository")
	return zerr.With(err, "repositories", strings.Join(repositories, ","))
}

func (d *downloader) fetchOne(ctx context.Context, url, dest string) error {
	body, err := d.get(ctx, url)
	if err != nil {
		return err
	}
	defer func() {
		_ = body.Close()
	}()

	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(domain.ErrLocalRepositoryCreateFailed, err.Error())
	}

	tmpFile, err := os.CreateTemp(dir, ".download-*")
	if err != nil {
		return zerr.Wrap(domain.ErrDownloadFailed, err.Error())
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	//nolint:gosec // sha1 matches the published checksum format
	hasher := sha1.New()
	if _, err := io.Copy(io.MultiWriter(tmpFile, hasher), body); err != nil {
		_ = tmpFile.Close()
		return zerr.Wrap(domain.ErrDownloadFailed, err.Error())
	}
	if err := tmpFile.Close(); err != nil {
		return zerr.Wrap(domain.ErrDownloadFailed, err.Error())
	}

	if err := d.verify(ctx, url+checksumSuffix, hex.EncodeToString(hasher.Sum(nil))); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.Wrap(domain.ErrDownloadFailed, err.Error())
	}
	if err := os.Rename(tmpName, dest); err != nil {
		return zerr.Wrap(domain.ErrDownloadFailed, err.Error())
	}
	return nil
}

// verify compares actual with the published checksum. A missing checksum file passes.
func (d *downloader) verify(ctx context.Context, url, actual string) error {
	body, err := d.get(ctx, url)
	if errors.Is(err, errNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	defer func() {
		_ = body.Close()
	}()

	data, err := io.ReadAll(io.LimitReader(body, 1024))
	if err != nil {
		return zerr.Wrap(domain.ErrDownloadFailed, err.Error())
	}
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return nil
	}
	expected := strings.ToLower(fields[0])
	if expected != actual {
		mismatch := zerr.With(zerr.Wrap(domain.ErrDownloadFailed, "checksum mismatch"), "expected", expected)
		return zerr.With(mismatch, "actual", actual)
	}
	return nil
}

// get issues a GET and returns the body of a 200 response.
func (d *downloader) get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, zerr.Wrap(domain.ErrNetwork, err.Error())
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, zerr.Wrap(domain.ErrNetwork, err.Error())
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return resp.Body, nil
	case http.StatusNotFound:
		_ = resp.Body.Close()
		return nil, errNotFound
	default:
		_ = resp.Body.Close()
		return nil, zerr.With(zerr.Wrap(domain.ErrDownloadFailed, "unexpected status"), "status_code", resp.StatusCode)
	}
}
