package fileFetcher_test

import (
	"context"
	"io"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webFileDownloader/domain/fileFetcher"
	"webFileDownloader/domain/fileFetcher/internal/mocks"
	"webFileDownloader/domain/models"
)

func TestFetcher_Fetch(t *testing.T) {
	serving := func(contents string) *mocks.DownloaderMock {
		return &mocks.DownloaderMock{
			FetchFunc: func(ctx context.Context, target *url.URL) (io.ReadCloser, error) {
				return io.NopCloser(strings.NewReader(contents)), nil
			},
		}
	}

	savingTo := func(saved map[string]string) *mocks.StoreMock {
		return &mocks.StoreMock{
			SaveFunc: func(ctx context.Context, dir string, name string, body io.Reader) (string, error) {
				contents, err := io.ReadAll(body)
				if err != nil {
					return "", err
				}
				path := filepath.Join(dir, name)
				saved[path] = string(contents)
				return path, nil
			},
		}
	}

	t.Run("store the body under the last path segment and complete the job", func(t *testing.T) {
		saved := map[string]string{}
		job := models.NewJob("https://x.test/sub/b.pdf", "/deep/down/dir", nil)

		location, err := fileFetcher.New(serving("pdf"), savingTo(saved)).Fetch(context.Background(), job)
		require.NoError(t, err)

		assert.Equal(t, filepath.Join("/deep/down/dir", "b.pdf"), location)
		assert.Equal(t, map[string]string{location: "pdf"}, saved)
		assert.Equal(t, models.Completed, job.Status.Status())
	})
	t.Run("reject links that do not parse", func(t *testing.T) {
		downloader := serving("")
		job := models.NewJob("invalid_url", t.TempDir(), nil)

		_, err := fileFetcher.New(downloader, savingTo(map[string]string{})).Fetch(context.Background(), job)

		var parseErr *models.URLParseError
		assert.True(t, errors.As(err, &parseErr), "expected url parse error, got %v", err)
		assert.Empty(t, downloader.FetchCalls())
		assert.Equal(t, models.InProgress, job.Status.Status())
	})
	t.Run("reject links without a file name", func(t *testing.T) {
		for _, link := range []string{"https://x.test", "https://x.test/", "https://x.test/docs/", "https://x.test/a/.."} {
			downloader := serving("")
			job := models.NewJob(link, t.TempDir(), nil)

			_, err := fileFetcher.New(downloader, savingTo(map[string]string{})).Fetch(context.Background(), job)

			assert.True(t, errors.Is(err, models.ErrNoFileName), "%s: expected no file name error, got %v", link, err)
			assert.Empty(t, downloader.FetchCalls(), link)
			assert.Equal(t, models.InProgress, job.Status.Status(), link)
		}
	})
	t.Run("surface request failures as network errors", func(t *testing.T) {
		downloader := &mocks.DownloaderMock{
			FetchFunc: func(ctx context.Context, target *url.URL) (io.ReadCloser, error) {
				return nil, errors.New("connection reset")
			},
		}
		job := models.NewJob("https://x.test/a.pdf", t.TempDir(), nil)

		_, err := fileFetcher.New(downloader, savingTo(map[string]string{})).Fetch(context.Background(), job)

		var networkErr *models.NetworkError
		assert.True(t, errors.As(err, &networkErr), "expected network error, got %v", err)
		assert.Equal(t, models.InProgress, job.Status.Status())
	})
	t.Run("surface body read failures as network errors", func(t *testing.T) {
		downloader := &mocks.DownloaderMock{
			FetchFunc: func(ctx context.Context, target *url.URL) (io.ReadCloser, error) {
				return io.NopCloser(iotest.ErrReader(errors.New("unexpected EOF"))), nil
			},
		}
		job := models.NewJob("https://x.test/a.pdf", t.TempDir(), nil)

		_, err := fileFetcher.New(downloader, savingTo(map[string]string{})).Fetch(context.Background(), job)

		var networkErr *models.NetworkError
		assert.True(t, errors.As(err, &networkErr), "expected network error, got %v", err)
		assert.Equal(t, models.InProgress, job.Status.Status())
	})
	t.Run("surface storage failures as io errors", func(t *testing.T) {
		store := &mocks.StoreMock{
			SaveFunc: func(ctx context.Context, dir string, name string, body io.Reader) (string, error) {
				return filepath.Join(dir, name), errors.New("disk full")
			},
		}
		job := models.NewJob("https://x.test/a.pdf", "/downloads", nil)

		_, err := fileFetcher.New(serving("pdf"), store).Fetch(context.Background(), job)

		var ioErr *models.IOError
		require.True(t, errors.As(err, &ioErr), "expected io error, got %v", err)
		assert.Equal(t, filepath.Join("/downloads", "a.pdf"), ioErr.Path)
		assert.Equal(t, models.InProgress, job.Status.Status())
	})
}

func TestFileName(t *testing.T) {
	tests := []struct {
		link string
		want string
	}{
		{link: "https://x.test/a.pdf", want: "a.pdf"},
		{link: "https://x.test/sub/b.pdf", want: "b.pdf"},
		{link: "https://x.test/sub/c.pdf?download=1#page=2", want: "c.pdf"},
		{link: "https://x.test/with%20space.pdf", want: "with space.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.link, func(t *testing.T) {
			link, err := url.Parse(tt.link)
			require.NoError(t, err)

			name, err := fileFetcher.FileName(link)
			require.NoError(t, err)
			assert.Equal(t, tt.want, name)
		})
	}
}
