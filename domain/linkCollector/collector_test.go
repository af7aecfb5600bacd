package linkCollector_test

import (
	"context"
	"io"
	"log"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webFileDownloader/domain/adapters/sameDomainFilter"
	"webFileDownloader/domain/linkCollector"
	"webFileDownloader/domain/linkCollector/internal/mocks"
	"webFileDownloader/domain/models"
)

// failingReader returns its contents, then fails like a dropped connection.
type failingReader struct {
	contents io.Reader
	err      error
}

func (r *failingReader) Read(p []byte) (int, error) {
	n, err := r.contents.Read(p)
	if err == io.EOF {
		return n, r.err
	}
	return n, err
}

func TestCollector_CollectLinks(t *testing.T) {
	logger := log.New(os.Stdout, "[LinkCollectorTest]", log.LstdFlags)

	pageWithHrefs := func(hrefs ...string) *mocks.FetcherExtractorMock {
		return &mocks.FetcherExtractorMock{
			FetchFunc: func(ctx context.Context, target *url.URL) (io.ReadCloser, error) {
				return io.NopCloser(strings.NewReader("page")), nil
			},
			ExtractFunc: func(contents io.Reader) ([]string, error) {
				return hrefs, nil
			},
		}
	}

	t.Run("keep and resolve links ending with the extension", func(t *testing.T) {
		fe := pageWithHrefs("https://h/f.pdf", "/r/f2.pdf", "g.txt")

		links, err := linkCollector.New(logger, fe).CollectLinks(context.Background(), "https://h", "pdf")
		require.NoError(t, err)

		assert.Equal(t, []string{"https://h/f.pdf", "https://h/r/f2.pdf"}, links)
		require.Len(t, fe.FetchCalls(), 1)
		assert.Equal(t, "h", fe.FetchCalls()[0].Target.Host, "fetch called with wrong url")
	})
	t.Run("preserve document order and duplicates", func(t *testing.T) {
		fe := pageWithHrefs("/b.pdf", "/a.pdf", "/b.pdf", "")

		links, err := linkCollector.New(logger, fe).CollectLinks(context.Background(), "https://h", "pdf")
		require.NoError(t, err)

		assert.Equal(t, []string{"https://h/b.pdf", "https://h/a.pdf", "https://h/b.pdf"}, links)
	})
	t.Run("anchors without an href never match", func(t *testing.T) {
		fe := pageWithHrefs("", "/a.pdf", "")

		links, err := linkCollector.New(logger, fe).CollectLinks(context.Background(), "https://h/docs/page", "")
		require.NoError(t, err)
		assert.Equal(t, []string{"https://h/a.pdf"}, links)
	})
	t.Run("extension is a literal suffix", func(t *testing.T) {
		fe := pageWithHrefs("/a.pdf", "/bpdf", "/c.PDF")

		withDot, err := linkCollector.New(logger, fe).CollectLinks(context.Background(), "https://h", ".pdf")
		require.NoError(t, err)
		assert.Equal(t, []string{"https://h/a.pdf"}, withDot)

		withoutDot, err := linkCollector.New(logger, fe).CollectLinks(context.Background(), "https://h", "pdf")
		require.NoError(t, err)
		assert.Equal(t, []string{"https://h/a.pdf", "https://h/bpdf"}, withoutDot)
	})
	t.Run("collecting twice gives the same links", func(t *testing.T) {
		fe := pageWithHrefs("https://h/f.pdf", "/r/f2.pdf", "g.txt", "/r/f2.pdf")
		collector := linkCollector.New(logger, fe)

		first, err := collector.CollectLinks(context.Background(), "https://h", "pdf")
		require.NoError(t, err)
		second, err := collector.CollectLinks(context.Background(), "https://h", "pdf")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
	t.Run("skip hrefs with unsupported schemes", func(t *testing.T) {
		fe := pageWithHrefs("mailto:someone@h?subject=a.pdf", "/a.pdf")

		links, err := linkCollector.New(logger, fe).CollectLinks(context.Background(), "https://h", "pdf")
		require.NoError(t, err)
		assert.Equal(t, []string{"https://h/a.pdf"}, links)
	})
	t.Run("apply link filters after resolution", func(t *testing.T) {
		fe := pageWithHrefs("https://other.test/a.pdf", "/b.pdf")
		filter := sameDomainFilter.New(&url.URL{Scheme: "https", Host: "h"})

		links, err := linkCollector.New(logger, fe, filter).CollectLinks(context.Background(), "https://h", "pdf")
		require.NoError(t, err)
		assert.Equal(t, []string{"https://h/b.pdf"}, links)
	})
	t.Run("fail fast on an invalid page url", func(t *testing.T) {
		fe := pageWithHrefs()

		_, err := linkCollector.New(logger, fe).CollectLinks(context.Background(), "invalid_url", "pdf")

		var parseErr *models.URLParseError
		assert.True(t, errors.As(err, &parseErr), "expected url parse error, got %v", err)
		assert.Empty(t, fe.FetchCalls(), "page should not be fetched")
	})
	t.Run("surface page fetch failures as network errors", func(t *testing.T) {
		fe := &mocks.FetcherExtractorMock{
			FetchFunc: func(ctx context.Context, target *url.URL) (io.ReadCloser, error) {
				return nil, errors.New("connection refused")
			},
		}

		_, err := linkCollector.New(logger, fe).CollectLinks(context.Background(), "https://h", "pdf")

		var networkErr *models.NetworkError
		assert.True(t, errors.As(err, &networkErr), "expected network error, got %v", err)
	})
	t.Run("surface a dropped connection while reading the page as a network error", func(t *testing.T) {
		fe := &mocks.FetcherExtractorMock{
			FetchFunc: func(ctx context.Context, target *url.URL) (io.ReadCloser, error) {
				return io.NopCloser(&failingReader{
					contents: strings.NewReader("<a href=\"/a.pdf\">"),
					err:      errors.New("connection reset"),
				}), nil
			},
			ExtractFunc: func(contents io.Reader) ([]string, error) {
				_, err := io.ReadAll(contents)
				return nil, err
			},
		}

		_, err := linkCollector.New(logger, fe).CollectLinks(context.Background(), "https://h", "pdf")

		var networkErr *models.NetworkError
		require.True(t, errors.As(err, &networkErr), "expected network error, got %v", err)
		assert.EqualError(t, errors.Cause(networkErr.Err), "connection reset")

		var parseErr *models.DocumentParseError
		assert.False(t, errors.As(err, &parseErr), "dropped connection reported as a broken document")
	})
	t.Run("surface extraction failures as parse errors", func(t *testing.T) {
		fe := &mocks.FetcherExtractorMock{
			FetchFunc: func(ctx context.Context, target *url.URL) (io.ReadCloser, error) {
				return io.NopCloser(strings.NewReader("")), nil
			},
			ExtractFunc: func(contents io.Reader) ([]string, error) {
				return nil, errors.New("broken body")
			},
		}

		_, err := linkCollector.New(logger, fe).CollectLinks(context.Background(), "https://h", "pdf")

		var parseErr *models.DocumentParseError
		assert.True(t, errors.As(err, &parseErr), "expected document parse error, got %v", err)
	})
}
