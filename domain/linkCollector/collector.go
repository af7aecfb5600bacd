//go:generate moq -out internal/mocks/fetcher_extractor_moq.go -pkg mocks . FetcherExtractor

package linkCollector

import (
	"context"
	"io"
	"net/url"
	"strings"

	"webFileDownloader/domain/linkResolver"
	"webFileDownloader/domain/models"
)

type (
	Logger interface {
		Printf(format string, args ...interface{})
	}

	// FetcherExtractor retrieves a page and extracts the raw hrefs of its anchors.
	FetcherExtractor interface {
		Fetch(ctx context.Context, target *url.URL) (io.ReadCloser, error)
		Extract(contents io.Reader) ([]string, error)
	}

	// LinkFilter returns false if the resolved link should not be downloaded.
	LinkFilter interface {
		ShouldDownload(link *url.URL) bool
	}
)

// Collector finds the links of a page pointing to files of a given extension.
type Collector struct {
	logger           Logger
	fetcherExtractor FetcherExtractor
	filters          []LinkFilter // applied in order after resolution
}

func New(logger Logger, fetcherExtractor FetcherExtractor, filters ...LinkFilter) *Collector {
	return &Collector{
		logger:           logger,
		fetcherExtractor: fetcherExtractor,
		filters:          filters,
	}
}

// CollectLinks returns the absolute links of pageURL whose href ends with extension.
// The match is a literal suffix: "pdf" and ".pdf" are different filters.
// Links keep document order and duplicates are kept.
func (c *Collector) CollectLinks(ctx context.Context, pageURL, extension string) ([]string, error) {
	base, err := linkResolver.ParseAbsolute(pageURL)
	if err != nil {
		return nil, err
	}

	body, err := c.fetcherExtractor.Fetch(ctx, base)
	if err != nil {
		return nil, &models.NetworkError{URL: pageURL, Err: err}
	}
	defer body.Close()

	page := &pageReader{reader: body}
	hrefs, err := c.fetcherExtractor.Extract(page)
	if err != nil {
		if page.err != nil {
			return nil, &models.NetworkError{URL: pageURL, Err: page.err}
		}
		return nil, &models.DocumentParseError{URL: pageURL, Err: err}
	}

	links := make([]string, 0, len(hrefs))
	for _, href := range hrefs {
		// Anchors without an href never match, whatever the extension.
		if href == "" || !strings.HasSuffix(href, extension) {
			continue
		}

		link, err := linkResolver.Resolve(base, href)
		if err != nil {
			c.logger.Printf("Skipping href %q: %s", href, err)
			continue
		}

		if !c.shouldDownload(link) {
			continue
		}
		links = append(links, link)
	}
	return links, nil
}

func (c *Collector) shouldDownload(link string) bool {
	if len(c.filters) == 0 {
		return true
	}

	target, err := url.Parse(link)
	if err != nil {
		c.logger.Printf("Skipping link %q: %s", link, err)
		return false
	}

	for _, filter := range c.filters {
		if !filter.ShouldDownload(target) {
			return false
		}
	}
	return true
}

// pageReader remembers read failures so a dropped connection is not reported as a broken document.
type pageReader struct {
	reader io.Reader
	err    error
}

func (r *pageReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	if err != nil && err != io.EOF {
		r.err = err
	}
	return n, err
}
