package urlFetcherExtractor

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
	"golang.org/x/net/html"

	"webFileDownloader/domain/models"
)

type HTTPFetcherExtractor struct {
	client *http.Client
}

// NewHTTPFetcherExtractor creates a fetcher whose requests time out after timeout. Zero means no timeout.
func NewHTTPFetcherExtractor(timeout time.Duration) HTTPFetcherExtractor {
	return HTTPFetcherExtractor{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewWithClient uses client to issue requests.
func NewWithClient(client *http.Client) HTTPFetcherExtractor {
	return HTTPFetcherExtractor{client: client}
}

// Fetch issues a GET for target and returns the response body.
// Responses outside of the 2xx range are errors.
func (fe HTTPFetcherExtractor) Fetch(ctx context.Context, target *url.URL) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), http.NoBody)
	if err != nil {
		return nil, errors.Wrap(err, "preparing request")
	}

	resp, err := fe.client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return nil, errors.Wrapf(models.ErrUnexpectedStatus, "%s", resp.Status)
	}
	return resp.Body, nil
}

// Extract returns the href of every anchor in document order.
// Anchors without an href contribute an empty string.
func (fe HTTPFetcherExtractor) Extract(contents io.Reader) ([]string, error) {
	root, err := html.Parse(contents)
	if err != nil {
		return nil, err
	}

	return fe.getLinks(goquery.NewDocumentFromNode(root)), nil
}

func (fe HTTPFetcherExtractor) getLinks(doc *goquery.Document) []string {
	anchors := doc.Find("a")
	hrefs := make([]string, 0, anchors.Length())
	anchors.Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		hrefs = append(hrefs, href)
	})
	return hrefs
}
