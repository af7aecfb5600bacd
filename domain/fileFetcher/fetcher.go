//go:generate moq -out internal/mocks/downloader_moq.go -pkg mocks . Downloader
//go:generate moq -out internal/mocks/store_moq.go -pkg mocks . Store

package fileFetcher

import (
	"context"
	"io"
	"net/url"
	"strings"

	"webFileDownloader/domain/linkResolver"
	"webFileDownloader/domain/models"
)

type (
	// Downloader retrieves the contents behind a url.
	Downloader interface {
		Fetch(ctx context.Context, target *url.URL) (io.ReadCloser, error)
	}

	// Store persists a downloaded body as name inside dir and returns where it was written.
	Store interface {
		Save(ctx context.Context, dir, name string, body io.Reader) (string, error)
	}
)

// Fetcher downloads single jobs into a Store.
type Fetcher struct {
	downloader Downloader
	store      Store
}

func New(downloader Downloader, store Store) *Fetcher {
	return &Fetcher{
		downloader: downloader,
		store:      store,
	}
}

// Fetch downloads the job's link into its destination, naming the file after the last path segment,
// and returns where it was stored. The job status is completed only once the contents are fully stored.
func (f *Fetcher) Fetch(ctx context.Context, job models.Job) (string, error) {
	target, err := linkResolver.ParseAbsolute(job.Link)
	if err != nil {
		return "", err
	}

	name, err := FileName(target)
	if err != nil {
		return "", err
	}

	response, err := f.downloader.Fetch(ctx, target)
	if err != nil {
		return "", &models.NetworkError{URL: job.Link, Err: err}
	}
	defer response.Close()

	body := &bodyReader{reader: response}
	location, err := f.store.Save(ctx, job.DestinationDir, name, body)
	if err != nil {
		if body.err != nil {
			return location, &models.NetworkError{URL: job.Link, Err: body.err}
		}
		return location, &models.IOError{Path: location, Err: err}
	}

	job.Status.Complete()
	return location, nil
}

// FileName is the last segment of the link's path.
func FileName(link *url.URL) (string, error) {
	name := link.Path[strings.LastIndex(link.Path, "/")+1:]
	if name == "" || name == "." || name == ".." {
		return "", &models.URLParseError{URL: link.String(), Err: models.ErrNoFileName}
	}
	return name, nil
}

// bodyReader remembers read failures so they can be told apart from storage failures.
type bodyReader struct {
	reader io.Reader
	err    error
}

func (r *bodyReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	if err != nil && err != io.EOF {
		r.err = err
	}
	return n, err
}
