package sameDomainFilter

import (
	"net/url"
)

// Filter keeps links hosted on the same site as the page they were found on.
type Filter struct {
	host string
}

func New(page *url.URL) *Filter {
	return &Filter{host: hostWithoutWWW(page.Host)}
}

func (f *Filter) ShouldDownload(link *url.URL) bool {
	return f.host == hostWithoutWWW(link.Host)
}

func hostWithoutWWW(host string) string {
	if len(host) > 4 && host[:4] == "www." {
		return host[4:]
	}
	return host
}
