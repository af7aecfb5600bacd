package linkResolver

import (
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"webFileDownloader/domain/models"
)

// Resolve turns a raw href found on the page at base into an absolute url.
//
// Hrefs starting with http are already absolute and returned as is. Root relative hrefs are joined to
// the base scheme and host. Any other reference (document relative, protocol relative, fragment) is
// resolved against base following RFC 3986. References carrying a scheme other than http(s) are rejected
// with models.ErrUnsupportedHref.
func Resolve(base *url.URL, href string) (string, error) {
	if strings.HasPrefix(href, "http") {
		return href, nil
	}

	if strings.HasPrefix(href, "/") && !strings.HasPrefix(href, "//") {
		return base.Scheme + "://" + base.Host + href, nil
	}

	ref, err := url.Parse(href)
	if err != nil {
		return "", &models.URLParseError{URL: href, Err: err}
	}

	if ref.Scheme != "" {
		return "", errors.Wrapf(models.ErrUnsupportedHref, "href %q", href)
	}

	return base.ResolveReference(ref).String(), nil
}

// ParseAbsolute parses rawURL and requires it to carry a scheme and a host.
func ParseAbsolute(rawURL string) (*url.URL, error) {
	u, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return nil, &models.URLParseError{URL: rawURL, Err: err}
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, &models.URLParseError{URL: rawURL, Err: errors.New("url is not absolute")}
	}
	return u, nil
}
