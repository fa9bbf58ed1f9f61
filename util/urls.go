package util

import (
	"net/url"
	"regexp"
	"strings"
)

var urlPattern = regexp.MustCompile(
	`http[s]?://(?:[a-zA-Z]|[0-9]|[$-_@.&+]|[!*(),]|(?:%[0-9a-fA-F][0-9a-fA-F]))+`,
)

// FindURLs scans free text for absolute HTTP(S) URLs, in order of
// appearance and without deduplication. Each URL is normalized by
// dropping its query string and fragment.
func FindURLs(text string) []string {
	matches := urlPattern.FindAllString(text, -1)
	if matches == nil {
		return nil
	}
	urls := make([]string, 0, len(matches))
	for _, match := range matches {
		urls = append(urls, normalizeURL(match))
	}
	return urls
}

func normalizeURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	parsed.RawQuery = ""
	parsed.Fragment = ""
	parsed.RawFragment = ""
	return parsed.String()
}

// GetPath returns only the path component of a URL.
func GetPath(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return parsed.EscapedPath()
}

// RepathURL rebuilds a URL from the scheme and host of base and the given
// path. Loaders use it to anchor relative permalinks at whichever host the
// triggering URL used, so overridden API endpoints stay on their own host.
func RepathURL(baseURL string, newPath string) string {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return newPath
	}
	rebuilt := url.URL{
		Scheme: parsed.Scheme,
		Host:   parsed.Host,
		Path:   newPath,
	}
	return rebuilt.String()
}

// FixURL decodes the &amp; entities Reddit leaves in media URLs.
func FixURL(rawURL string) string {
	return strings.ReplaceAll(rawURL, "&amp;", "&")
}
