package web

import (
	"strings"

	"github.com/mvdan/xurls"
)

// WebURLFinder finds links a web client can fetch. Bare domains ("example.com/cat.png") and non-web schemes
// (mailto:, ftp://, file://) are skipped, so a local path is never mistaken for a download.
type WebURLFinder struct{}

func NewWebURLFinder() *WebURLFinder {
	return &WebURLFinder{}
}

// FindWebURLs returns the http(s) URLs in `text`, in the order they appear.
func (f *WebURLFinder) FindWebURLs(text string) []string {
	var urls []string
	for _, url := range xurls.Strict.FindAllString(text, -1) {
		lowered := strings.ToLower(url)
		if strings.HasPrefix(lowered, "http://") || strings.HasPrefix(lowered, "https://") {
			urls = append(urls, url)
		}
	}
	return urls
}
