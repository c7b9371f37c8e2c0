package common

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

// Images and pages are small; anything bigger is most likely not what the user meant.
const maxDownloadSize = 20 << 20

var httpClient = &http.Client{Timeout: 30 * time.Second}

// ReadAllFromURL reads all content from the URL. The size of the content is capped to protect against pages
// which infinitely stream output.
func ReadAllFromURL(url string) ([]byte, error) {
	res, err := httpClient.Get(url)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = res.Body.Close()
	}()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status code %d for %s", res.StatusCode, url)
	}
	content, err := io.ReadAll(io.LimitReader(res.Body, maxDownloadSize))
	if err != nil {
		return nil, err
	}
	return content, nil
}

