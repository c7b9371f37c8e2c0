package common

import "strings"

// IsImageFormat checks the extension only, the content is never inspected.
func IsImageFormat(url string) bool {
	url = strings.ToLower(url)
	return strings.HasSuffix(url, ".jpg") ||
		strings.HasSuffix(url, ".jpeg") ||
		strings.HasSuffix(url, ".png") ||
		strings.HasSuffix(url, ".gif") ||
		strings.HasSuffix(url, ".bmp")
}
