package web

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"kgeyst.com/hfdemo/pkg/common"
)

var errNoImageFound = errors.New("no image found on the page")

type ImageDownloader struct {
	tempDir string
}

// NewImageDownloader saves images to `tempDir` (the OS default if empty).
func NewImageDownloader(tempDir string) *ImageDownloader {
	return &ImageDownloader{
		tempDir: tempDir,
	}
}

// Download saves the image behind `imageURL` to a temporary file and returns its path; the caller removes the
// file when done. If the URL points to a web page rather than to an image, the page's preview image is used
// (og:image, or the first <img> if there's none).
func (i *ImageDownloader) Download(imageURL string) (string, error) {
	content, err := common.ReadAllFromURL(imageURL)
	if err != nil {
		return "", err
	}
	if !isImageContent(content) {
		if common.IsImageFormat(imageURL) {
			return "", fmt.Errorf("%s is not an image", imageURL)
		}
		pageImageURL, err := findPageImageURL(imageURL, content)
		if err != nil {
			return "", err
		}
		content, err = common.ReadAllFromURL(pageImageURL)
		if err != nil {
			return "", err
		}
		if !isImageContent(content) {
			return "", fmt.Errorf("%s is not an image", pageImageURL)
		}
	}
	file, err := os.CreateTemp(i.tempDir, "image-*")
	if err != nil {
		return "", err
	}
	_, err = file.Write(content)
	closeErr := file.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(file.Name())
		return "", err
	}
	return file.Name(), nil
}

func isImageContent(content []byte) bool {
	return strings.HasPrefix(http.DetectContentType(content), "image/")
}

func findPageImageURL(pageURL string, page []byte) (string, error) {
	document, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return "", err
	}
	src, ok := document.Find(`meta[property="og:image"]`).First().Attr("content")
	if !ok || strings.TrimSpace(src) == "" {
		src, ok = document.Find("img[src]").First().Attr("src")
	}
	if !ok || strings.TrimSpace(src) == "" {
		return "", fmt.Errorf("%w: %s", errNoImageFound, pageURL)
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return "", err
	}
	ref, err := url.Parse(strings.TrimSpace(src))
	if err != nil {
		return "", err
	}
	return base.ResolveReference(ref).String(), nil
}
