package api

import (
	"os"
	"strings"

	"kgeyst.com/hfdemo/pkg/common"
	"kgeyst.com/hfdemo/pkg/inference/infrastructure/web"
)

// ImageSource turns what a user typed into a path the vision model can open: either a local path (possibly
// quoted by the terminal) or a web URL which is downloaded to a temporary file first.
type ImageSource struct {
	urlFinder       *web.WebURLFinder
	imageDownloader *web.ImageDownloader
}

func NewImageSource(tempDir string) *ImageSource {
	return &ImageSource{
		urlFinder:       web.NewWebURLFinder(),
		imageDownloader: web.NewImageDownloader(tempDir),
	}
}

// Resolve returns the path to the image and a function which removes temporary files, if any.
func (i *ImageSource) Resolve(input string) (string, func(), error) {
	input = strings.TrimSpace(input)
	input = common.RemoveSingleQuotesIfAny(input)
	input = common.RemoveDoubleQuotesIfAny(input)
	urls := i.urlFinder.FindWebURLs(input)
	if len(urls) == 0 {
		return input, func() {}, nil
	}
	path, err := i.imageDownloader.Download(urls[0])
	if err != nil {
		return "", nil, err
	}
	return path, func() {
		_ = os.Remove(path)
	}, nil
}

