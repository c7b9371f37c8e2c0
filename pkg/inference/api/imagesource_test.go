package api

import (
	"bytes"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestImageSourceLocalPath(t *testing.T) {
	source := NewImageSource(t.TempDir())
	for input, expected := range map[string]string{
		"/tmp/cat.png":        "/tmp/cat.png",
		" '/tmp/my cat.png' ": "/tmp/my cat.png",
		`"/tmp/my cat.png"`:   "/tmp/my cat.png",
		"photos/cat.jpg":      "photos/cat.jpg",
		"example.com/cat.png": "example.com/cat.png",
	} {
		path, cleanup, err := source.Resolve(input)
		require.NoError(t, err)
		require.Equal(t, expected, path)
		cleanup()
	}
}

func TestImageSourceDownloadsURL(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(buf.Bytes())
	}))
	defer server.Close()

	path, cleanup, err := NewImageSource(t.TempDir()).Resolve("what's this? " + server.URL + "/cat.png")
	require.NoError(t, err)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, buf.Bytes(), content)
	cleanup()
	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err))
}
