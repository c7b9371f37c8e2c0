package common

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadAllFromURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.png" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("payload"))
	}))
	defer server.Close()

	content, err := ReadAllFromURL(server.URL + "/cat.png")
	require.NoError(t, err)
	require.Equal(t, "payload", string(content))

	_, err = ReadAllFromURL(server.URL + "/missing.png")
	require.ErrorContains(t, err, "unexpected status code 404")
}
