package report

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHTMLSubmitsDocumentAndPageSetup(t *testing.T) {
	var gotPath string
	var gotDocument string
	var gotFields map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseMultipartForm(1<<20))

		file, _, err := r.FormFile("files")
		require.NoError(t, err)
		defer func() {
			_ = file.Close()
		}()
		data, err := io.ReadAll(file)
		require.NoError(t, err)
		gotDocument = string(data)

		gotFields = map[string]string{}
		for name := range r.MultipartForm.Value {
			gotFields[name] = r.FormValue(name)
		}

		_, _ = w.Write([]byte("%PDF-1.7 rendered"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	pdf, err := client.RenderHTML(context.Background(), "<html><body>Hóa đơn</body></html>")
	require.NoError(t, err)

	assert.Equal(t, "/forms/chromium/convert/html", gotPath)
	assert.Equal(t, "<html><body>Hóa đơn</body></html>", gotDocument)
	assert.Equal(t, map[string]string{
		"paperWidth":      "8.27",
		"paperHeight":     "11.69",
		"marginTop":       "0.3",
		"marginBottom":    "0.3",
		"marginLeft":      "0.3",
		"marginRight":     "0.3",
		"printBackground": "true",
	}, gotFields)
	assert.Equal(t, []byte("%PDF-1.7 rendered"), pdf)
}

func TestRenderHTMLErrorIncludesResponseBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("chromium busy"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.RenderHTML(context.Background(), "<html></html>")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
	assert.Contains(t, err.Error(), "chromium busy")
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	assert.NoError(t, NewClient(srv.URL).Ping(context.Background()))
}

func TestPingUnhealthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := NewClient(srv.URL).Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
