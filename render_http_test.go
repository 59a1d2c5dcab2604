package tagf

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPRender(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("remote <b>bold</b>"))
	}))
	defer srv.Close()

	var out bytes.Buffer
	err := HTTPRender(context.Background(), HTTPRenderRequest{
		URL:    srv.URL,
		Writer: &out,
		Width:  80,
		Theme:  boringTestTheme(),
	})
	if err != nil {
		t.Fatalf("http render: %v", err)
	}
	if got := out.String(); got != "remote bold\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestHTTPRenderBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	err := HTTPRender(context.Background(), HTTPRenderRequest{
		URL:    srv.URL,
		Writer: &bytes.Buffer{},
	})
	if err == nil {
		t.Fatalf("expected error for 404")
	}
}

func TestHTTPRenderRejectsScheme(t *testing.T) {
	err := HTTPRender(context.Background(), HTTPRenderRequest{
		URL:    "ftp://example.com/doc",
		Writer: &bytes.Buffer{},
	})
	if err == nil {
		t.Fatalf("expected error for unsupported scheme")
	}
}
