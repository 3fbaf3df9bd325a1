package pagerender

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func fragment(body string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, body)
		return err
	})
}

func TestWritePageFullDocument(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/links", nil)
	rr := httptest.NewRecorder()
	if err := WritePage(rr, req, Page{Title: "Related Links", Lang: "en-US", Fragment: fragment("<p>body</p>")}); err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if !strings.HasPrefix(body, "<!DOCTYPE html>") {
		t.Fatalf("expected full document, got %q", body)
	}
	if !strings.Contains(body, `<main id="main"><p>body</p></main>`) {
		t.Fatalf("fragment not wrapped: %q", body)
	}
}

func TestWritePageHTMXReturnsFragmentOnly(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/presentation", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()
	if err := WritePage(rr, req, Page{StatusCode: http.StatusAccepted, Fragment: fragment("<p>slide</p>")}); err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	if rr.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusAccepted)
	}
	if got := rr.Body.String(); got != "<p>slide</p>" {
		t.Fatalf("body = %q, want fragment only", got)
	}
}

func TestWritePageRenderFailureWritesNothing(t *testing.T) {
	t.Parallel()

	failing := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, _ = io.WriteString(w, "<section>partial")
		return errors.New("render failed")
	})
	rr := httptest.NewRecorder()
	err := WritePage(rr, httptest.NewRequest(http.MethodGet, "/links", nil), Page{Fragment: failing})
	if err == nil {
		t.Fatal("expected render error")
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("body = %q, want nothing written", rr.Body.String())
	}
}

func TestWritePageHeadOmitsBody(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	if err := WritePage(rr, httptest.NewRequest(http.MethodHead, "/links", nil), Page{Fragment: fragment("<p>x</p>")}); err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("body = %q, want empty", rr.Body.String())
	}
	if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content type = %q", got)
	}
}

func TestWritePageNilFragmentRendersEmptyMain(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	if err := WritePage(rr, httptest.NewRequest(http.MethodGet, "/", nil), Page{}); err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	if !strings.Contains(rr.Body.String(), `<main id="main"></main>`) {
		t.Fatalf("body = %q", rr.Body.String())
	}
}
