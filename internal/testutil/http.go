package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// Serve runs method+path through h and returns what it wrote.
func Serve(h http.Handler, method, path string, body io.Reader) *httptest.ResponseRecorder {
	return ServeRequest(h, httptest.NewRequest(method, path, body))
}

// ServeRequest runs an already built request through h.
func ServeRequest(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func AssertStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rr.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, rr.Code, strings.TrimSpace(rr.Body.String()))
	}
}

// AssertContentType compares the media type, ignoring parameters such as charset.
func AssertContentType(t *testing.T, rr *httptest.ResponseRecorder, want string) {
	t.Helper()
	got, _, _ := strings.Cut(rr.Header().Get("Content-Type"), ";")
	if strings.TrimSpace(got) != want {
		t.Fatalf("expected content type %s, got %q", want, rr.Header().Get("Content-Type"))
	}
}

// DecodeJSON requires a JSON response and decodes it into dest.
func DecodeJSON(t *testing.T, rr *httptest.ResponseRecorder, dest any) {
	t.Helper()
	AssertContentType(t, rr, "application/json")
	if err := json.NewDecoder(rr.Body).Decode(dest); err != nil {
		t.Fatalf("decode %s response: %v", rr.Header().Get("Content-Type"), err)
	}
}
