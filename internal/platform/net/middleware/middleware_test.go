package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"batakh/internal/platform/testkit"
)

func TestRecoverJSON(t *testing.T) {
	h := RecoverJSON(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("kaboom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	testkit.MustContain(t, rec.Header().Get("Content-Type"), "application/json")
	testkit.MustContain(t, rec.Body.String(), `"status_code":500`)
}

func TestRecoverJSON_PassThrough(t *testing.T) {
	h := RecoverJSON(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusTeapot {
		t.Fatalf("status = %d, want 418", rec.Code)
	}
}

func TestAccessLog_CapturesStatusAndBytes(t *testing.T) {
	var seen *captureWriter
	h := AccessLog(AccessLogOptions{})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		seen = w.(*captureWriter)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("hello"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	if seen.status != http.StatusCreated {
		t.Errorf("captured status = %d, want 201", seen.status)
	}
	if seen.bytes != 5 {
		t.Errorf("captured bytes = %d, want 5", seen.bytes)
	}
	if rec.Code != http.StatusCreated || rec.Body.String() != "hello" {
		t.Errorf("response not forwarded: %d %q", rec.Code, rec.Body)
	}
}

func TestDefaults(t *testing.T) {
	mws := Defaults()
	if len(mws) != 4 {
		t.Fatalf("expected 4 default middlewares, got %d", len(mws))
	}

	// chain them around a trivial handler to make sure they compose
	var h http.Handler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
}
