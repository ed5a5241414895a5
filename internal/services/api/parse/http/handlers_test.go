package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"batakh/internal/core/langpack"
	"batakh/internal/core/temporal"
	phttp "batakh/internal/platform/net/http"
	svc "batakh/internal/services/api/parse/service"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	parser := temporal.New(langpack.MustLoad())
	r := phttp.AdaptChi(chi.NewRouter())
	Register(r, svc.New(parser))
	return r.Mux()
}

func postParse(t *testing.T, h http.Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/parse", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestParseEndpoint(t *testing.T) {
	h := newTestHandler(t)

	rec := postParse(t, h, url.Values{
		"locale":  {"hi_IN"},
		"text":    {"दस मिनट का टाइमर"},
		"reftime": {"2024-01-15T08:00:00+05:30"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("content type = %q", ct)
	}

	var entities []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &entities); err != nil {
		t.Fatalf("response is not a bare JSON array: %v\n%s", err, rec.Body)
	}
	if len(entities) != 1 {
		t.Fatalf("expected 1 entity, got %d", len(entities))
	}
	if dim := entities[0]["dim"]; dim != string(temporal.DimDuration) {
		t.Errorf("dim = %v, want duration", dim)
	}
}

func TestParseEndpoint_TimeEntity(t *testing.T) {
	h := newTestHandler(t)

	rec := postParse(t, h, url.Values{
		"text":    {"पांच बजे अलार्म"},
		"reftime": {"2024-01-15T08:00:00+05:30"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"2024-01-16T05:00:00.000+0530"`) {
		t.Errorf("missing resolved timestamp:\n%s", body)
	}
	if !strings.Contains(body, `"grain":"minute"`) {
		t.Errorf("missing grain:\n%s", body)
	}
}

func TestParseEndpoint_EmptyTextIsEmptyArray(t *testing.T) {
	h := newTestHandler(t)

	rec := postParse(t, h, url.Values{"text": {""}})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("body = %q, want []", got)
	}
}

func TestParseEndpoint_UnparseableTextIsEmptyArray(t *testing.T) {
	h := newTestHandler(t)

	rec := postParse(t, h, url.Values{"text": {"लाइट चालू करो"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("body = %q, want []", got)
	}
}

func TestParseEndpoint_BadReftime(t *testing.T) {
	h := newTestHandler(t)

	rec := postParse(t, h, url.Values{
		"text":    {"दस मिनट का टाइमर"},
		"reftime": {"yesterday"},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body)
	}

	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("error body not an envelope: %v", err)
	}
	if env.StatusCode != http.StatusBadRequest || env.Error == "" {
		t.Errorf("unexpected envelope: %+v", env)
	}
}

func TestParseEndpoint_BadDims(t *testing.T) {
	h := newTestHandler(t)

	rec := postParse(t, h, url.Values{
		"text": {"दस मिनट का टाइमर"},
		"dims": {"not json"},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body)
	}
}

func TestParseEndpoint_DimsAcceptedAndIgnored(t *testing.T) {
	h := newTestHandler(t)

	rec := postParse(t, h, url.Values{
		"text":    {"दस मिनट का टाइमर"},
		"dims":    {`["time"]`},
		"reftime": {"2024-01-15T08:00:00+05:30"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	// dims is compatibility-only; the duration entity is still returned
	if !strings.Contains(rec.Body.String(), `"dim":"duration"`) {
		t.Errorf("expected duration entity:\n%s", rec.Body)
	}
}

func TestGreetingAndHealth(t *testing.T) {
	h := newTestHandler(t)

	for _, tt := range []struct {
		path string
		want string
	}{
		{"/", "quack!"},
		{"/health", `"status":"ok"`},
	} {
		req := httptest.NewRequest(http.MethodGet, tt.path, nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s status = %d", tt.path, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), tt.want) {
			t.Errorf("GET %s body = %s, want substring %q", tt.path, rec.Body, tt.want)
		}
	}
}
