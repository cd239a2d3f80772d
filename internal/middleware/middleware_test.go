package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"pls-decoder/internal/logging"
	"pls-decoder/internal/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logging.SetOutput(&buf)
	t.Cleanup(func() { logging.SetOutput(os.Stderr) })
	return &buf
}

func TestResponseWriterWriteHeader(t *testing.T) {
	w := httptest.NewRecorder()
	rw := newResponseWriter(w)

	if rw.statusCode != http.StatusOK {
		t.Errorf("Expected default status code 200, got %d", rw.statusCode)
	}

	rw.WriteHeader(http.StatusNotFound)
	rw.WriteHeader(http.StatusInternalServerError)

	if rw.statusCode != http.StatusNotFound {
		t.Errorf("Status code should stay at first value, got %d", rw.statusCode)
	}
	if w.Code != http.StatusNotFound {
		t.Errorf("Underlying writer got %d, want 404", w.Code)
	}
}

func TestResponseWriterWrite(t *testing.T) {
	w := httptest.NewRecorder()
	rw := newResponseWriter(w)

	n, err := rw.Write([]byte("hello"))
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if n != 5 || rw.bytesWritten != 5 {
		t.Errorf("Expected 5 bytes written, got n=%d tracked=%d", n, rw.bytesWritten)
	}
	if !rw.wroteHeader {
		t.Error("Expected wroteHeader after Write")
	}
}

func TestSanitizeLogField(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Plain", "/api/decode", "/api/decode"},
		{"Newlines", "a\nb\rc", "a b c"},
		{"Null byte", "a\x00b", "ab"},
		{"ANSI escape", "\x1b[31mred", "[31mred"},
		{"Tab kept", "a\tb", "a\tb"},
		{"Bell stripped", "a\x07b", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeLogField(tt.input); got != tt.want {
				t.Errorf("sanitizeLogField(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"Forwarded chain", map[string]string{"X-Forwarded-For": "10.0.0.1, 10.0.0.2"}, "1.2.3.4:5", "10.0.0.1"},
		{"Forwarded single", map[string]string{"X-Forwarded-For": " 10.0.0.9 "}, "1.2.3.4:5", "10.0.0.9"},
		{"Real IP", map[string]string{"X-Real-IP": "10.1.1.1"}, "1.2.3.4:5", "10.1.1.1"},
		{"Remote addr", nil, "192.168.1.10:51234", "192.168.1.10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if got := getClientIP(req); got != tt.want {
				t.Errorf("getClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatW3C(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/decode?charset=latin1", nil)
	req.RemoteAddr = "127.0.0.1:9999"
	req.Header.Set("User-Agent", "curl/8.0 (test)")

	rw := newResponseWriter(httptest.NewRecorder())
	rw.WriteHeader(http.StatusUnprocessableEntity)
	rw.Write([]byte("{}"))

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	got := formatW3C(req, rw, 12*time.Millisecond, now)

	want := `2026-01-02 03:04:05 127.0.0.1 POST /api/decode charset=latin1 422 2 12 "curl/8.0 (test)"`
	if got != want {
		t.Errorf("formatW3C() =\n%s\nwant\n%s", got, want)
	}
}

func TestLoggerMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		config    LoggingConfig
		path      string
		expectLog bool
	}{
		{"Logs API request", DefaultLoggingConfig(), "/api/decode", true},
		{"Logs health by default", DefaultLoggingConfig(), "/health", true},
		{"Skips health when disabled", LoggingConfig{LogHealthChecks: false}, "/livez", false},
		{"Skips configured prefix", LoggingConfig{SkipPaths: []string{"/version"}, LogHealthChecks: true}, "/version", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)

			handler := Logger(tt.config)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusTeapot)
			}))

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if w.Code != http.StatusTeapot {
				t.Errorf("Handler status not propagated, got %d", w.Code)
			}

			logged := strings.Contains(buf.String(), tt.path)
			if logged != tt.expectLog {
				t.Errorf("Logged = %v, want %v (output %q)", logged, tt.expectLog, buf.String())
			}
		})
	}
}

func TestMetricsMiddlewareUsesRouteTemplate(t *testing.T) {
	r := mux.NewRouter()
	r.Use(Metrics(DefaultMetricsConfig()))
	r.HandleFunc("/api/items/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}).Methods(http.MethodPut)

	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodPut, "/api/items/{id}", "201")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"1", "2", "3"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPut, "/api/items/"+id, nil))
	}

	if got := testutil.ToFloat64(counter) - before; got != 3 {
		t.Errorf("Expected 3 requests under one route label, got %v", got)
	}
}

func TestMetricsMiddlewareSkipPaths(t *testing.T) {
	r := mux.NewRouter()
	r.Use(Metrics(DefaultMetricsConfig()))
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	counter := metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/health", "200")
	before := testutil.ToFloat64(counter)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	if got := testutil.ToFloat64(counter) - before; got != 0 {
		t.Errorf("Expected skipped path not to be recorded, got %v", got)
	}
}

func TestRouteTemplateWithoutRoute(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/nowhere", nil)
	if got := routeTemplate(req); got != unmatchedRoute {
		t.Errorf("routeTemplate() = %q, want %q", got, unmatchedRoute)
	}
}
