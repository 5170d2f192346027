package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"go-shortener/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

var png = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

type fakeServices struct {
	server       *httptest.Server
	shortenCalls int32
	lastBody     map[string]any
	qrQuery      string
}

// newFakeServices serves both the shortener API and the QR renderer.
func newFakeServices(t *testing.T, shortenStatus int) *fakeServices {
	t.Helper()
	f := &fakeServices{}

	mux := http.NewServeMux()
	mux.HandleFunc("/rest/v1/short-urls", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&f.shortenCalls, 1)
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))
		_ = json.NewDecoder(r.Body).Decode(&f.lastBody)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(shortenStatus)
		if shortenStatus == http.StatusOK {
			_, _ = w.Write([]byte(`{"shortUrl":"https://d.co/xy9"}`))
		}
	})
	mux.HandleFunc("/xy9/qr-code", func(w http.ResponseWriter, r *http.Request) {
		f.qrQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(png)
	})

	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeServices) args(extra ...string) []string {
	return append([]string{
		"-protocol", "http",
		"-host", strings.TrimPrefix(f.server.URL, "http://"),
		"-api-key", "secret",
		"-qr-base-url", f.server.URL,
	}, extra...)
}

func TestRun_WithoutQrCode(t *testing.T) {
	services := newFakeServices(t, http.StatusOK)
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), services.args("-url", "https://example.com/a", "-qr=false"), &stdout, &stderr)

	assert.Equal(t, exitOK, code)
	assert.Equal(t, "https://d.co/xy9\n", stdout.String())
	assert.Equal(t, int32(1), atomic.LoadInt32(&services.shortenCalls))
	assert.NotContains(t, services.lastBody, "customSlug")
	assert.Equal(t, false, services.lastBody["validateUrl"])
	assert.Equal(t, true, services.lastBody["findIfExists"])
}

func TestRun_FetchesAndSavesQrCode(t *testing.T) {
	services := newFakeServices(t, http.StatusOK)
	dir := t.TempDir()
	t.Setenv("TMPDIR", dir)
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), services.args("-url", "https://example.com/a", "-slug", "xy9", "-markdown"), &stdout, &stderr)

	assert.Equal(t, exitOK, code)
	assert.Equal(t, "xy9", services.lastBody["customSlug"])
	assert.Equal(t, "bgColor=%23ffffff&color=%23000000&errorCorrection=L&margin=25&size=300", services.qrQuery)
	assert.Equal(t,
		"![QR Code](data:image/png;base64,"+base64.StdEncoding.EncodeToString(png)+")\n\n[Visit Short URL](https://d.co/xy9)\n",
		stdout.String())

	saved, err := os.ReadFile(filepath.Join(dir, "qr-code.png"))
	require.NoError(t, err)
	assert.Equal(t, png, saved)
}

func TestRun_QrCodeOptions(t *testing.T) {
	services := newFakeServices(t, http.StatusOK)
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), services.args(
		"-url", "https://example.com/a", "-save=false",
		"-error-correction", "h", "-margin", "0", "-size", "512", "-logo-url", "https://x.test/l.png",
	), &stdout, &stderr)

	assert.Equal(t, exitOK, code)
	assert.Equal(t, "bgColor=%23ffffff&color=%23000000&errorCorrection=H&margin=0&size=512&logoUrl=https%3A%2F%2Fx.test%2Fl.png", services.qrQuery)
}

func TestRun_InvalidQrCodeOptions_StillCreatesShortUrl(t *testing.T) {
	testCases := []struct {
		name  string
		extra []string
	}{
		{name: "color without hash", extra: []string{"-bg", "ffffff"}},
		{name: "unknown error correction", extra: []string{"-error-correction", "X"}},
		{name: "markdown without image", extra: []string{"-color", "black", "-markdown"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			services := newFakeServices(t, http.StatusOK)
			var stdout, stderr bytes.Buffer

			args := services.args(append([]string{"-url", "https://example.com/a"}, tc.extra...)...)
			code := run(context.Background(), args, &stdout, &stderr)

			assert.Equal(t, exitOK, code)
			assert.Equal(t, "https://d.co/xy9\n", stdout.String())
			assert.Contains(t, stderr.String(), "Failed to load QR code image")
			assert.Equal(t, int32(1), atomic.LoadInt32(&services.shortenCalls))
			assert.Empty(t, services.qrQuery)
		})
	}
}

func TestRun_LogLevelDefaultsToEnvironment(t *testing.T) {
	services := newFakeServices(t, http.StatusOK)
	require.NoError(t, log.SetLevel("debug"))
	t.Cleanup(func() { _ = log.SetLevel("info") })
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), services.args("-url", "https://example.com/a", "-qr=false"), &stdout, &stderr)

	assert.Equal(t, exitOK, code)
	assert.True(t, log.Zap().Core().Enabled(zapcore.DebugLevel))

	code = run(context.Background(), services.args("-url", "https://example.com/a", "-qr=false", "-log-level", "error"), &stdout, &stderr)

	assert.Equal(t, exitOK, code)
	assert.False(t, log.Zap().Core().Enabled(zapcore.WarnLevel))
}

func TestRun_ServerError(t *testing.T) {
	services := newFakeServices(t, http.StatusInternalServerError)
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), services.args("-url", "https://example.com/a"), &stdout, &stderr)

	assert.Equal(t, exitFailure, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "Failed to create short URL")
	assert.Equal(t, int32(1), atomic.LoadInt32(&services.shortenCalls))
}

func TestRun_MissingConfiguration(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"-url", "https://example.com/a", "-host", "d.co"}, &stdout, &stderr)

	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr.String(), "SHORTENER_API_KEY")
}

func TestRun_UnknownFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer

	assert.Equal(t, exitUsage, run(context.Background(), []string{"-unknown"}, &stdout, &stderr))
	assert.Equal(t, exitUsage, run(context.Background(), []string{"-log-level", "loud"}, &stdout, &stderr))
}
