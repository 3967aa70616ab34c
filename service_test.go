package unresolver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hailystevens/unresolver/config"
	"github.com/hailystevens/unresolver/vo"
)

func newTestService(t *testing.T) (*Service, string) {
	t.Helper()
	uiDir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(uiDir, "index.html"), []byte("<title>ui</title>"), 0644))
	s, errService := NewService(config.Default())
	assert.NoError(t, errService)
	return s, uiDir
}

func TestServiceStaticCORSHeaders(t *testing.T) {
	s, uiDir := newTestService(t)
	srv := httptest.NewServer(s.Handler(uiDir))
	defer srv.Close()

	resp, errGet := http.Get(srv.URL + "/index.html")
	assert.NoError(t, errGet)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "no-store, no-cache, must-revalidate", resp.Header.Get("Cache-Control"))
}

func TestServiceScanAPI(t *testing.T) {
	s, uiDir := newTestService(t)
	srv := httptest.NewServer(s.Handler(uiDir))
	defer srv.Close()

	docs := t.TempDir()
	writeDoc(t, docs, "index.html", `<a href="missing.html">x</a>`)

	resp, errGet := http.Get(srv.URL + "/api/scan?external=false&path=" + url.QueryEscape(docs))
	assert.NoError(t, errGet)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var run vo.RunReport
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&run))
	assert.Len(t, run, 1)
	assert.Equal(t, vo.StatusBroken, run[0].Links[0].Status)
}

func TestServiceScanAPIErrors(t *testing.T) {
	s, uiDir := newTestService(t)
	srv := httptest.NewServer(s.Handler(uiDir))
	defer srv.Close()

	resp, errGet := http.Get(srv.URL + "/api/scan")
	assert.NoError(t, errGet)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, errGet = http.Get(srv.URL + "/api/scan?path=" + url.QueryEscape(t.TempDir()))
	assert.NoError(t, errGet)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	s, uiDir := newTestService(t)
	srv := httptest.NewServer(s.Handler(uiDir))
	defer srv.Close()

	resp, errGet := http.Get(srv.URL + "/metrics")
	assert.NoError(t, errGet)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
