package unresolver

import (
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRobotsCacheDisallow(t *testing.T) {
	hits := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, _ *http.Request) {
		hits++
		_, _ = w.Write([]byte("User-agent: *\nDisallow: /private/\n"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	rc := newRobotsCache(time.Second, "Unresolver/1.0")
	assert.False(t, rc.Allowed(srv.URL+"/private/page"))
	assert.True(t, rc.Allowed(srv.URL+"/public/page"))
	// one robots.txt fetch per host
	assert.Equal(t, 1, hits)
}

func TestRobotsCacheMissingFileAllowsAll(t *testing.T) {
	srv := httptest.NewServer(http.NewServeMux())
	defer srv.Close()

	rc := newRobotsCache(time.Second, "Unresolver/1.0")
	assert.True(t, rc.Allowed(srv.URL+"/anything"))
}

func TestRobotsCacheUnreachableHostAllowsAll(t *testing.T) {
	ln, errListen := net.Listen("tcp", "127.0.0.1:0")
	assert.NoError(t, errListen)
	addr := ln.Addr().String()
	ln.Close()

	rc := newRobotsCache(time.Second, "Unresolver/1.0")
	assert.True(t, rc.Allowed("http://"+addr+"/page"))
	assert.True(t, rc.Allowed("not-even-absolute"))
}
