package unresolver

import (
	"context"
	"io"
	"io/ioutil"
	"net"
	"net/http"
	"time"
)

// maxProbeBodyRead caps how much of a probe response body gets drained
// so keepalive connections can be reused without reading huge pages.
const maxProbeBodyRead = 1 << 20

// Prober answers a single question per URL: does a GET come back with a
// status below 400 before the timeout. Every failure mode collapses to
// unreachable, transient or not.
type Prober struct {
	agent   string
	client  *http.Client
	metrics *Metrics
}

func NewProber(timeout time.Duration, agent string) *Prober {
	return &Prober{
		agent: agent,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Dial: (&net.Dialer{
					Timeout: timeout,
				}).Dial,
				TLSHandshakeTimeout: timeout,
			},
		},
	}
}

func (p *Prober) Probe(ctx context.Context, targetURL string) bool {
	start := time.Now()
	reachable := p.probe(ctx, targetURL)
	p.metrics.ObserveProbe(time.Since(start), reachable)
	return reachable
}

func (p *Prober) probe(ctx context.Context, targetURL string) bool {
	req, errRequest := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if errRequest != nil {
		return false
	}
	req.Header.Set("User-Agent", p.agent)

	resp, errGet := p.client.Do(req)
	if errGet != nil {
		return false
	}
	defer resp.Body.Close()
	_, _ = io.CopyN(ioutil.Discard, resp.Body, maxProbeBodyRead)
	return resp.StatusCode < 400
}
