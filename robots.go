package unresolver

import (
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/temoto/robotstxt"
)

// robotsCache fetches and keeps one robots.txt group per host for the
// duration of a run. Fetch failures fall back to the library's verdict
// for the response (4xx allows everything, 5xx allows nothing); hosts we
// cannot reach at all are treated as allowing everything, the probe will
// fail on its own terms anyway.
type robotsCache struct {
	agent  string
	client *http.Client

	mu     sync.Mutex
	groups map[string]*robotstxt.Group
}

func newRobotsCache(timeout time.Duration, agent string) *robotsCache {
	return &robotsCache{
		agent:  agent,
		client: &http.Client{Timeout: timeout},
		groups: map[string]*robotstxt.Group{},
	}
}

// Allowed reports whether our agent may fetch targetURL per the host's
// robots.txt.
func (r *robotsCache) Allowed(targetURL string) bool {
	u, errParse := url.Parse(targetURL)
	if errParse != nil || u.Host == "" {
		return true
	}
	group := r.group(u.Scheme + "://" + u.Host)
	if group == nil {
		return true
	}
	return group.Test(u.Path)
}

func (r *robotsCache) group(baseURL string) *robotstxt.Group {
	r.mu.Lock()
	defer r.mu.Unlock()
	group, ok := r.groups[baseURL]
	if ok {
		return group
	}
	group = r.fetchGroup(baseURL)
	r.groups[baseURL] = group
	return group
}

func (r *robotsCache) fetchGroup(baseURL string) *robotstxt.Group {
	resp, errGet := r.client.Get(baseURL + "/robots.txt")
	if errGet != nil {
		return nil
	}
	defer resp.Body.Close()
	data, errFromResponse := robotstxt.FromResponse(resp)
	if errFromResponse != nil {
		return nil
	}
	return data.FindGroup(r.agent)
}
