package unresolver

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hailystevens/unresolver/config"
	"github.com/hailystevens/unresolver/vo"
)

// ErrNoDocuments is returned by Scan when the input path matches no
// html/htm files at all.
var ErrNoDocuments = errors.New("no HTML files found")

// Checker ties the extractor, classifier and resolvers together for one
// run. The external cache lives exactly as long as the Checker, there is
// no cross-run persistence.
type Checker struct {
	conf    *config.Config
	cache   *ExternalCache
	prober  *Prober
	robots  *robotsCache
	metrics *Metrics
}

func NewChecker(conf *config.Config) *Checker {
	return newChecker(conf, nil)
}

func newChecker(conf *config.Config, metrics *Metrics) *Checker {
	c := &Checker{
		conf:    conf,
		cache:   NewExternalCache(),
		prober:  NewProber(conf.ProbeTimeout(), conf.Agent),
		metrics: metrics,
	}
	c.cache.metrics = metrics
	c.prober.metrics = metrics
	if conf.RespectRobots {
		c.robots = newRobotsCache(conf.ProbeTimeout(), conf.Agent)
	}
	return c
}

// Scan enumerates documents under path and runs the full check over them.
func (c *Checker) Scan(ctx context.Context, path string) (vo.RunReport, error) {
	documents, errFind := FindDocuments(path)
	if errFind != nil {
		return nil, errFind
	}
	if len(documents) == 0 {
		return nil, ErrNoDocuments
	}
	return c.Run(ctx, documents)
}

// documentScan is the phase-one result for one document: either an error
// or the extracted references, never both.
type documentScan struct {
	path  string
	title string
	err   string
	refs  []vo.Reference
}

// Run checks every given document. External URLs are deduplicated across
// the whole run and probed by a bounded worker pool before verdicts are
// aggregated, so aggregation itself only ever hits the warm cache.
// Cancellation stops new probes promptly and fails the run as a whole.
func (c *Checker) Run(ctx context.Context, documents []string) (vo.RunReport, error) {
	scans := make([]documentScan, 0, len(documents))
	for _, path := range documents {
		scans = append(scans, c.scanDocument(path))
	}

	if c.conf.CheckExternal {
		if errWarm := c.prewarm(ctx, externalURLs(scans, c.robots)); errWarm != nil {
			return nil, errWarm
		}
	}

	run := make(vo.RunReport, 0, len(scans))
	for _, scan := range scans {
		run = append(run, c.aggregate(ctx, scan))
	}
	totals := run.Totals()
	c.metrics.ObserveRun(totals.Files, totals.Broken)
	return run, nil
}

func (c *Checker) scanDocument(path string) documentScan {
	scan := documentScan{path: path}
	content, errRead := readDocument(path)
	if errRead != nil {
		scan.err = "Failed to read file: " + errRead.Error()
		return scan
	}
	refs, errParse := extractReferences(content)
	if errParse != nil {
		scan.err = "Failed to parse HTML: " + errParse.Error()
		return scan
	}
	scan.refs = refs
	scan.title = extractTitle(content)
	return scan
}

// externalURLs collects the distinct external targets of a run in first
// seen order, leaving out everything a robots gate already rules out.
func externalURLs(scans []documentScan, robots *robotsCache) []string {
	seen := map[string]bool{}
	var urls []string
	for _, scan := range scans {
		for _, ref := range scan.refs {
			if Classify(ref.URL) != vo.CategoryExternal || seen[ref.URL] {
				continue
			}
			seen[ref.URL] = true
			if robots != nil && !robots.Allowed(ref.URL) {
				continue
			}
			urls = append(urls, ref.URL)
		}
	}
	return urls
}

// prewarm probes the deduplicated external URL set with a bounded pool.
func (c *Checker) prewarm(ctx context.Context, urls []string) error {
	if len(urls) == 0 {
		return nil
	}
	concurrency := c.conf.Concurrency
	if concurrency > len(urls) {
		concurrency = len(urls)
	}
	jobs := make(chan string)
	var wg sync.WaitGroup
	wg.Add(concurrency)
	for i := 0; i < concurrency; i++ {
		go func() {
			defer wg.Done()
			for targetURL := range jobs {
				if ctx.Err() != nil {
					continue
				}
				_, _ = c.cache.Resolve(ctx, targetURL, c.prober.Probe)
			}
		}()
	}
	for _, targetURL := range urls {
		select {
		case jobs <- targetURL:
		case <-ctx.Done():
		}
		if ctx.Err() != nil {
			break
		}
	}
	close(jobs)
	wg.Wait()
	if ctx.Err() != nil {
		return fmt.Errorf("scan stopped: %w", ctx.Err())
	}
	return nil
}

func (c *Checker) aggregate(ctx context.Context, scan documentScan) vo.DocumentReport {
	report := vo.DocumentReport{
		File:  scan.path,
		Title: scan.title,
		Error: scan.err,
		Links: make([]vo.CheckedReference, 0, len(scan.refs)),
	}
	for _, ref := range scan.refs {
		report.Links = append(report.Links, vo.CheckedReference{
			Reference: ref,
			Verdict:   c.verdict(ctx, ref.URL, scan.path),
		})
	}
	return report
}

// verdict resolves one reference. Failures never escape as errors, every
// reference ends up with a status and a reason.
func (c *Checker) verdict(ctx context.Context, rawURL, documentPath string) vo.Verdict {
	switch Classify(rawURL) {
	case vo.CategoryFragment, vo.CategorySpecialProtocol:
		return vo.Verdict{Status: vo.StatusSkipped, Reason: vo.ReasonSpecialProtocol}
	case vo.CategoryExternal:
		return c.verdictExternal(ctx, rawURL)
	default:
		if resolveLocal(rawURL, documentPath, c.conf) {
			return vo.Verdict{Status: vo.StatusValid, Reason: vo.ReasonLocalExists}
		}
		return vo.Verdict{Status: vo.StatusBroken, Reason: vo.ReasonLocalMissing}
	}
}

func (c *Checker) verdictExternal(ctx context.Context, rawURL string) vo.Verdict {
	if !c.conf.CheckExternal {
		return vo.Verdict{Status: vo.StatusSkipped, Reason: vo.ReasonExternalDisabled}
	}
	if c.robots != nil && !c.robots.Allowed(rawURL) {
		return vo.Verdict{Status: vo.StatusSkipped, Reason: vo.ReasonRobotsBlocked}
	}
	reachable, errResolve := c.cache.Resolve(ctx, rawURL, c.prober.Probe)
	if errResolve != nil || !reachable {
		return vo.Verdict{Status: vo.StatusBroken, Reason: vo.ReasonExternalDead}
	}
	return vo.Verdict{Status: vo.StatusValid, Reason: vo.ReasonExternalReachable}
}

// CheckDocument runs the synchronous single-document path, probing
// external references inline as they come up.
func (c *Checker) CheckDocument(ctx context.Context, path string) vo.DocumentReport {
	return c.aggregate(ctx, c.scanDocument(path))
}
