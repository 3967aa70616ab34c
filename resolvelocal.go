package unresolver

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/hailystevens/unresolver/config"
)

// resolveLocal reports whether the target of a local reference exists on
// disk. Absolute targets ("/...") resolve under the configured site root;
// without one they fall back to the referencing document's parent
// directory, which approximates an unknown web root and is kept for
// compatibility with multi-level site layouts that worked before.
func resolveLocal(rawURL, documentPath string, conf *config.Config) bool {
	urlPath := referencePath(rawURL)
	baseDir := filepath.Dir(documentPath)

	var target string
	if strings.HasPrefix(urlPath, "/") {
		trimmed := strings.TrimPrefix(urlPath, "/")
		if conf.SiteRoot != "" {
			target = filepath.Join(conf.SiteRoot, filepath.FromSlash(trimmed))
		} else {
			target = filepath.Join(baseDir, filepath.FromSlash(trimmed))
		}
	} else {
		target = filepath.Join(baseDir, filepath.FromSlash(urlPath))
	}

	info, errStat := os.Stat(target)
	if errStat == nil {
		if !info.IsDir() {
			return true
		}
		// a bare directory only counts when it has an index file
		return hasIndexFile(target, conf.IndexFiles)
	}

	// pretty urls: an extension-less missing path is treated as an
	// implicit directory and gets the same index file fallback
	if filepath.Ext(target) == "" {
		return hasIndexFile(target, conf.IndexFiles)
	}
	return false
}

func hasIndexFile(dir string, indexFiles []string) bool {
	for _, name := range indexFiles {
		info, errStat := os.Stat(filepath.Join(dir, name))
		if errStat == nil && !info.IsDir() {
			return true
		}
	}
	return false
}

// referencePath extracts the percent-decoded path component of a raw
// reference, dropping query string and fragment. Targets net/url refuses
// to parse are stripped by hand so resolution stays best effort.
func referencePath(rawURL string) string {
	if u, errParse := url.Parse(rawURL); errParse == nil {
		return u.Path
	}
	raw := rawURL
	if i := strings.IndexByte(raw, '#'); i >= 0 {
		raw = raw[:i]
	}
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		raw = raw[:i]
	}
	if decoded, errUnescape := url.PathUnescape(raw); errUnescape == nil {
		return decoded
	}
	return raw
}
