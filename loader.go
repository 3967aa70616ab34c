package unresolver

import (
	"fmt"
	"io/fs"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
)

// FindDocuments enumerates the HTML documents to scan. A file path is
// taken as-is when it carries an html/htm extension; a directory is
// walked recursively. The returned order is the walk's lexical order,
// deterministic across runs.
func FindDocuments(path string) ([]string, error) {
	info, errStat := os.Stat(path)
	if errStat != nil {
		return nil, fmt.Errorf("cannot access path: %w", errStat)
	}
	if !info.IsDir() {
		if isHTMLFile(path) {
			return []string{path}, nil
		}
		return nil, nil
	}
	var documents []string
	errWalk := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			// unreadable subtree, keep walking the rest
			return nil
		}
		if !d.IsDir() && isHTMLFile(p) {
			documents = append(documents, p)
		}
		return nil
	})
	if errWalk != nil {
		return nil, errWalk
	}
	return documents, nil
}

func isHTMLFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}

// readDocument loads raw document bytes. Decoding stays permissive, the
// tokenizer copes with whatever byte soup comes in.
func readDocument(path string) ([]byte, error) {
	return ioutil.ReadFile(path)
}
