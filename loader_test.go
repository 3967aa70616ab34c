package unresolver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindDocumentsSingleFile(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "page.html")
	writeFile(t, doc)

	docs, errFind := FindDocuments(doc)
	assert.NoError(t, errFind)
	assert.Equal(t, []string{doc}, docs)
}

func TestFindDocumentsSingleNonHTMLFile(t *testing.T) {
	dir := t.TempDir()
	other := filepath.Join(dir, "notes.txt")
	writeFile(t, other)

	docs, errFind := FindDocuments(other)
	assert.NoError(t, errFind)
	assert.Empty(t, docs)
}

func TestFindDocumentsWalk(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.html"))
	writeFile(t, filepath.Join(dir, "z.htm"))
	writeFile(t, filepath.Join(dir, "UPPER.HTML"))
	writeFile(t, filepath.Join(dir, "sub", "deep.html"))
	writeFile(t, filepath.Join(dir, "sub", "skip.css"))

	docs, errFind := FindDocuments(dir)
	assert.NoError(t, errFind)
	assert.Equal(t, []string{
		filepath.Join(dir, "UPPER.HTML"),
		filepath.Join(dir, "a.html"),
		filepath.Join(dir, "sub", "deep.html"),
		filepath.Join(dir, "z.htm"),
	}, docs)
}

func TestFindDocumentsMissingPath(t *testing.T) {
	_, errFind := FindDocuments(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, errFind)
}

func TestReadDocumentTolerantBytes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "latin1.html")
	assert.NoError(t, os.WriteFile(path, []byte("<a href=\"x.html\">caf\xe9</a>"), 0644))

	content, errRead := readDocument(path)
	assert.NoError(t, errRead)
	refs, errExtract := extractReferences(content)
	assert.NoError(t, errExtract)
	assert.Len(t, refs, 1)
	assert.Equal(t, "x.html", refs[0].URL)
}
