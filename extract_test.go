package unresolver

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"

	"github.com/hailystevens/unresolver/vo"
)

const testDocHTML = `<html>
<head>
	<title>Hello Test</title>
	<link rel="stylesheet" href="style.css">
	<script src="app.js"></script>
</head>
<body>
<a href="about.html">about</a>
<a href="">empty, must be ignored</a>
<img src="/images/logo.png">
<iframe src="embed.html"></iframe>
<map><area href="map-target.html"></map>
<a href="#top">fragment</a>
</body>
</html>
`

func TestExtractReferences(t *testing.T) {
	refs, errExtract := extractReferences([]byte(testDocHTML))
	assert.NoError(t, errExtract)
	t.Log(spew.Sdump(refs))

	assert.Equal(t, []vo.Reference{
		{Tag: "link", Attr: "href", URL: "style.css", Line: 4},
		{Tag: "script", Attr: "src", URL: "app.js", Line: 5},
		{Tag: "a", Attr: "href", URL: "about.html", Line: 8},
		{Tag: "img", Attr: "src", URL: "/images/logo.png", Line: 10},
		{Tag: "iframe", Attr: "src", URL: "embed.html", Line: 11},
		{Tag: "area", Attr: "href", URL: "map-target.html", Line: 12},
		{Tag: "a", Attr: "href", URL: "#top", Line: 13},
	}, refs)
}

func TestExtractReferencesDuplicateAttributeLastWins(t *testing.T) {
	refs, errExtract := extractReferences([]byte(`<a href="first.html" href="second.html">x</a>`))
	assert.NoError(t, errExtract)
	assert.Len(t, refs, 1)
	assert.Equal(t, "second.html", refs[0].URL)
}

func TestExtractReferencesMalformedMarkup(t *testing.T) {
	// unclosed tags, stray brackets, invalid bytes: still no error
	refs, errExtract := extractReferences([]byte("<html><body><a href=\"ok.html\"<p>><<\xff\xfe<img src='pic.png'"))
	assert.NoError(t, errExtract)
	urls := []string{}
	for _, ref := range refs {
		urls = append(urls, ref.URL)
	}
	assert.Contains(t, urls, "ok.html")
}

func TestExtractReferencesEmptyDocument(t *testing.T) {
	refs, errExtract := extractReferences(nil)
	assert.NoError(t, errExtract)
	assert.Empty(t, refs)
}

func TestExtractTitle(t *testing.T) {
	assert.Equal(t, "Hello Test", extractTitle([]byte(testDocHTML)))
	assert.Equal(t, "", extractTitle([]byte("<p>no title here</p>")))
}
