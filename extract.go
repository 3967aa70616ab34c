package unresolver

import (
	"bytes"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/hailystevens/unresolver/vo"
)

// linkTags maps the tags we scan to the attribute carrying the target.
var linkTags = map[string]string{
	"a":      "href",
	"link":   "href",
	"img":    "src",
	"script": "src",
	"iframe": "src",
	"area":   "href",
}

// extractReferences scans raw document bytes and returns one Reference per
// recognized tag occurrence, in source order with 1-based line numbers.
// Malformed markup is tolerated, the tokenizer just keeps going; the only
// error source is the underlying reader, which cannot fail on a byte slice.
func extractReferences(content []byte) (refs []vo.Reference, err error) {
	z := html.NewTokenizer(bytes.NewReader(content))
	line := 1
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// io.EOF on a bytes.Reader, nothing else to see
			return refs, nil
		}
		tokenLine := line
		line += bytes.Count(z.Raw(), []byte{'\n'})
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			continue
		}
		token := z.Token()
		attrName, ok := linkTags[token.Data]
		if !ok {
			continue
		}
		// duplicate attributes on one tag: last occurrence wins
		value := ""
		for _, attr := range token.Attr {
			if attr.Key == attrName {
				value = attr.Val
			}
		}
		if value == "" {
			continue
		}
		refs = append(refs, vo.Reference{
			Tag:  token.Data,
			Attr: attrName,
			URL:  value,
			Line: tokenLine,
		})
	}
}

// extractTitle pulls the document title for report headers. Best effort,
// a document without a parseable title just reports an empty string.
func extractTitle(content []byte) string {
	doc, errDoc := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if errDoc != nil {
		return ""
	}
	return doc.Find("title").First().Text()
}
