// Package htmlmeta reads lightweight metadata from saved HTML pages.
package htmlmeta

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Title returns the text of the first <title> element, with whitespace
// collapsed. It returns "" when the document has no title or is not HTML.
func Title(body []byte) string {
	z := html.NewTokenizer(bytes.NewReader(body))
	inTitle := false
	var sb strings.Builder

	for {
		switch z.Next() {
		case html.ErrorToken:
			// EOF or malformed input
			return collapse(sb.String())
		case html.StartTagToken:
			name, _ := z.TagName()
			if atom.Lookup(name) == atom.Title {
				inTitle = true
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if inTitle && atom.Lookup(name) == atom.Title {
				return collapse(sb.String())
			}
		case html.TextToken:
			if inTitle {
				sb.Write(z.Text())
			}
		}
	}
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
