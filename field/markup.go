package field

import (
	"regexp"
	"strings"
)

var tagRe = regexp.MustCompile(`<.*?>`)

var (
	htmlEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	htmlUnescaper = strings.NewReplacer(
		"&lt;", "<",
		"&gt;", ">",
		"&amp;", "&",
	)
)

// EscapeHTML escapes &, < and > for storage in HTML-safe stored text.
func EscapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}

// UnescapeHTML reverses EscapeHTML.
func UnescapeHTML(text string) string {
	return htmlUnescaper.Replace(text)
}

// RemoveMarkup deletes every tag-shaped substring and unescapes the
// basic entities. It is a textual strip, not an HTML parser.
func RemoveMarkup(text string) string {
	return UnescapeHTML(tagRe.ReplaceAllString(text, ""))
}
