package xmlutil

import (
	"encoding/xml"
	"strings"
)

// Escape returns s with XML special characters escaped for use as element
// text or attribute content.
func Escape(s string) string {
	var b strings.Builder
	// xml.EscapeText only fails on writer errors; strings.Builder has none
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
