package format

import (
	"strings"

	"github.com/gomarkdown/markdown"
)

// RenderReplyHTML converts a plain-text reply into an HTML fragment for the
// chat page. Replies are short single paragraphs, so the whole text is
// processed as one markdown block.
func RenderReplyHTML(reply string) string {
	if strings.TrimSpace(reply) == "" {
		return ""
	}
	html := string(markdown.ToHTML([]byte(reply), nil, nil))
	return strings.TrimSpace(html)
}
