// Package markdown escapes user-supplied text for Telegram Markdown messages.
package markdown

import "strings"

var escaper = strings.NewReplacer(
	"_", "\\_",
	"*", "\\*",
	"[", "\\[",
	"]", "\\]",
	"(", "\\(",
	")", "\\)",
	"~", "\\~",
	"`", "\\`",
	">", "\\>",
	"#", "\\#",
	"+", "\\+",
	"-", "\\-",
	"=", "\\=",
	"|", "\\|",
	"{", "\\{",
	"}", "\\}",
	".", "\\.",
	"!", "\\!",
)

// Escape backslash-escapes every character Telegram treats as formatting
// control, so arbitrary field values cannot break or inject formatting.
func Escape(s string) string {
	return escaper.Replace(s)
}
