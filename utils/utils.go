package utils

import (
	"strings"
	"unicode/utf8"
)

// MaxDiscordMessageLength is the content limit Discord enforces on messages and interaction responses
const MaxDiscordMessageLength = 2000

const (
	jsonFenceOpen  = "```json\n"
	jsonFenceClose = "\n```"
	ellipsis       = "…"
)

func AssertInvariant(condition bool, message string) {
	if !condition {
		panic("invariant violated - " + message)
	}
}

// FormatJSONBlock renders "<header>\n```json\n<payload>\n```". The payload is cut short
// with a trailing ellipsis when the whole message would exceed MaxDiscordMessageLength.
func FormatJSONBlock(header, payload string) string {
	prefix := header + "\n" + jsonFenceOpen
	budget := MaxDiscordMessageLength - utf8.RuneCountInString(prefix) - utf8.RuneCountInString(jsonFenceClose)
	return prefix + truncateRunes(payload, budget) + jsonFenceClose
}

// TruncateMessage cuts content down to MaxDiscordMessageLength characters
func TruncateMessage(content string) string {
	return truncateRunes(content, MaxDiscordMessageLength)
}

func truncateRunes(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= limit {
		return s
	}

	keep := limit - utf8.RuneCountInString(ellipsis)
	if keep <= 0 {
		return string([]rune(ellipsis)[:limit])
	}

	var b strings.Builder
	n := 0
	for _, r := range s {
		if n == keep {
			break
		}
		b.WriteRune(r)
		n++
	}
	b.WriteString(ellipsis)
	return b.String()
}
