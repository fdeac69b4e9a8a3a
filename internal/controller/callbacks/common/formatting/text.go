package formatting

import (
	"html"
	"unicode/utf8"
)

// Escape экранирует пользовательский текст для HTML parse mode
func Escape(s string) string {
	return html.EscapeString(s)
}

// Truncate обрезает строку до n символов с многоточием
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-1]) + "…"
}
