package telegram

import (
	"strings"
	"unicode/utf8"
)

// splitMessage breaks text into parts of at most limit characters, preferring
// line boundaries and then spaces
func splitMessage(text string, limit int) []string {
	if utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}

	var parts []string
	current := strings.Builder{}
	currentLength := 0

	for _, line := range strings.Split(text, "\n") {
		lineLength := utf8.RuneCountInString(line)

		if currentLength+lineLength+1 > limit {
			if current.Len() > 0 {
				parts = append(parts, current.String())
				current.Reset()
				currentLength = 0
			}

			if lineLength > limit {
				parts = append(parts, splitLongLine(line, limit)...)
				continue
			}
		}

		if current.Len() > 0 {
			current.WriteString("\n")
			currentLength++
		}
		current.WriteString(line)
		currentLength += lineLength
	}

	if current.Len() > 0 {
		parts = append(parts, current.String())
	}

	return parts
}

func splitLongLine(line string, limit int) []string {
	runes := []rune(line)
	if len(runes) <= limit {
		return []string{line}
	}

	var parts []string
	start := 0

	for start < len(runes) {
		end := start + limit
		if end > len(runes) {
			end = len(runes)
		}

		if end < len(runes) {
			if lastSpace := lastIndexRune(runes[start:end], ' '); lastSpace > 0 {
				end = start + lastSpace
			}
		}

		parts = append(parts, string(runes[start:end]))
		start = end

		for start < len(runes) && runes[start] == ' ' {
			start++
		}
	}

	return parts
}

func lastIndexRune(runes []rune, r rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == r {
			return i
		}
	}
	return -1
}
