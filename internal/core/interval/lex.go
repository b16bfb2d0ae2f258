package interval

import "strings"

type tokenKind int

const (
	tokNumber tokenKind = iota // all ASCII digits, e.g. "12"
	tokWord                    // anything else, e.g. "days" or "abc"
	tokFused                   // digits followed by lowercase letters, e.g. "2months"
	tokClock                   // contains a colon, e.g. "01:30:00"
)

type token struct {
	kind tokenKind
	text string

	// set for tokFused only
	magnitude string
	unit      string
}

// lex splits trimmed interval text on single spaces and classifies every
// piece. Consecutive spaces produce empty tokWord tokens, which the
// consumer rejects.
func lex(text string) []token {
	parts := strings.Split(text, " ")
	tokens := make([]token, 0, len(parts))
	for _, p := range parts {
		tokens = append(tokens, classify(p))
	}
	return tokens
}

func classify(s string) token {
	if strings.Contains(s, ":") {
		return token{kind: tokClock, text: s}
	}
	if s != "" && isDigits(s) {
		return token{kind: tokNumber, text: s}
	}
	if n := digitPrefix(s); n > 0 && n < len(s) && isLower(s[n:]) {
		return token{kind: tokFused, text: s, magnitude: s[:n], unit: s[n:]}
	}
	return token{kind: tokWord, text: s}
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isLower(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

func digitPrefix(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}
