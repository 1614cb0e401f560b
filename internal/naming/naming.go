// Package naming converts API description names into Go identifiers.
package naming

import (
	"go/token"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultInitialisms are words always rendered upper-case.
var DefaultInitialisms = []string{"api", "http", "id", "ip", "json", "sku", "uid", "uri", "url", "uuid"}

// Namer turns schema, property and enum value names into Go identifiers.
// A Namer is not safe for concurrent use.
type Namer struct {
	initialisms map[string]bool
	title       cases.Caser
}

// NewNamer returns a Namer that upper-cases DefaultInitialisms and extra.
func NewNamer(extra ...string) *Namer {
	n := &Namer{
		initialisms: make(map[string]bool, len(DefaultInitialisms)+len(extra)),
		title:       cases.Title(language.Und),
	}
	for _, w := range DefaultInitialisms {
		n.initialisms[w] = true
	}
	for _, w := range extra {
		n.initialisms[strings.ToLower(w)] = true
	}
	return n
}

// SplitWords splits s into lower-case words. Any non-alphanumeric rune
// separates words, and so does an upper-case letter that follows a
// lower-case letter or a digit.
// Example: "loyalty_account_id" -> ["loyalty" "account" "id"]
// Example: "customerID" -> ["customer" "id"]
// Example: "VISIBILITY_READ_ONLY" -> ["visibility" "read" "only"]
func SplitWords(s string) []string {
	var (
		words []string
		cur   strings.Builder
		prev  rune
	)
	flush := func() {
		if cur.Len() > 0 {
			words = append(words, strings.ToLower(cur.String()))
			cur.Reset()
		}
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			prev = 0
			continue
		}
		if unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
			flush()
		}
		cur.WriteRune(r)
		prev = r
	}
	flush()
	return words
}

// Word formats a single lower-case word: initialisms are upper-cased (with a
// plural "s" kept lower-case, as in "IDs"), anything else is title-cased.
func (n *Namer) Word(w string) string {
	if n.initialisms[w] {
		return strings.ToUpper(w)
	}
	if stem, ok := strings.CutSuffix(w, "s"); ok && len(w) > 1 && n.initialisms[stem] {
		return strings.ToUpper(stem) + "s"
	}
	return n.title.String(w)
}

// TypeName returns the exported Go identifier for s.
// Example: "loyalty_account_id" -> "LoyaltyAccountID"
// Example: "group_ids" -> "GroupIDs"
func (n *Namer) TypeName(s string) string {
	var b strings.Builder
	for _, w := range SplitWords(s) {
		b.WriteString(n.Word(w))
	}
	name := b.String()
	if name == "" {
		return "Type"
	}
	if first := []rune(name)[0]; !unicode.IsLetter(first) {
		name = "T" + name
	}
	return name
}

// ParamName returns the unexported Go identifier for s. Go keywords get a
// trailing underscore.
// Example: "loyalty_account_id" -> "loyaltyAccountID"
// Example: "type" -> "type_"
func (n *Namer) ParamName(s string) string {
	words := SplitWords(s)
	if len(words) == 0 {
		return "v"
	}
	var b strings.Builder
	b.WriteString(words[0])
	for _, w := range words[1:] {
		b.WriteString(n.Word(w))
	}
	name := b.String()
	if token.IsKeyword(name) {
		name += "_"
	}
	if first := []rune(name)[0]; !unicode.IsLetter(first) {
		name = "p" + name
	}
	return name
}

// ToSnakeCase converts a Go identifier to snake_case.
// A run of capitals is one word, so initialisms stay together, including a
// plural initialism such as "IDs".
// Existing separators (hyphen, dot, slash) are converted to underscores.
// Example: "UserProfile" -> "user_profile"
// Example: "APIKeyIDs" -> "api_key_ids"
func ToSnakeCase(s string) string {
	if s == "" {
		return ""
	}

	runes := []rune(s)
	lowerAt := func(i int) bool { return i < len(runes) && unicode.IsLower(runes[i]) }

	var result strings.Builder
	for i, r := range runes {
		switch {
		case unicode.IsUpper(r):
			if i > 0 && startsWord(runes, i, lowerAt) {
				result.WriteRune('_')
			}
			result.WriteRune(unicode.ToLower(r))
		case r == '-' || r == '.' || r == '/':
			result.WriteRune('_')
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}

// startsWord reports whether the capital at i begins a new word: it follows
// a lower-case letter or digit, or it ends a run of capitals and is followed
// by a lower-case word other than a plural "s".
func startsWord(runes []rune, i int, lowerAt func(int) bool) bool {
	prev := runes[i-1]
	if unicode.IsLower(prev) || unicode.IsDigit(prev) {
		return true
	}
	if !unicode.IsUpper(prev) || !lowerAt(i+1) {
		return false
	}
	plural := runes[i+1] == 's' && !lowerAt(i+2)
	return !plural
}

// FileName returns the generated file name for a Go type name.
func FileName(typeName string, suffix string) string {
	return ToSnakeCase(typeName) + suffix + ".go"
}
