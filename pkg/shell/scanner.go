package shell

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
	"golang.org/x/text/unicode/norm"
)

type tokenKind int

const (
	tokenIdent tokenKind = iota
	tokenNumber
	tokenString
	tokenPunct
	tokenEOF
)

type token struct {
	kind tokenKind
	text string
}

// Identifier and literal shapes follow the host language the object model
// serves, so property keys typed at the prompt behave like script names.
var (
	identPattern  = regexp2.MustCompile(`\A[\p{L}_$][\p{L}\p{Nd}_$]*`, regexp2.Unicode)
	numberPattern = regexp2.MustCompile(`\A-?(?:0|[1-9]\d*)(?:\.\d+)?(?:[eE][+-]?\d+)?`, regexp2.None)
	stringPattern = regexp2.MustCompile(`\A"(?:[^"\\]|\\.)*"`, regexp2.None)
)

const punctChars = ".=(),{}[]"

// scan tokenizes one input line. Identifiers are NFC-normalized so visually
// identical names always address the same property slot.
func scan(line string) ([]token, error) {
	line = norm.NFC.String(line)
	var tokens []token
	rest := line
	for {
		rest = strings.TrimLeft(rest, " \t")
		if rest == "" {
			break
		}
		if m, _ := identPattern.FindStringMatch(rest); m != nil {
			tokens = append(tokens, token{kind: tokenIdent, text: m.String()})
			rest = rest[len(m.String()):]
			continue
		}
		if m, _ := stringPattern.FindStringMatch(rest); m != nil {
			tokens = append(tokens, token{kind: tokenString, text: m.String()})
			rest = rest[len(m.String()):]
			continue
		}
		if m, _ := numberPattern.FindStringMatch(rest); m != nil && m.String() != "" && m.String() != "-" {
			tokens = append(tokens, token{kind: tokenNumber, text: m.String()})
			rest = rest[len(m.String()):]
			continue
		}
		if strings.ContainsRune(punctChars, rune(rest[0])) {
			tokens = append(tokens, token{kind: tokenPunct, text: rest[:1]})
			rest = rest[1:]
			continue
		}
		return nil, fmt.Errorf("unexpected character %q", rest[0])
	}
	tokens = append(tokens, token{kind: tokenEOF})
	return tokens, nil
}
