// Package stylesheet reads back the rules of a generated stylesheet so
// that it can be compared with a fresh generation.
package stylesheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Declaration is one property: value pair of a rule.
type Declaration struct {
	Property string // "padding-left"
	Value    string // "4px"
}

// Rule is a style rule and the media condition gating it.
type Rule struct {
	Media        string        // "screen and (min-width: 768px)", empty when unconditional
	Selector     string        // ".p-md-sm"
	Declarations []Declaration // In source order
}

// Key identifies a rule by media condition and selector.
func (r Rule) Key() string {
	if r.Media == "" {
		return r.Selector
	}
	return "@media " + r.Media + " " + r.Selector
}

// Body renders the declarations on one line: "padding: 4px; margin: 0;".
func (r Rule) Body() string {
	parts := make([]string, 0, len(r.Declarations))
	for _, d := range r.Declarations {
		parts = append(parts, fmt.Sprintf("%s: %s;", d.Property, d.Value))
	}
	return strings.Join(parts, " ")
}

// parserState maintains context while lexing
type parserState struct {
	lexer *css.Lexer
	media []string // Enclosing @media conditions, innermost last
	rules []Rule
}

// Parse lexes content and returns its style rules in source order.
// Nested @media blocks are joined with " and ".
func Parse(content string) ([]Rule, error) {
	state := &parserState{
		lexer: css.NewLexer(parse.NewInputString(content)),
	}

	var prelude strings.Builder

	for {
		tt, text := state.lexer.Next()
		switch tt {
		case css.ErrorToken:
			if err := state.lexer.Err(); err != nil && err != io.EOF {
				return nil, fmt.Errorf("lex stylesheet: %w", err)
			}
			return state.rules, nil

		case css.CommentToken:
			continue

		case css.AtKeywordToken:
			if strings.EqualFold(string(text), "@media") {
				state.handleMedia()
				prelude.Reset()
				continue
			}
			// Other at-rules are skipped up to their end
			state.skipAtRule()
			prelude.Reset()

		case css.RightBraceToken:
			// Closes the innermost @media block
			if len(state.media) > 0 {
				state.media = state.media[:len(state.media)-1]
			}
			prelude.Reset()

		case css.LeftBraceToken:
			state.handleRule(collapse(prelude.String()))
			prelude.Reset()

		case css.WhitespaceToken:
			prelude.WriteByte(' ')

		default:
			prelude.Write(text)
		}
	}
}

// handleMedia reads the @media prelude up to its opening brace.
func (s *parserState) handleMedia() {
	var prelude strings.Builder
	for {
		tt, text := s.lexer.Next()
		switch tt {
		case css.ErrorToken:
			return
		case css.LeftBraceToken:
			s.media = append(s.media, collapse(prelude.String()))
			return
		case css.SemicolonToken:
			// @media without a block
			return
		case css.WhitespaceToken, css.CommentToken:
			prelude.WriteByte(' ')
		default:
			prelude.Write(text)
		}
	}
}

// skipAtRule consumes an unsupported at-rule and its block, if any.
func (s *parserState) skipAtRule() {
	depth := 0
	for {
		tt, _ := s.lexer.Next()
		switch tt {
		case css.ErrorToken:
			return
		case css.SemicolonToken:
			if depth == 0 {
				return
			}
		case css.LeftBraceToken:
			depth++
		case css.RightBraceToken:
			depth--
			if depth <= 0 {
				return
			}
		}
	}
}

// handleRule reads the declaration block of selector.
func (s *parserState) handleRule(selector string) {
	rule := Rule{
		Media:        strings.Join(s.media, " and "),
		Selector:     selector,
		Declarations: s.extractDeclarations(),
	}
	s.rules = append(s.rules, rule)
}

// extractDeclarations reads property: value pairs until }
func (s *parserState) extractDeclarations() []Declaration {
	var (
		decls       []Declaration
		currentProp string
		currentVal  strings.Builder
		seenColon   bool
	)

	flush := func() {
		if currentProp != "" && seenColon {
			decls = append(decls, Declaration{
				Property: currentProp,
				Value:    collapse(currentVal.String()),
			})
		}
		currentProp = ""
		currentVal.Reset()
		seenColon = false
	}

	for {
		tt, text := s.lexer.Next()

		switch {
		case tt == css.ErrorToken || tt == css.RightBraceToken:
			flush()
			return decls
		case tt == css.CommentToken:
			continue
		case tt == css.SemicolonToken:
			flush()
		case tt == css.ColonToken && currentProp != "" && !seenColon:
			seenColon = true
		case !seenColon && (tt == css.IdentToken || tt == css.CustomPropertyNameToken):
			currentProp = string(text)
		case seenColon && tt == css.WhitespaceToken:
			currentVal.WriteByte(' ')
		case seenColon:
			currentVal.Write(text)
		}
	}
}

// collapse trims s and folds whitespace runs into single spaces.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
