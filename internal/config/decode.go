package config

import (
	encjson "encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/json"
)

// kind classifies a decoded JSON value
type kind int

const (
	kindString kind = iota
	kindNumber
	kindLiteral // true, false, null
	kindObject
	kindArray
)

// node is a decoded JSON value that keeps object keys in document order
type node struct {
	kind   kind
	text   string  // scalar text, unquoted for strings
	fields []field // object members in document order
	items  []node  // array elements
}

type field struct {
	key string
	val node
}

// decode parses exactly one JSON value from data.
func decode(data []byte) (node, error) {
	in := parse.NewInputBytes(data)
	defer in.Restore()

	p := json.NewParser(in)

	gt, text := p.Next()
	n, err := readValue(p, gt, text)
	if err != nil {
		return node{}, err
	}

	// Anything but a clean EOF after the top-level value is an error
	if gt, _ := p.Next(); gt != json.ErrorGrammar {
		return node{}, errors.New("unexpected data after top-level value")
	}
	if err := p.Err(); err != io.EOF {
		return node{}, parserError(p)
	}

	// The grammar parser tolerates trailing commas
	if !encjson.Valid(data) {
		return node{}, syntaxError(data)
	}

	return n, nil
}

// syntaxError reports where encoding/json rejects data.
func syntaxError(data []byte) error {
	var v any
	err := encjson.Unmarshal(data, &v)

	var serr *encjson.SyntaxError
	if !errors.As(err, &serr) {
		return errors.New("malformed JSON")
	}

	end := min(max(int(serr.Offset)-1, 0), len(data))
	line, col := 1, 1
	for _, c := range data[:end] {
		if c == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return fmt.Errorf("%s (line %d, column %d)", serr.Error(), line, col)
}

// readValue decodes the value that starts with the token (gt, text).
func readValue(p *json.Parser, gt json.GrammarType, text []byte) (node, error) {
	switch gt {
	case json.StringGrammar:
		s, err := unquote(text)
		if err != nil {
			return node{}, err
		}
		return node{kind: kindString, text: s}, nil

	case json.NumberGrammar:
		return node{kind: kindNumber, text: string(text)}, nil

	case json.LiteralGrammar:
		return node{kind: kindLiteral, text: string(text)}, nil

	case json.StartObjectGrammar:
		obj := node{kind: kindObject}
		for {
			gt, text := p.Next()
			if gt == json.EndObjectGrammar {
				return obj, nil
			}
			if gt != json.StringGrammar {
				return node{}, parserError(p)
			}

			key, err := unquote(text)
			if err != nil {
				return node{}, err
			}

			vgt, vtext := p.Next()
			val, err := readValue(p, vgt, vtext)
			if err != nil {
				return node{}, err
			}
			obj.fields = append(obj.fields, field{key: key, val: val})
		}

	case json.StartArrayGrammar:
		arr := node{kind: kindArray}
		for {
			gt, text := p.Next()
			if gt == json.EndArrayGrammar {
				return arr, nil
			}
			val, err := readValue(p, gt, text)
			if err != nil {
				return node{}, err
			}
			arr.items = append(arr.items, val)
		}
	}

	return node{}, parserError(p)
}

// parserError converts the parser state into a single-line error.
func parserError(p *json.Parser) error {
	err := p.Err()
	if err == nil || err == io.EOF {
		return errors.New("unexpected end of input")
	}

	var perr *parse.Error
	if errors.As(err, &perr) {
		return fmt.Errorf("%s (line %d, column %d)", perr.Message, perr.Line, perr.Column)
	}
	return err
}

// unquote decodes a JSON string token including its quotes.
func unquote(text []byte) (string, error) {
	var s string
	if err := encjson.Unmarshal(text, &s); err != nil {
		return "", fmt.Errorf("invalid string %s: %w", text, err)
	}
	return s, nil
}

// raw re-encodes n as compact JSON text.
func (n node) raw() string {
	switch n.kind {
	case kindString:
		return strconv.Quote(n.text)
	case kindObject:
		parts := make([]string, 0, len(n.fields))
		for _, f := range n.fields {
			parts = append(parts, strconv.Quote(f.key)+":"+f.val.raw())
		}
		return "{" + strings.Join(parts, ",") + "}"
	case kindArray:
		parts := make([]string, 0, len(n.items))
		for _, item := range n.items {
			parts = append(parts, item.raw())
		}
		return "[" + strings.Join(parts, ",") + "]"
	default:
		return n.text
	}
}

// scalar returns the text used as a raw config value: strings unquoted,
// numbers and literals as spelled, containers as compact JSON.
func (n node) scalar() string {
	switch n.kind {
	case kindString, kindNumber, kindLiteral:
		return n.text
	default:
		return n.raw()
	}
}
