package trie

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrUnbalanced is returned when a group is not closed or an unexpected ')' appears
	ErrUnbalanced = errors.New("unbalanced parentheses")
	// ErrEmptyGroup is returned for a nested "()" group
	ErrEmptyGroup = errors.New("empty group")
	// ErrTrailingInput is returned when data follows the outer group
	ErrTrailingInput = errors.New("trailing input")
	// ErrNotCanonical is returned for well-formed input that String would never produce
	ErrNotCanonical = errors.New("not in canonical form")
)

// SyntaxError describes a failure to parse a serialized trie
type SyntaxError struct {
	Offset int // byte offset into the input
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %v", e.Offset, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Parse rebuilds a trie from the output of String.
//
// The text does not record whether a node with two or more children is itself
// a word, so such nodes come back as non-terminal. Every other node keeps its
// state, and Parse(t.String()).String() always equals t.String().
func Parse(s string) (*Trie, error) {
	p := &parser{src: s}
	t := New()

	if err := p.expect('('); err != nil {
		return nil, err
	}
	if err := p.parseBody(t, t.root); err != nil {
		return nil, err
	}
	if err := p.expect(')'); err != nil {
		return nil, err
	}
	if p.pos != len(p.src) {
		return nil, p.errorf(ErrTrailingInput)
	}

	if t.String() != s {
		return nil, &SyntaxError{Offset: 0, Err: ErrNotCanonical}
	}
	return t, nil
}

type parser struct {
	src string
	pos int
}

// peek returns the next rune without consuming it
func (p *parser) peek() (rune, int) {
	if p.pos >= len(p.src) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(p.src[p.pos:])
}

func (p *parser) errorf(err error) error {
	return &SyntaxError{Offset: p.pos, Err: err}
}

func (p *parser) expect(want rune) error {
	ch, size := p.peek()
	if size == 0 {
		return p.errorf(ErrUnbalanced)
	}
	if ch != want {
		if ch == '(' || ch == ')' {
			return p.errorf(ErrUnbalanced)
		}
		return p.errorf(fmt.Errorf("%w %q", ErrInvalidCharacter, ch))
	}
	p.pos += size
	return nil
}

// parseBody reads a chain followed by its child groups, attaching them below node
func (p *parser) parseBody(t *Trie, node *Node) error {
	for {
		ch, size := p.peek()
		if size == 0 {
			return p.errorf(ErrUnbalanced)
		}
		if ch == '(' || ch == ')' {
			break
		}
		if !unicode.IsLower(ch) {
			return p.errorf(fmt.Errorf("%w %q", ErrInvalidCharacter, ch))
		}
		child := newNode()
		node.children[ch] = child
		node = child
		p.pos += size
	}

	groups := 0
	for {
		ch, size := p.peek()
		if ch != '(' || size == 0 {
			break
		}
		p.pos += size

		edge, size := p.peek()
		switch {
		case size == 0:
			return p.errorf(ErrUnbalanced)
		case edge == ')':
			return p.errorf(ErrEmptyGroup)
		case !unicode.IsLower(edge):
			return p.errorf(fmt.Errorf("%w %q", ErrInvalidCharacter, edge))
		}
		if _, exists := node.children[edge]; exists {
			return p.errorf(fmt.Errorf("%w: duplicate group %q", ErrNotCanonical, edge))
		}
		p.pos += size

		child := newNode()
		node.children[edge] = child
		if err := p.parseBody(t, child); err != nil {
			return err
		}
		if err := p.expect(')'); err != nil {
			return err
		}
		groups++
	}

	// A leaf, or a node that stopped a chain with a single child, must be a word.
	if node != t.root && groups <= 1 {
		node.isEnd = true
		t.size++
	}
	return nil
}
