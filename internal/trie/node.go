package trie

import (
	"errors"
	"sort"
)

var (
	// ErrEmptyWord is returned when inserting the empty string
	ErrEmptyWord = errors.New("empty word")
	// ErrInvalidCharacter is returned for runes outside the lowercase alphabet
	ErrInvalidCharacter = errors.New("invalid character")
)

// Node represents a node in the trie
type Node struct {
	// children maps the next character to the child node
	children map[rune]*Node

	// isEnd marks if an inserted word ends at this node
	isEnd bool
}

// newNode creates a new trie node
func newNode() *Node {
	return &Node{
		children: make(map[rune]*Node),
	}
}

// sortedKeys returns the edge characters of the node in ascending order
func (n *Node) sortedKeys() []rune {
	keys := make([]rune, 0, len(n.children))
	for ch := range n.children {
		keys = append(keys, ch)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Trie is an in-memory dictionary of lowercase words.
// It is not safe for concurrent use; callers sharing a Trie must guard it with a lock.
type Trie struct {
	root *Node
	size int
}

// New creates a new empty trie
func New() *Trie {
	return &Trie{
		root: newNode(),
	}
}

// Len returns the number of distinct words stored in the trie
func (t *Trie) Len() int {
	return t.size
}
