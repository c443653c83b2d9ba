package trie

import (
	"fmt"
	"unicode"
)

// validateWord checks that word is non-empty and made only of lowercase letters
func validateWord(word string) error {
	if word == "" {
		return ErrEmptyWord
	}
	for i, ch := range word {
		if !unicode.IsLower(ch) {
			return fmt.Errorf("%w %q at offset %d", ErrInvalidCharacter, ch, i)
		}
	}
	return nil
}

// Insert adds a word to the trie. Inserting a word that is already present
// leaves the trie unchanged. The trie is not modified when an error is returned.
func (t *Trie) Insert(word string) error {
	if err := validateWord(word); err != nil {
		return fmt.Errorf("failed to insert %q: %w", word, err)
	}

	node := t.root
	for _, ch := range word {
		child, exists := node.children[ch]
		if !exists {
			child = newNode()
			node.children[ch] = child
		}
		node = child
	}
	if !node.isEnd {
		node.isEnd = true
		t.size++
	}
	return nil
}

// Lookup reports whether word was inserted. Prefixes and extensions of
// inserted words are not found.
func (t *Trie) Lookup(word string) bool {
	node := t.findNode(word)
	return node != nil && node.isEnd
}

// HasPrefix reports whether any stored word begins with prefix.
// The empty prefix matches as long as the trie is not empty.
func (t *Trie) HasPrefix(prefix string) bool {
	if prefix == "" {
		return t.size > 0
	}
	return t.findNode(prefix) != nil
}

// findNode returns the node corresponding to the key, or nil if not found
func (t *Trie) findNode(key string) *Node {
	node := t.root
	for _, ch := range key {
		child, exists := node.children[ch]
		if !exists {
			return nil
		}
		node = child
	}
	return node
}

// Words returns all stored words that start with prefix, in lexicographical order
func (t *Trie) Words(prefix string) []string {
	results := []string{}
	t.Walk(prefix, func(word string) bool {
		results = append(results, word)
		return true
	})
	return results
}

// WalkFunc is the type of the function called for each word in the trie.
// If the function returns false, the walk stops.
type WalkFunc func(word string) bool

// Walk visits every stored word that starts with prefix in lexicographical order.
func (t *Trie) Walk(prefix string, f WalkFunc) {
	node := t.findNode(prefix)
	if node == nil {
		return
	}

	if node.isEnd {
		if !f(prefix) {
			return
		}
	}

	walkNode(node, []rune(prefix), f)
}

// walkNode recursively visits the words below node in sorted order
func walkNode(node *Node, path []rune, f WalkFunc) bool {
	for _, ch := range node.sortedKeys() {
		child := node.children[ch]
		next := append(path, ch)
		if child.isEnd {
			if !f(string(next)) {
				return false
			}
		}

		if !walkNode(child, next, f) {
			return false
		}
	}

	return true
}
