package trie

import (
	"io"
	"strings"
)

// Serialization format:
//
//	trie  = "(" chain group* ")"
//	group = "(" char chain group* ")"
//
// - chain: the characters of a run of single-child, non-terminal nodes, merged into one segment
// - groups: one per child of the node where the chain stops, sorted by edge character
// - a terminal node always ends a chain, so a word that is a proper prefix of another
//   stays visible as the split point of a group
//
// The empty trie renders as "()".

// collapseChain follows single-child, non-terminal nodes starting at node and
// returns the merged characters together with the node where the run stopped.
// Terminal status is checked before the child count.
func collapseChain(node *Node) (string, *Node) {
	var prefix strings.Builder
	for !node.isEnd && len(node.children) == 1 {
		for ch, child := range node.children {
			prefix.WriteRune(ch)
			node = child
		}
	}
	return prefix.String(), node
}

// renderSubtree writes the compressed form of the subtree rooted at node
func renderSubtree(sb *strings.Builder, node *Node) {
	prefix, end := collapseChain(node)
	sb.WriteString(prefix)

	for _, ch := range end.sortedKeys() {
		sb.WriteByte('(')
		sb.WriteRune(ch)
		renderSubtree(sb, end.children[ch])
		sb.WriteByte(')')
	}
}

// String returns the canonical serialization of the trie. The output does not
// depend on insertion order and is accepted by Parse.
func (t *Trie) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	renderSubtree(&sb, t.root)
	sb.WriteByte(')')
	return sb.String()
}

// WriteTo writes the canonical serialization of the trie to w
func (t *Trie) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.String())
	return int64(n), err
}
