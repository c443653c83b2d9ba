package trie

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrie_String(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		want  string
	}{
		{
			name: "empty trie",
			want: "()",
		},
		{
			name:  "single word",
			words: []string{"high"},
			want:  "(high)",
		},
		{
			name:  "single long word",
			words: []string{"internet"},
			want:  "(internet)",
		},
		{
			name:  "shared prefix",
			words: []string{"internet", "interview"},
			want:  "(inter(net)(view))",
		},
		{
			name:  "word ending at branch point",
			words: []string{"inter", "internet", "interview"},
			want:  "(inter(net)(view))",
		},
		{
			name:  "terminal node ends a chain",
			words: []string{"ab", "abc"},
			want:  "(ab(c))",
		},
		{
			name:  "one letter word with extension",
			words: []string{"a", "ab"},
			want:  "(a(b))",
		},
		{
			name:  "root branches",
			words: []string{"b", "a"},
			want:  "((a)(b))",
		},
		{
			name:  "dictionary",
			words: []string{"algorithm", "all", "internally", "internet", "interview", "web", "world"},
			want:  "((al(gorithm)(l))(inter(n(ally)(et))(view))(w(eb)(orld)))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trie := newTrieWith(t, tt.words...)
			got := trie.String()
			assert.Equal(t, tt.want, got)
			assert.True(t, balanced(got), "unbalanced output %q", got)
		})
	}
}

func TestTrie_StringIndependentOfInsertionOrder(t *testing.T) {
	words := []string{"algorithm", "all", "internally", "internet", "interview", "web", "world", "in", "inter", "w"}
	want := newTrieWith(t, words...).String()

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := append([]string(nil), words...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		trie := newTrieWith(t, shuffled...)
		require.Equal(t, want, trie.String(), "insertion order %v", shuffled)
	}
}

func TestTrie_StringDoesNotMutate(t *testing.T) {
	trie := newTrieWith(t, "internet", "interview")
	_ = trie.String()

	assert.True(t, trie.Lookup("internet"))
	assert.False(t, trie.Lookup("inter"))
	assert.True(t, trie.HasPrefix("inte"))
	require.NoError(t, trie.Insert("inter"))
	assert.Equal(t, "(inter(net)(view))", trie.String())
	assert.Equal(t, []string{"inter", "internet", "interview"}, trie.Words(""))
}

func TestCollapseChain(t *testing.T) {
	trie := newTrieWith(t, "abc", "abd")
	prefix, end := collapseChain(trie.root)
	assert.Equal(t, "ab", prefix)
	assert.Len(t, end.children, 2)

	trie = newTrieWith(t, "ab", "abcd")
	prefix, end = collapseChain(trie.root)
	assert.Equal(t, "ab", prefix, "chain must stop at the terminal node")
	assert.True(t, end.isEnd)
	assert.Len(t, end.children, 1)
}

func TestTrie_WriteTo(t *testing.T) {
	trie := newTrieWith(t, "web", "world")

	var buf bytes.Buffer
	n, err := trie.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(len("(w(eb)(orld))")), n)
	assert.Equal(t, "(w(eb)(orld))", buf.String())
}

func balanced(s string) bool {
	depth := 0
	for _, ch := range s {
		switch ch {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}
