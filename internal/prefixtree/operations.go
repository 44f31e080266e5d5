package prefixtree

import (
	"errors"
	"fmt"
)

// ErrInvalidCharacter is returned when a word contains a character that
// has no slot in the configured alphabet.
var ErrInvalidCharacter = errors.New("character outside alphabet")

// index maps a character to its child slot, or reports that the
// character has no slot in the configured alphabet.
func (t *Trie) index(c rune) (int, bool) {
	idx := int(c) - 'a'
	if idx < 0 || idx >= t.alphabetSize {
		return 0, false
	}
	return idx, true
}

// indices encodes a whole word up front so that a rejected word never
// leaves a partial path behind.
func (t *Trie) indices(word string) ([]int, error) {
	idxs := make([]int, 0, len(word))
	for _, c := range word {
		idx, ok := t.index(c)
		if !ok {
			return nil, fmt.Errorf("%w: %q in %q", ErrInvalidCharacter, c, word)
		}
		idxs = append(idxs, idx)
	}
	return idxs, nil
}

// Insert adds a word to the trie. Inserting a word twice is a no-op the
// second time. The empty word is accepted and marks the root itself as
// a word. A word with a character outside the alphabet is rejected
// before any node is created.
func (t *Trie) Insert(word string) error {
	idxs, err := t.indices(word)
	if err != nil {
		return err
	}

	node := t.root
	for _, idx := range idxs {
		if node.children[idx] == nil {
			node.children[idx] = newNode(t.alphabetSize)
			t.nodeCount += uint64(t.alphabetSize)
		}
		node = node.children[idx]
	}
	node.isWord = true
	return nil
}

// findNode returns the node corresponding to the word, or nil if the
// path is not present or the word cannot be encoded.
func (t *Trie) findNode(word string) *Node {
	node := t.root
	for _, c := range word {
		idx, ok := t.index(c)
		if !ok {
			return nil
		}
		if node.children[idx] == nil {
			return nil
		}
		node = node.children[idx]
	}
	return node
}

// ContainsWord reports whether the exact word was inserted
func (t *Trie) ContainsWord(word string) bool {
	node := t.findNode(word)
	return node != nil && node.isWord
}

// ContainsPrefix reports whether any inserted word starts with the
// given prefix. The empty prefix is always present.
func (t *Trie) ContainsPrefix(prefix string) bool {
	return t.findNode(prefix) != nil
}

// IsEmpty reports whether the trie holds no words. The check is
// structural: the root must look exactly like a freshly created node.
func (t *Trie) IsEmpty() bool {
	return t.root.pristine()
}

// Clear discards the whole tree and resets the node accounting to the
// base allocation of a single root node.
func (t *Trie) Clear() {
	t.root = newNode(t.alphabetSize)
	t.nodeCount = uint64(t.alphabetSize)
}

// NodesTotal returns the running node accounting: one full alphabet of
// child slots charged per node allocated, root included.
func (t *Trie) NodesTotal() uint64 {
	return t.nodeCount
}

// WordsWithPrefix returns all inserted words that start with the given
// prefix, in alphabet order. The result is empty when the prefix is not
// present or cannot be encoded.
func (t *Trie) WordsWithPrefix(prefix string) []string {
	var results []string
	node := t.findNode(prefix)
	if node == nil {
		return results
	}

	if node.isWord {
		results = append(results, prefix)
	}

	t.collectWords(node, prefix, &results)
	return results
}

// collectWords is a helper function to recursively collect all words
// below a node. Walking the slot array in order keeps the output in
// alphabet order.
func (t *Trie) collectWords(node *Node, prefix string, results *[]string) {
	for i, child := range node.children {
		if child == nil {
			continue
		}
		next := prefix + string(rune('a'+i))
		if child.isWord {
			*results = append(*results, next)
		}
		t.collectWords(child, next, results)
	}
}
