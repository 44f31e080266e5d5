// Package prefixtree implements an in-memory trie over a fixed
// lower-case alphabet. Each node carries one child slot per alphabet
// letter, which makes lookups O(1) per character at the cost of a full
// slot array per node. Common single-child chains are not compressed;
// a Patricia-style layout would reduce the node count considerably.
package prefixtree

const (
	// DefaultAlphabetSize covers the lower-case English alphabet.
	DefaultAlphabetSize = 26

	// ExtendedAlphabetSize pads the slot array to 32 entries.
	ExtendedAlphabetSize = 32
)

// Node represents a node in the trie
type Node struct {
	// children holds one slot per alphabet letter; a nil slot means no
	// word passes through that letter at this position
	children []*Node

	// isWord marks if a complete word ends at this node
	isWord bool
}

// newNode creates a new trie node with all child slots empty
func newNode(alphabetSize int) *Node {
	return &Node{
		children: make([]*Node, alphabetSize),
	}
}

// pristine reports whether the node is indistinguishable from a freshly
// created one: no occupied child slots and no terminal marker.
func (n *Node) pristine() bool {
	if n.isWord {
		return false
	}
	for _, child := range n.children {
		if child != nil {
			return false
		}
	}
	return true
}

// Trie represents a prefix tree over a fixed alphabet.
// It is not safe for concurrent use; embedding systems that share a
// Trie across goroutines must synchronize externally.
type Trie struct {
	// root is always present, even when the trie is logically empty
	root *Node

	// alphabetSize is the width of every node's child slot array
	alphabetSize int

	// nodeCount charges one full alphabet of slots per allocated node,
	// root included, so an empty trie reports alphabetSize
	nodeCount uint64
}

// Config holds construction parameters for a Trie.
type Config struct {
	// AlphabetSize is the number of child slots per node. Supported
	// values are 26 and 32; anything else falls back to the default.
	AlphabetSize int
}

// New creates a new empty trie with default parameters
func New(config ...Config) *Trie {
	cfg := Config{
		AlphabetSize: DefaultAlphabetSize,
	}
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.AlphabetSize != DefaultAlphabetSize && cfg.AlphabetSize != ExtendedAlphabetSize {
		cfg.AlphabetSize = DefaultAlphabetSize
	}

	return &Trie{
		root:         newNode(cfg.AlphabetSize),
		alphabetSize: cfg.AlphabetSize,
		nodeCount:    uint64(cfg.AlphabetSize),
	}
}

// AlphabetSize returns the configured child slot count per node
func (t *Trie) AlphabetSize() int {
	return t.alphabetSize
}
