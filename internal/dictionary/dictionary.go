// Package dictionary wraps the prefix tree in a service that is safe to
// share across goroutines. The trie itself is unsynchronized; this layer
// adds the external locking an embedding system needs, plus word-list
// loading and basic stats.
package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/oniani/pt/internal/prefixtree"
)

// Service provides synchronized access to a word dictionary backed by a
// prefix tree.
type Service struct {
	mu    sync.RWMutex
	trie  *prefixtree.Trie
	words int
}

// Stats is a snapshot of the dictionary's state.
type Stats struct {
	// Words is the number of distinct words currently stored
	Words int `json:"words"`

	// NodesTotal is the trie's node accounting: one full alphabet of
	// child slots charged per allocated node
	NodesTotal uint64 `json:"nodes_total"`

	// AlphabetSize is the configured child slot count per node
	AlphabetSize int `json:"alphabet_size"`

	// Empty reports whether the dictionary holds no words
	Empty bool `json:"empty"`
}

// New creates an empty dictionary service
func New(config ...prefixtree.Config) *Service {
	return &Service{
		trie: prefixtree.New(config...),
	}
}

// AddWord inserts a single word. Words are lowercased before insertion;
// a word with characters outside the alphabet is rejected unchanged.
func (s *Service) AddWord(word string) error {
	_, err := s.addWord(word)
	return err
}

// addWord reports whether the word was new to the dictionary
func (s *Service) addWord(word string) (bool, error) {
	word = strings.ToLower(word)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.trie.ContainsWord(word) {
		return false, nil
	}
	if err := s.trie.Insert(word); err != nil {
		return false, fmt.Errorf("failed to add word: %w", err)
	}
	s.words++
	return true, nil
}

// AddWords inserts a batch of words, stopping at the first word that
// cannot be encoded. It returns the number of distinct words added.
func (s *Service) AddWords(words []string) (int, error) {
	added := 0
	for _, word := range words {
		ok, err := s.addWord(word)
		if err != nil {
			return added, err
		}
		if ok {
			added++
		}
	}
	return added, nil
}

// LoadFile reads a newline-delimited word list. Entries that cannot be
// encoded in the alphabet are skipped rather than failing the whole
// load, since real word lists tend to carry the odd apostrophe.
func (s *Service) LoadFile(path string) (loaded, skipped int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		if err := s.AddWord(word); err != nil {
			log.Debug().Str("word", word).Err(err).Msg("Skipping word outside alphabet")
			skipped++
			continue
		}
		loaded++
	}
	if err := scanner.Err(); err != nil {
		return loaded, skipped, fmt.Errorf("failed to read word list: %w", err)
	}

	log.Debug().
		Str("path", path).
		Int("loaded", loaded).
		Int("skipped", skipped).
		Msg("Loaded word list")
	return loaded, skipped, nil
}

// HasWord reports whether the exact word is in the dictionary
func (s *Service) HasWord(word string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trie.ContainsWord(strings.ToLower(word))
}

// HasPrefix reports whether any stored word starts with the prefix
func (s *Service) HasPrefix(prefix string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trie.ContainsPrefix(strings.ToLower(prefix))
}

// WordsWithPrefix returns all stored words under the prefix, in
// alphabet order.
func (s *Service) WordsWithPrefix(prefix string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trie.WordsWithPrefix(strings.ToLower(prefix))
}

// WordCount returns the number of distinct words stored
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.words
}

// Clear discards every stored word
func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trie.Clear()
	s.words = 0
}

// Stats returns a consistent snapshot of the dictionary's state
func (s *Service) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{
		Words:        s.words,
		NodesTotal:   s.trie.NodesTotal(),
		AlphabetSize: s.trie.AlphabetSize(),
		Empty:        s.trie.IsEmpty(),
	}
}
