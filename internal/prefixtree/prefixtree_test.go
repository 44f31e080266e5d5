package prefixtree

import (
	"errors"
	"reflect"
	"testing"
)

func mustInsert(t *testing.T, trie *Trie, words ...string) {
	t.Helper()
	for _, w := range words {
		if err := trie.Insert(w); err != nil {
			t.Fatalf("Insert(%q) returned error: %v", w, err)
		}
	}
}

func TestTrie_InsertAndContains(t *testing.T) {
	trie := New()

	mustInsert(t, trie, "hello", "world")

	tests := []struct {
		word       string
		wantWord   bool
		wantPrefix bool
	}{
		{"hello", true, true},
		{"world", true, true},
		{"hel", false, true},
		{"wor", false, true},
		{"orl", false, false},
		{"elh", false, false},
		{"rol", false, false},
		{"helloo", false, false},
	}

	for _, tt := range tests {
		if got := trie.ContainsWord(tt.word); got != tt.wantWord {
			t.Errorf("ContainsWord(%q) = %v, want %v", tt.word, got, tt.wantWord)
		}
		if got := trie.ContainsPrefix(tt.word); got != tt.wantPrefix {
			t.Errorf("ContainsPrefix(%q) = %v, want %v", tt.word, got, tt.wantPrefix)
		}
	}
}

func TestTrie_NodeAccounting(t *testing.T) {
	trie := New()

	if got := trie.NodesTotal(); got != 26 {
		t.Fatalf("NodesTotal() on empty trie = %d, want 26", got)
	}

	// "hello" allocates five nodes on top of the root.
	mustInsert(t, trie, "hello")
	if got := trie.NodesTotal(); got != 156 {
		t.Errorf("NodesTotal() after hello = %d, want 156", got)
	}

	// "hell" is a fully shared path.
	mustInsert(t, trie, "hell")
	if got := trie.NodesTotal(); got != 156 {
		t.Errorf("NodesTotal() after hell = %d, want 156", got)
	}

	// "hellicopter" shares "hell" and diverges for "icopter".
	mustInsert(t, trie, "hellicopter")
	if got := trie.NodesTotal(); got != 338 {
		t.Errorf("NodesTotal() after hellicopter = %d, want 338", got)
	}
}

func TestTrie_InsertIdempotent(t *testing.T) {
	trie := New()

	mustInsert(t, trie, "quick")
	want := trie.NodesTotal()

	mustInsert(t, trie, "quick")
	if got := trie.NodesTotal(); got != want {
		t.Errorf("NodesTotal() after duplicate insert = %d, want %d", got, want)
	}
	if !trie.ContainsWord("quick") {
		t.Error("ContainsWord(quick) = false after duplicate insert")
	}
}

func TestTrie_Sentence(t *testing.T) {
	trie := New()

	words := []string{"the", "quick", "brown", "fox", "jumps", "over", "the", "lazy", "dog"}
	for _, word := range words {
		mustInsert(t, trie, word)

		if !trie.ContainsWord(word) {
			t.Errorf("ContainsWord(%q) = false after insert", word)
		}
		if !trie.ContainsPrefix(word) {
			t.Errorf("ContainsPrefix(%q) = false after insert", word)
		}
	}

	if got := trie.NodesTotal(); got != 858 {
		t.Errorf("NodesTotal() = %d, want 858", got)
	}
}

func TestTrie_PrefixesAndSuffixes(t *testing.T) {
	trie := New()

	words := []string{"afopsiv", "coxpz", "pqeacxnvzm", "zm", "acxk"}
	mustInsert(t, trie, words...)

	if got := trie.NodesTotal(); got != 728 {
		t.Fatalf("NodesTotal() = %d, want 728", got)
	}

	for _, word := range words {
		// Every proper prefix of an inserted word is a valid prefix.
		for i := 1; i < len(word); i++ {
			if !trie.ContainsPrefix(word[:i]) {
				t.Errorf("ContainsPrefix(%q) = false, want true", word[:i])
			}
		}
		// Proper suffixes never start a path from the root, except the
		// ones that coincide with a prefix of the inserted "zm".
		for i := 1; i < len(word); i++ {
			suffix := word[i:]
			if suffix == "zm" || suffix == "z" {
				continue
			}
			if trie.ContainsPrefix(suffix) {
				t.Errorf("ContainsPrefix(%q) = true, want false", suffix)
			}
		}
	}
}

func TestTrie_Clear(t *testing.T) {
	trie := New()

	mustInsert(t, trie, "hello", "world")
	if trie.IsEmpty() {
		t.Fatal("IsEmpty() = true after inserts")
	}

	trie.Clear()

	if !trie.IsEmpty() {
		t.Error("IsEmpty() = false after Clear")
	}
	if got := trie.NodesTotal(); got != 26 {
		t.Errorf("NodesTotal() after Clear = %d, want 26", got)
	}
	for _, word := range []string{"hello", "world", "hel", "wor"} {
		if trie.ContainsWord(word) {
			t.Errorf("ContainsWord(%q) = true after Clear", word)
		}
		if trie.ContainsPrefix(word) {
			t.Errorf("ContainsPrefix(%q) = true after Clear", word)
		}
	}
}

func TestTrie_EmptyWord(t *testing.T) {
	trie := New()

	// The empty string is a prefix of everything, even in an empty trie.
	if !trie.ContainsPrefix("") {
		t.Error("ContainsPrefix(\"\") = false on empty trie")
	}
	if trie.ContainsWord("") {
		t.Error("ContainsWord(\"\") = true before insert")
	}

	// Inserting the empty word marks the root terminal without
	// allocating any node.
	mustInsert(t, trie, "")
	if !trie.ContainsWord("") {
		t.Error("ContainsWord(\"\") = false after insert")
	}
	if got := trie.NodesTotal(); got != 26 {
		t.Errorf("NodesTotal() after empty insert = %d, want 26", got)
	}
	if trie.IsEmpty() {
		t.Error("IsEmpty() = true with root marked terminal")
	}
}

func TestTrie_InvalidCharacter(t *testing.T) {
	trie := New()

	tests := []string{"Hello", "héllo", "foo bar", "a1b", "{brace}"}
	for _, word := range tests {
		err := trie.Insert(word)
		if !errors.Is(err, ErrInvalidCharacter) {
			t.Errorf("Insert(%q) error = %v, want ErrInvalidCharacter", word, err)
		}
	}

	// A rejected insert must not leave a partial path behind.
	if got := trie.NodesTotal(); got != 26 {
		t.Errorf("NodesTotal() after rejected inserts = %d, want 26", got)
	}
	if !trie.IsEmpty() {
		t.Error("IsEmpty() = false after rejected inserts")
	}
	if trie.ContainsPrefix("f") {
		t.Error("ContainsPrefix(\"f\") = true after rejected insert of \"foo bar\"")
	}

	// Queries with unencodable characters are simply absent.
	mustInsert(t, trie, "hello")
	if trie.ContainsWord("Hello") {
		t.Error("ContainsWord(\"Hello\") = true")
	}
	if trie.ContainsPrefix("He") {
		t.Error("ContainsPrefix(\"He\") = true")
	}
}

func TestTrie_ExtendedAlphabet(t *testing.T) {
	trie := New(Config{AlphabetSize: 32})

	if got := trie.AlphabetSize(); got != 32 {
		t.Fatalf("AlphabetSize() = %d, want 32", got)
	}
	if got := trie.NodesTotal(); got != 32 {
		t.Fatalf("NodesTotal() on empty trie = %d, want 32", got)
	}

	mustInsert(t, trie, "hello")
	if got := trie.NodesTotal(); got != 192 {
		t.Errorf("NodesTotal() after hello = %d, want 192", got)
	}

	trie.Clear()
	if got := trie.NodesTotal(); got != 32 {
		t.Errorf("NodesTotal() after Clear = %d, want 32", got)
	}
}

func TestTrie_UnsupportedAlphabetFallsBack(t *testing.T) {
	trie := New(Config{AlphabetSize: 7})

	if got := trie.AlphabetSize(); got != DefaultAlphabetSize {
		t.Errorf("AlphabetSize() = %d, want %d", got, DefaultAlphabetSize)
	}
}

func TestTrie_WordsWithPrefix(t *testing.T) {
	trie := New()

	mustInsert(t, trie, "apple", "app", "banana", "band", "orange")

	tests := []struct {
		name   string
		prefix string
		want   []string
	}{
		{
			name:   "prefix 'app'",
			prefix: "app",
			want:   []string{"app", "apple"},
		},
		{
			name:   "prefix 'ban'",
			prefix: "ban",
			want:   []string{"banana", "band"},
		},
		{
			name:   "empty prefix lists everything in alphabet order",
			prefix: "",
			want:   []string{"app", "apple", "banana", "band", "orange"},
		},
		{
			name:   "non-existent prefix",
			prefix: "xyz",
			want:   nil,
		},
		{
			name:   "unencodable prefix",
			prefix: "App",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := trie.WordsWithPrefix(tt.prefix)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WordsWithPrefix(%q) = %v, want %v", tt.prefix, got, tt.want)
			}
		})
	}
}
