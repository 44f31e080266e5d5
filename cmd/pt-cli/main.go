package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/oniani/pt/internal/dictionary"
	"github.com/oniani/pt/internal/prefixtree"
)

func main() {
	wordFile := flag.String("words", "", "Path to a newline-delimited word list")
	alphabet := flag.Int("alphabet", 26, "Alphabet size (26 or 32)")
	listPrefix := flag.String("list", "", "List stored words under this prefix and exit")
	flag.Parse()

	dict := dictionary.New(prefixtree.Config{AlphabetSize: *alphabet})

	if *wordFile != "" {
		start := time.Now()
		loaded, skipped, err := dict.LoadFile(*wordFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load %s: %v\n", *wordFile, err)
			os.Exit(1)
		}
		fmt.Printf("Loaded %d words (%d skipped) in %v\n", loaded, skipped, time.Since(start))
	}

	if *listPrefix != "" {
		for _, word := range dict.WordsWithPrefix(*listPrefix) {
			fmt.Println(word)
		}
		return
	}

	// Remaining arguments are membership queries.
	for _, word := range flag.Args() {
		fmt.Printf("%s: word=%v prefix=%v\n", word, dict.HasWord(word), dict.HasPrefix(word))
	}

	stats := dict.Stats()
	fmt.Printf("Words: %d, nodes total: %d (alphabet %d)\n",
		stats.Words, stats.NodesTotal, stats.AlphabetSize)
}
