package topics

import (
	_ "embed"
	"strings"
)

//go:embed stopwords.txt
var stopwordsRaw string

// stopWords is the fixed English stop-word list dropped during tokenization.
// Changing it changes every downstream topic, so it ships with the binary
// rather than being configurable.
var stopWords = func() map[string]bool {
	words := strings.Fields(stopwordsRaw)
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}()
