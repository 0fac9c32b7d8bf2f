package topics

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// tokenPattern selects runs of two or more letters, digits, or underscores.
// Single-character tokens carry no topical signal and are dropped.
var tokenPattern = regexp.MustCompile(`\b\w\w+\b`)

func tokenize(doc string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(doc), -1)
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		if stopWords[tok] {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// corpus is a document-term count matrix over a sorted vocabulary.
type corpus struct {
	vocab  []string
	counts [][]int // one row per document, one column per vocab term
}

// buildCorpus tokenizes docs and applies the document-frequency filters: a
// term survives when it appears in at least minDocFreq documents and in no
// more than maxDocFraction of them. The vocabulary is sorted so the matrix
// layout never depends on map iteration order.
func buildCorpus(docs []string, minDocFreq int, maxDocFraction float64) (*corpus, error) {
	if len(docs) == 0 {
		return nil, ErrEmptyCorpus
	}

	tokenized := make([][]string, len(docs))
	docFreq := make(map[string]int)
	for i, doc := range docs {
		tokens := tokenize(doc)
		tokenized[i] = tokens

		seen := make(map[string]bool, len(tokens))
		for _, tok := range tokens {
			if !seen[tok] {
				seen[tok] = true
				docFreq[tok]++
			}
		}
	}

	maxDocs := maxDocFraction * float64(len(docs))
	var vocab []string
	for term, df := range docFreq {
		if df < minDocFreq || float64(df) > maxDocs {
			continue
		}
		vocab = append(vocab, term)
	}
	if len(vocab) == 0 {
		return nil, fmt.Errorf("%w: no term appears in at least %d documents; lower MinDocFreq or collect more tickets", ErrEmptyVocabulary, minDocFreq)
	}
	sort.Strings(vocab)

	index := make(map[string]int, len(vocab))
	for i, term := range vocab {
		index[term] = i
	}

	counts := make([][]int, len(docs))
	for i, tokens := range tokenized {
		row := make([]int, len(vocab))
		for _, tok := range tokens {
			if j, ok := index[tok]; ok {
				row[j]++
			}
		}
		counts[i] = row
	}

	return &corpus{vocab: vocab, counts: counts}, nil
}
