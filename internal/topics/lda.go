package topics

import (
	"math/rand"
	"sort"
)

// betaSmoothing is the symmetric Dirichlet prior on topic-term counts. The
// document-topic prior is 50/NumTopics, computed per fit.
const betaSmoothing = 0.01

// model holds the fitted sampler state needed for assignment and keywords.
type model struct {
	numTopics  int
	vocab      []string
	docTopic   [][]float64 // smoothed, normalized topic mix per document
	termWeight [][]float64 // per topic, smoothed count per vocab term
}

// fitLDA trains a latent Dirichlet allocation model by collapsed Gibbs
// sampling. Every random draw comes from one generator seeded with
// cfg.Seed, so a given corpus and config always produce the same model.
func fitLDA(c *corpus, cfg Config) *model {
	k := cfg.NumTopics
	v := len(c.vocab)
	alpha := 50.0 / float64(k)
	rng := rand.New(rand.NewSource(cfg.Seed))

	// Expand each document's count row into a flat token stream; the
	// sampler reassigns tokens one at a time.
	docTokens := make([][]int, len(c.counts))
	for d, row := range c.counts {
		var stream []int
		for term, n := range row {
			for i := 0; i < n; i++ {
				stream = append(stream, term)
			}
		}
		docTokens[d] = stream
	}

	nDocTopic := make([][]int, len(docTokens))
	nTopicTerm := make([][]int, k)
	nTopic := make([]int, k)
	for topic := range nTopicTerm {
		nTopicTerm[topic] = make([]int, v)
	}

	assign := make([][]int, len(docTokens))
	for d, stream := range docTokens {
		nDocTopic[d] = make([]int, k)
		assign[d] = make([]int, len(stream))
		for i, term := range stream {
			topic := rng.Intn(k)
			assign[d][i] = topic
			nDocTopic[d][topic]++
			nTopicTerm[topic][term]++
			nTopic[topic]++
		}
	}

	probs := make([]float64, k)
	for iter := 0; iter < cfg.Iterations; iter++ {
		for d, stream := range docTokens {
			for i, term := range stream {
				old := assign[d][i]
				nDocTopic[d][old]--
				nTopicTerm[old][term]--
				nTopic[old]--

				total := 0.0
				for topic := 0; topic < k; topic++ {
					p := (float64(nDocTopic[d][topic]) + alpha) *
						(float64(nTopicTerm[topic][term]) + betaSmoothing) /
						(float64(nTopic[topic]) + betaSmoothing*float64(v))
					probs[topic] = p
					total += p
				}

				next := 0
				acc := probs[0]
				r := rng.Float64() * total
				for next < k-1 && r > acc {
					next++
					acc += probs[next]
				}

				assign[d][i] = next
				nDocTopic[d][next]++
				nTopicTerm[next][term]++
				nTopic[next]++
			}
		}
	}

	m := &model{numTopics: k, vocab: c.vocab}

	m.docTopic = make([][]float64, len(docTokens))
	for d, stream := range docTokens {
		row := make([]float64, k)
		denom := float64(len(stream)) + alpha*float64(k)
		for topic := 0; topic < k; topic++ {
			row[topic] = (float64(nDocTopic[d][topic]) + alpha) / denom
		}
		m.docTopic[d] = row
	}

	m.termWeight = make([][]float64, k)
	for topic := 0; topic < k; topic++ {
		row := make([]float64, v)
		for term := 0; term < v; term++ {
			row[term] = float64(nTopicTerm[topic][term]) + betaSmoothing
		}
		m.termWeight[topic] = row
	}

	return m
}

// dominantTopic returns the argmax topic for a document. Equal
// probabilities resolve to the lowest topic index.
func (m *model) dominantTopic(doc int) int {
	best := 0
	for topic := 1; topic < m.numTopics; topic++ {
		if m.docTopic[doc][topic] > m.docTopic[doc][best] {
			best = topic
		}
	}
	return best
}

// topTerms returns the n highest-weight vocabulary terms for a topic.
// Equal weights resolve in vocabulary order.
func (m *model) topTerms(topic, n int) []string {
	idx := make([]int, len(m.vocab))
	for i := range idx {
		idx[i] = i
	}
	weights := m.termWeight[topic]
	sort.SliceStable(idx, func(a, b int) bool {
		return weights[idx[a]] > weights[idx[b]]
	})

	if n > len(idx) {
		n = len(idx)
	}
	terms := make([]string, n)
	for i := 0; i < n; i++ {
		terms[i] = m.vocab[idx[i]]
	}
	return terms
}
