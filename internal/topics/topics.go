// Package topics discovers latent themes in tickets the keyword rules could
// not place. It vectorizes the residual documents into a term-count matrix
// and fits a seeded LDA model, so repeated runs over the same input always
// report the same topics.
package topics

import "errors"

var (
	// ErrEmptyCorpus means there were no documents left to model.
	ErrEmptyCorpus = errors.New("no documents to analyze")
	// ErrEmptyVocabulary means the frequency filters removed every term.
	ErrEmptyVocabulary = errors.New("empty vocabulary after frequency filtering")
)

// Config controls vectorization and model fitting. Zero values (except
// Seed, where zero is a valid seed) fall back to DefaultConfig.
type Config struct {
	NumTopics      int
	WordsPerTopic  int
	MinDocFreq     int     // a term must appear in at least this many documents
	MaxDocFraction float64 // ...and in at most this fraction of them
	Seed           int64
	Iterations     int
}

// DefaultConfig returns the standard discovery settings: ten topics with
// fifteen keywords each, terms kept when they appear in at least five
// documents and at most 90% of them, and a fixed seed so reruns reproduce.
func DefaultConfig() Config {
	return Config{
		NumTopics:      10,
		WordsPerTopic:  15,
		MinDocFreq:     5,
		MaxDocFraction: 0.9,
		Seed:           42,
		Iterations:     200,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.NumTopics <= 0 {
		c.NumTopics = def.NumTopics
	}
	if c.WordsPerTopic <= 0 {
		c.WordsPerTopic = def.WordsPerTopic
	}
	if c.MinDocFreq <= 0 {
		c.MinDocFreq = def.MinDocFreq
	}
	if c.MaxDocFraction <= 0 || c.MaxDocFraction > 1 {
		c.MaxDocFraction = def.MaxDocFraction
	}
	if c.Iterations <= 0 {
		c.Iterations = def.Iterations
	}
	return c
}

// Summary describes one discovered topic.
type Summary struct {
	Topic    int      // zero-based topic index
	Count    int      // documents whose dominant topic this is
	Keywords []string // top terms, ranked by weight
}

// Result is the outcome of one discovery run.
type Result struct {
	Topics      []Summary // always NumTopics entries, in index order
	Assignments []int     // dominant topic per input document
	VocabSize   int
}

// Discover fits a topic model over docs and returns per-topic document
// counts and keywords. Topics nothing was assigned to still appear with a
// zero count. The same docs and cfg always yield an identical Result.
func Discover(docs []string, cfg Config) (*Result, error) {
	cfg = cfg.withDefaults()

	c, err := buildCorpus(docs, cfg.MinDocFreq, cfg.MaxDocFraction)
	if err != nil {
		return nil, err
	}

	m := fitLDA(c, cfg)

	res := &Result{
		Topics:      make([]Summary, cfg.NumTopics),
		Assignments: make([]int, len(docs)),
		VocabSize:   len(c.vocab),
	}
	for d := range docs {
		res.Assignments[d] = m.dominantTopic(d)
	}
	for topic := 0; topic < cfg.NumTopics; topic++ {
		res.Topics[topic] = Summary{
			Topic:    topic,
			Keywords: m.topTerms(topic, cfg.WordsPerTopic),
		}
	}
	for _, topic := range res.Assignments {
		res.Topics[topic].Count++
	}
	return res, nil
}
