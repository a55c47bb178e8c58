package local

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/at-ishikawa/learncoach/internal/inference"
)

// Summarizer picks the highest scoring sentences of a text by TF-IDF weight.
type Summarizer struct {
	maxSentences int
}

// NewSummarizer returns a Summarizer keeping at most maxSentences sentences.
func NewSummarizer(maxSentences int) *Summarizer {
	if maxSentences <= 0 {
		maxSentences = inference.DefaultMaxSentences
	}
	return &Summarizer{maxSentences: maxSentences}
}

// Summarize returns the trimmed text when it already has few enough
// sentences, otherwise the top sentences in their original order.
func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", nil
	}

	sentences := splitSentences(text)
	if len(sentences) <= s.maxSentences {
		return text, nil
	}

	scores := sentenceScores(sentences)
	order := make([]int, len(sentences))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})
	top := order[:s.maxSentences]
	sort.Ints(top)

	picked := make([]string, 0, len(top))
	for _, i := range top {
		picked = append(picked, sentences[i])
	}
	return strings.Join(picked, " "), nil
}

// sentenceScores treats every sentence as a document and returns the sum of
// its L2-normalized TF-IDF vector.
func sentenceScores(sentences []string) []float64 {
	docs := make([][]string, len(sentences))
	df := map[string]int{}
	for i, sentence := range sentences {
		docs[i] = terms(sentence)
		seen := map[string]bool{}
		for _, term := range docs[i] {
			if !seen[term] {
				df[term]++
				seen[term] = true
			}
		}
	}

	n := float64(len(sentences))
	scores := make([]float64, len(sentences))
	for i, doc := range docs {
		tf := map[string]float64{}
		for _, term := range doc {
			tf[term]++
		}
		var sum, norm float64
		for term, count := range tf {
			weight := count * (math.Log((1+n)/(1+float64(df[term]))) + 1)
			sum += weight
			norm += weight * weight
		}
		if norm > 0 {
			scores[i] = sum / math.Sqrt(norm)
		}
	}
	return scores
}
