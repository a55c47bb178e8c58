package local

import (
	"context"
	"math/rand/v2"
	"strings"

	"github.com/at-ishikawa/learncoach/internal/inference"
	"github.com/at-ishikawa/learncoach/internal/store"
)

const (
	blank                  = "____"
	minTextWords           = 30
	minSentenceWords       = 9
	maxSentenceWords       = 39
	distractorsPerQuestion = 3
)

// QuestionGenerator turns sentences into fill-in-the-blank questions whose
// distractors are other words of the same text.
type QuestionGenerator struct {
	rand *rand.Rand
}

// NewQuestionGenerator returns a generator. A nil r uses a randomly seeded source.
func NewQuestionGenerator(r *rand.Rand) *QuestionGenerator {
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &QuestionGenerator{rand: r}
}

// GenerateQuestions returns up to count questions. Texts shorter than 30
// words produce none.
func (g *QuestionGenerator) GenerateQuestions(ctx context.Context, text string, count int) ([]store.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if count <= 0 {
		count = inference.DefaultQuestionCount
	}
	if len(strings.Fields(text)) < minTextWords {
		return []store.Question{}, nil
	}

	var candidates []string
	for _, sentence := range splitSentences(text) {
		n := len(strings.Fields(sentence))
		if n >= minSentenceWords && n <= maxSentenceWords {
			candidates = append(candidates, sentence)
		}
	}
	g.rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	vocabulary := uniqueWords(text)
	questions := make([]store.Question, 0, count)
	for _, sentence := range candidates {
		if len(questions) == count {
			break
		}
		q, ok := g.cloze(sentence, vocabulary)
		if ok {
			questions = append(questions, q)
		}
	}
	return inference.ValidQuestions(questions, count), nil
}

func (g *QuestionGenerator) cloze(sentence string, vocabulary []string) (store.Question, bool) {
	words := strings.Fields(sentence)
	index := g.answerIndex(words)
	if index < 0 {
		return store.Question{}, false
	}
	answer := trimWord(words[index])
	words[index] = strings.Replace(words[index], answer, blank, 1)

	options := append(g.distractors(answer, vocabulary), answer)
	g.rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return store.Question{
		Question: strings.Join(words, " "),
		Options:  options,
		Answer:   answer,
	}, true
}

// answerIndex prefers the longest content word away from both ends of the
// sentence and falls back to a random position there.
func (g *QuestionGenerator) answerIndex(words []string) int {
	if len(words) <= 6 {
		return -1
	}
	best, bestLen := -1, 0
	for i := 2; i <= len(words)-3; i++ {
		w := trimWord(words[i])
		if !isAlphabetic(w) || stopWords[strings.ToLower(w)] {
			continue
		}
		if len(w) > bestLen {
			best, bestLen = i, len(w)
		}
	}
	if best >= 0 && bestLen >= 4 {
		return best
	}
	i := 2 + g.rand.IntN(len(words)-4)
	if trimWord(words[i]) == "" {
		return -1
	}
	return i
}

func (g *QuestionGenerator) distractors(answer string, vocabulary []string) []string {
	pool := make([]string, 0, len(vocabulary))
	for _, w := range vocabulary {
		if !strings.EqualFold(w, answer) {
			pool = append(pool, w)
		}
	}
	g.rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > distractorsPerQuestion {
		pool = pool[:distractorsPerQuestion]
	}
	return pool
}

// uniqueWords returns the distinct alphabetic content words of text in first-seen order.
func uniqueWords(text string) []string {
	seen := map[string]bool{}
	var words []string
	for _, field := range strings.Fields(text) {
		w := trimWord(field)
		key := strings.ToLower(w)
		if !isAlphabetic(w) || len(w) < 3 || stopWords[key] || seen[key] {
			continue
		}
		seen[key] = true
		words = append(words, w)
	}
	return words
}
