// Package keyword turns free-text product descriptions into weighted
// keywords and a physical-vs-digital classification that gates the naming
// and role lexicons used downstream.
package keyword

import (
	"regexp"
	"sort"
	"strings"

	"github.com/sells-group/prospect-cli/internal/lexicon"
)

// Extractor derives keywords and classification from product text.
type Extractor struct {
	lex       *lexicon.Set
	stopwords map[string]struct{}
	vocab     map[string]struct{}
}

// NewExtractor creates an Extractor over the given lexicon set.
func NewExtractor(lex *lexicon.Set) *Extractor {
	return &Extractor{
		lex:       lex,
		stopwords: lex.StopwordSet(),
		vocab:     lex.DomainVocabularySet(),
	}
}

var wordPattern = regexp.MustCompile(`[a-z0-9][a-z0-9'-]*`)

// tokenize lowercases text and splits it into word tokens.
func tokenize(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

type scored struct {
	term  string
	score int
}

// Keywords extracts up to count weighted keywords from the product name and
// description. Unigrams are scored by frequency with boosts for domain
// vocabulary (+2) and early position (+1, first quarter of the text); bigrams
// of adjacent non-stopword tokens are extracted separately. The output mixes
// roughly 60% unigrams and 40% bigrams.
func (e *Extractor) Keywords(name, description string, count int) []string {
	if count <= 0 {
		count = 10
	}

	text := name + " " + description
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return nil
	}

	firstQuarter := len(tokens) / 4

	uniScores := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, tok := range tokens {
		if _, stop := e.stopwords[tok]; stop {
			continue
		}
		if len(tok) < 3 {
			continue
		}
		uniScores[tok]++
		if _, seen := firstSeen[tok]; !seen {
			firstSeen[tok] = i
		}
	}
	for term := range uniScores {
		if _, ok := e.vocab[term]; ok {
			uniScores[term] += 2
		}
		if firstSeen[term] <= firstQuarter {
			uniScores[term]++
		}
	}

	biScores := make(map[string]int)
	for i := 0; i+1 < len(tokens); i++ {
		a, b := tokens[i], tokens[i+1]
		if _, stop := e.stopwords[a]; stop {
			continue
		}
		if _, stop := e.stopwords[b]; stop {
			continue
		}
		if len(a) < 3 || len(b) < 3 {
			continue
		}
		biScores[a+" "+b]++
	}

	unigrams := rankTerms(uniScores)
	bigrams := rankTerms(biScores)

	// ~60% unigrams, ~40% bigrams, topped up from whichever list has spare.
	uniCount := (count*6 + 9) / 10
	if uniCount > len(unigrams) {
		uniCount = len(unigrams)
	}
	biCount := count - uniCount
	if biCount > len(bigrams) {
		biCount = len(bigrams)
		if spare := count - uniCount - biCount; spare > 0 && uniCount+spare <= len(unigrams) {
			uniCount += spare
		}
	}

	out := make([]string, 0, count)
	out = append(out, unigrams[:uniCount]...)
	out = append(out, bigrams[:biCount]...)
	return out
}

// rankTerms sorts terms by descending score, breaking ties alphabetically so
// identical input always produces identical output.
func rankTerms(scores map[string]int) []string {
	ranked := make([]scored, 0, len(scores))
	for term, score := range scores {
		ranked = append(ranked, scored{term, score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].term < ranked[j].term
	})
	terms := make([]string, len(ranked))
	for i, s := range ranked {
		terms[i] = s.term
	}
	return terms
}
