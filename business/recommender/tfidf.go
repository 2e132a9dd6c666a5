package recommender

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Tokens are runs of two or more word characters, matching the usual
// vectorizer convention of dropping single-letter fragments.
var tokenRe = regexp.MustCompile(`[a-z0-9]{2,}`)

// vectorizer is a TF-IDF model fitted once over the catalog's cleaned
// descriptions. Vocabulary order is alphabetical so the fit is
// deterministic for a given corpus.
type vectorizer struct {
	vocab map[string]int
	idf   []float64
}

// fitVectorizer builds the vocabulary and smoothed IDF weights from
// the corpus and returns the model together with the L2-normalized
// document-term matrix, row-aligned with the input.
func fitVectorizer(docs []string) (*vectorizer, [][]float64) {
	df := make(map[string]int)
	docTokens := make([][]string, len(docs))

	for i, doc := range docs {
		tokens := tokenize(doc)
		docTokens[i] = tokens

		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	v := &vectorizer{
		vocab: make(map[string]int, len(terms)),
		idf:   make([]float64, len(terms)),
	}
	n := float64(len(docs))
	for i, term := range terms {
		v.vocab[term] = i
		v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	matrix := make([][]float64, len(docs))
	for i, tokens := range docTokens {
		matrix[i] = v.vectorizeTokens(tokens)
	}

	return v, matrix
}

// transform projects arbitrary text into the fitted vocabulary space.
// Terms outside the vocabulary are ignored; text with no known terms
// yields the zero vector.
func (v *vectorizer) transform(text string) []float64 {
	return v.vectorizeTokens(tokenize(text))
}

func (v *vectorizer) vectorizeTokens(tokens []string) []float64 {
	vec := make([]float64, len(v.idf))

	counts := make(map[int]int)
	total := 0
	for _, tok := range tokens {
		if idx, ok := v.vocab[tok]; ok {
			counts[idx]++
			total++
		}
	}
	if total == 0 {
		return vec
	}

	for idx, count := range counts {
		vec[idx] = float64(count) / float64(total) * v.idf[idx]
	}

	if norm := floats.Norm(vec, 2); norm > 0 {
		floats.Scale(1/norm, vec)
	}
	return vec
}

func tokenize(text string) []string {
	tokens := tokenRe.FindAllString(strings.ToLower(text), -1)

	out := tokens[:0]
	for _, tok := range tokens {
		if _, stop := englishStopwords[tok]; stop {
			continue
		}
		out = append(out, tok)
	}
	return out
}
