package engine

import (
	"math"
	"strings"
	"unicode"
)

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// TextSimilarity is the cosine similarity of TF-IDF vectors built
// fresh over the two texts (a two-document corpus, smoothed IDF).
// Either side empty scores zero.
func TextSimilarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	tokensA, tokensB := tokenize(a), tokenize(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	tfA := termCounts(tokensA)
	tfB := termCounts(tokensB)

	// Smoothed IDF over the two-document corpus:
	// idf = ln((1+n)/(1+df)) + 1 with n = 2.
	idf := func(term string) float64 {
		df := 0
		if tfA[term] > 0 {
			df++
		}
		if tfB[term] > 0 {
			df++
		}
		return math.Log(3.0/float64(1+df)) + 1
	}

	var dot, normA, normB float64
	seen := make(map[string]bool, len(tfA)+len(tfB))
	for term := range tfA {
		seen[term] = true
	}
	for term := range tfB {
		seen[term] = true
	}
	for term := range seen {
		w := idf(term)
		wa := float64(tfA[term]) * w
		wb := float64(tfB[term]) * w
		dot += wa * wb
		normA += wa * wa
		normB += wb * wb
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func termCounts(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, token := range tokens {
		counts[token]++
	}
	return counts
}
