package vault

import (
	"strings"
	"unicode"

	"github.com/pmezard/go-difflib/difflib"
)

// SimilarityThreshold is the word-sequence ratio above which two questions count as alike.
const SimilarityThreshold = 0.7

func words(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// Similarity is the difflib ratio of the two questions' word sequences, in [0,1].
func Similarity(a, b string) float64 {
	wa, wb := words(a), words(b)
	if len(wa) == 0 || len(wb) == 0 {
		return 0
	}
	m := difflib.NewMatcher(wa, wb)
	// QuickRatio is an upper bound of Ratio.
	if m.QuickRatio() < SimilarityThreshold {
		return m.QuickRatio()
	}
	return m.Ratio()
}

// FindSimilar returns the vault questions that look like q, in vault order.
func FindSimilar(q string, vault []QuestionVaultItem) []QuestionVaultItem {
	out := make([]QuestionVaultItem, 0)
	for _, item := range vault {
		if Similarity(q, item.Question) >= SimilarityThreshold {
			out = append(out, item)
		}
	}
	return out
}
