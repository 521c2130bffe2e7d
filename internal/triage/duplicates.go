// Package triage holds the pure checks run over bug listings: duplicate detection
// and per-bug data-quality validation.
package triage

import (
	"strings"
	"unicode/utf8"

	"github.com/UDARAS8/bugtracker/internal/model"
)

const (
	// minComparableLen is the length in code points a lowercased description must
	// exceed before it is compared against others. An emoji counts as one.
	minComparableLen = 50

	// similarityThreshold must be strictly exceeded for a description pair to be flagged.
	similarityThreshold = 0.8

	similarDescriptionsValue = "Similar descriptions"
)

// DetectDuplicates returns title groups followed by similar-description pairs.
// Bugs are taken in the order given. A pair may appear in both passes.
func DetectDuplicates(bugs []model.Bug) []model.DuplicateGroup {
	groups := titleGroups(bugs)
	return append(groups, descriptionPairs(bugs)...)
}

// titleGroups groups bugs by trimmed lowercase title. Groups keep first-seen order.
func titleGroups(bugs []model.Bug) []model.DuplicateGroup {
	var order []string
	byTitle := make(map[string][]model.BugRef)
	for _, b := range bugs {
		key := strings.ToLower(strings.TrimSpace(b.Title))
		if _, seen := byTitle[key]; !seen {
			order = append(order, key)
		}
		byTitle[key] = append(byTitle[key], model.BugRef{ID: b.ID, Title: b.Title})
	}

	groups := make([]model.DuplicateGroup, 0)
	for _, key := range order {
		refs := byTitle[key]
		if len(refs) < 2 {
			continue
		}
		groups = append(groups, model.DuplicateGroup{
			Type:  model.DuplicateTypeTitle,
			Value: key,
			Bugs:  refs,
		})
	}
	return groups
}

func descriptionPairs(bugs []model.Bug) []model.DuplicateGroup {
	descs := make([]string, len(bugs))
	for i, b := range bugs {
		descs[i] = strings.ToLower(b.Description)
	}

	var groups []model.DuplicateGroup
	for i := 0; i < len(bugs); i++ {
		if utf8.RuneCountInString(descs[i]) <= minComparableLen {
			continue
		}
		for j := i + 1; j < len(bugs); j++ {
			if utf8.RuneCountInString(descs[j]) <= minComparableLen {
				continue
			}
			similarity := Similarity(descs[i], descs[j])
			if similarity > similarityThreshold {
				groups = append(groups, model.DuplicateGroup{
					Type:  model.DuplicateTypeDescription,
					Value: similarDescriptionsValue,
					Bugs: []model.BugRef{
						{ID: bugs[i].ID, Title: bugs[i].Title},
						{ID: bugs[j].ID, Title: bugs[j].Title},
					},
					Similarity: &similarity,
				})
			}
		}
	}
	return groups
}

// Similarity is the share of distinct whitespace-separated words that occur in both
// texts: |words(a) ∩ words(b)| / |words(a) ∪ words(b)|. No case folding is applied here.
func Similarity(a, b string) float64 {
	wordsA := wordSet(a)
	wordsB := wordSet(b)

	union := make(map[string]struct{}, len(wordsA)+len(wordsB))
	for w := range wordsA {
		union[w] = struct{}{}
	}
	for w := range wordsB {
		union[w] = struct{}{}
	}
	if len(union) == 0 {
		return 0
	}

	matches := 0
	for w := range union {
		_, inA := wordsA[w]
		_, inB := wordsB[w]
		if inA && inB {
			matches++
		}
	}
	return float64(matches) / float64(len(union))
}

func wordSet(s string) map[string]struct{} {
	words := strings.Fields(s)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
