// Package search ranks the food catalog against free-text queries.
// Scoring is additive over several match signals so that an exact name
// hit always outranks a substring hit, with word-level matching to
// tolerate partial typing.
package search

import (
	"sort"
	"strings"

	"github.com/aravindcleaerr/DietWise/internal/catalog"
	"github.com/aravindcleaerr/DietWise/internal/model"
)

// Score weights for each match signal.
const (
	scoreExactName      = 100
	scoreNamePrefix     = 50
	scoreNameContains   = 30
	scoreHindiContains  = 25
	scoreCategoryMatch  = 10
	scoreWordInName     = 15
	scoreWordInHindi    = 10
	scoreWordInCategory = 5
	scoreWordPrefix     = 8
)

// Foods ranks the built-in food table against the query. A blank query
// matches nothing. Results are ordered by score descending, ties broken
// alphabetically by name.
func Foods(query string) []model.FoodItem {
	return Rank(catalog.Foods, query)
}

// Rank scores each food against the query and returns the matches in
// relevance order. Foods scoring zero are excluded.
func Rank(foods []model.FoodItem, query string) []model.FoodItem {
	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized == "" {
		return nil
	}
	words := strings.Fields(normalized)

	type scored struct {
		food  model.FoodItem
		score int
	}
	var results []scored
	for _, food := range foods {
		if s := scoreFood(food, normalized, words); s > 0 {
			results = append(results, scored{food: food, score: s})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score != results[j].score {
			return results[i].score > results[j].score
		}
		return strings.ToLower(results[i].food.Name) < strings.ToLower(results[j].food.Name)
	})

	out := make([]model.FoodItem, len(results))
	for i, r := range results {
		out[i] = r.food
	}
	return out
}

func scoreFood(food model.FoodItem, query string, words []string) int {
	name := strings.ToLower(food.Name)
	hindi := strings.ToLower(food.NameHindi)
	category := strings.ToLower(food.Category)

	score := 0
	if name == query {
		score += scoreExactName
	}
	if strings.HasPrefix(name, query) {
		score += scoreNamePrefix
	}
	if strings.Contains(name, query) {
		score += scoreNameContains
	}
	if hindi != "" && strings.Contains(hindi, query) {
		score += scoreHindiContains
	}
	if strings.Contains(category, query) {
		score += scoreCategoryMatch
	}

	nameWords := splitNameWords(name)
	for _, word := range words {
		if len(word) < 2 {
			continue
		}
		if strings.Contains(name, word) {
			score += scoreWordInName
		}
		if hindi != "" && strings.Contains(hindi, word) {
			score += scoreWordInHindi
		}
		if strings.Contains(category, word) {
			score += scoreWordInCategory
		}
		for _, nameWord := range nameWords {
			if len(nameWord) < 2 {
				continue
			}
			if strings.HasPrefix(nameWord, word) || strings.HasPrefix(word, nameWord) {
				score += scoreWordPrefix
			}
		}
	}
	return score
}

func splitNameWords(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool {
		switch r {
		case ' ', '\t', '/', '(', ')':
			return true
		}
		return false
	})
}
