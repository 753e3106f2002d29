package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/freshtrackhq/freshtrack/internal/domain"
)

type recipeService struct{}

// NewRecipeService returns the local recipe generator. It builds simple
// suggestions around whatever is in the pantry without calling any external
// service, so suggestions keep working offline.
func NewRecipeService() RecipeService {
	return &recipeService{}
}

func (s *recipeService) Suggest(ctx context.Context, items []domain.PantryItem) ([]domain.Recipe, error) {
	var names []string
	seen := map[string]bool{}
	for _, it := range items {
		if it.Name == "" || seen[it.Name] {
			continue
		}
		seen[it.Name] = true
		names = append(names, it.Name)
	}
	if len(names) == 0 {
		return []domain.Recipe{{
			ID:          "local-fallback",
			Title:       "Simple Pantry Stir-Fry",
			Ingredients: []string{"Any vegetables you have", "oil", "soy sauce or salt"},
			Instructions: "Slice whatever vegetables you have. Stir-fry in a hot pan with oil, " +
				"season with soy sauce or salt and pepper, and serve with rice or bread.",
		}}, nil
	}
	if len(names) > 5 {
		names = names[:5]
	}

	var recipes []domain.Recipe

	main := strings.ToLower(names[0])
	recipes = append(recipes, domain.Recipe{
		ID:          "local-1",
		Title:       fmt.Sprintf("Easy %s Bowl", title(main)),
		Ingredients: append(firstN(names, 3), "olive oil", "salt", "pepper"),
		Instructions: fmt.Sprintf(
			"Chop your %s. Sauté in a pan with olive oil, salt, and pepper until tender. "+
				"Serve warm as a simple bowl or side dish.",
			strings.Join(firstN(names, 3), ", ")),
	})

	if len(names) >= 2 {
		second := strings.ToLower(names[1])
		recipes = append(recipes, domain.Recipe{
			ID:          "local-2",
			Title:       fmt.Sprintf("%s & %s Skillet", title(main), title(second)),
			Ingredients: append(firstN(names, 4), "garlic", "onion"),
			Instructions: fmt.Sprintf(
				"Slice %s and %s thinly. Cook with garlic and onion in a skillet until fragrant. "+
					"Add remaining veggies, season to taste, and cook until done.",
				names[0], names[1]),
		})
	}

	if len(names) >= 3 {
		recipes = append(recipes, domain.Recipe{
			ID:          "local-3",
			Title:       "Pantry Sheet-Pan Roast",
			Ingredients: append(firstN(names, 5), "olive oil", "mixed herbs"),
			Instructions: "Preheat oven to 200°C. Cut all veggies into similar-sized pieces. " +
				"Toss with olive oil, salt, pepper, and mixed herbs. " +
				"Roast on a tray for 20-30 minutes until golden and cooked through.",
		})
	}

	return recipes, nil
}

func firstN(names []string, n int) []string {
	if len(names) < n {
		n = len(names)
	}
	out := make([]string, n)
	copy(out, names[:n])
	return out
}

func title(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
