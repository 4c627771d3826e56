package model

// SortOption is a supported result ordering for recipe search.
type SortOption string

const (
	SortPopularity SortOption = "popularity"
	SortTime       SortOption = "time"
	SortRelevance  SortOption = "relevance"
)

// SearchParams represents a recipe search request. Zero values mean unset.
type SearchParams struct {
	Query              string
	Diet               []string
	Cuisine            string
	MaxReadyTime       int
	IncludeIngredients []string
	Sort               SortOption
	Offset             int
	Number             int
}

// RecipeSummary represents one recipe in a search result page.
type RecipeSummary struct {
	ID             int64    `json:"id"`
	Title          string   `json:"title"`
	Image          string   `json:"image"`
	ImageType      string   `json:"imageType"`
	ReadyInMinutes int      `json:"readyInMinutes"`
	Servings       int      `json:"servings"`
	SourceURL      string   `json:"sourceUrl"`
	Diets          []string `json:"diets,omitempty"`
	DishTypes      []string `json:"dishTypes,omitempty"`
	Cuisines       []string `json:"cuisines,omitempty"`
}

// SearchResponse represents a normalized search result page. Field names
// follow the upstream API so clients can consume either source unchanged.
type SearchResponse struct {
	Results      []RecipeSummary `json:"results"`
	Offset       int             `json:"offset"`
	Number       int             `json:"number"`
	TotalResults int             `json:"totalResults"`
}

// Ingredient represents one ingredient line of a recipe.
type Ingredient struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Original string  `json:"original"`
	Amount   float64 `json:"amount"`
	Unit     string  `json:"unit"`
}

// InstructionStep is a single numbered step in a recipe's instructions.
type InstructionStep struct {
	Number int    `json:"number"`
	Step   string `json:"step"`
}

// InstructionSet groups the steps of one named instruction block.
type InstructionSet struct {
	Name  string            `json:"name"`
	Steps []InstructionStep `json:"steps"`
}

// RecipeDetail represents the full detail view of a single recipe.
type RecipeDetail struct {
	RecipeSummary
	Summary              string           `json:"summary"`
	Instructions         string           `json:"instructions"`
	AnalyzedInstructions []InstructionSet `json:"analyzedInstructions,omitempty"`
	ExtendedIngredients  []Ingredient     `json:"extendedIngredients,omitempty"`
}
