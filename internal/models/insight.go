package models

// FoodAnalysis is the structured output of the gateway's food estimation
// operations: everything a FoodItem needs except id, timestamp and meal type.
type FoodAnalysis struct {
	Name        string  `json:"name"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	ServingSize string  `json:"servingSize"`
	Confidence  float64 `json:"confidence,omitempty"`
	HealthTips  string  `json:"healthTips"`
}

type DailyAnalysisResult struct {
	Score        int      `json:"score"`
	Headline     string   `json:"headline"`
	Positives    []string `json:"positives"`
	Improvements []string `json:"improvements"`
	Tip          string   `json:"tip"`
}

type MealSuggestion struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	TimeToCook  string  `json:"timeToCook"`
}

type RecipeIngredient struct {
	Item   string `json:"item"`
	Amount string `json:"amount"`
}

type Recipe struct {
	Name         string             `json:"name"`
	Ingredients  []RecipeIngredient `json:"ingredients"`
	Instructions []string           `json:"instructions"`
	Tips         string             `json:"tips"`
}
