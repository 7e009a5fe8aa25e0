package ai

// Schema mirrors the response-schema subset of the generative API: enough
// to pin down the JSON shape each gateway operation expects back.
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

const (
	TypeObject = "OBJECT"
	TypeArray  = "ARRAY"
	TypeString = "STRING"
	TypeNumber = "NUMBER"
)

var foodAnalysisSchema = &Schema{
	Type: TypeObject,
	Properties: map[string]*Schema{
		"name":        {Type: TypeString, Description: "A concise name of the food item"},
		"calories":    {Type: TypeNumber, Description: "Estimated calories"},
		"protein":     {Type: TypeNumber, Description: "Estimated protein in grams"},
		"carbs":       {Type: TypeNumber, Description: "Estimated carbohydrates in grams"},
		"fat":         {Type: TypeNumber, Description: "Estimated fat in grams"},
		"servingSize": {Type: TypeString, Description: "Estimated serving size (e.g. '1 cup', '200g')"},
		"confidence":  {Type: TypeNumber, Description: "Confidence score between 0 and 1"},
		"healthTips":  {Type: TypeString, Description: "A short, scientific health tip about this specific food"},
	},
	Required: []string{"name", "calories", "protein", "carbs", "fat", "servingSize", "healthTips"},
}

var dailySummarySchema = &Schema{
	Type: TypeObject,
	Properties: map[string]*Schema{
		"score":        {Type: TypeNumber, Description: "Health score from 1-10 based on goal adherence"},
		"headline":     {Type: TypeString, Description: "A catchy 3-5 word summary of the day"},
		"positives":    {Type: TypeArray, Items: &Schema{Type: TypeString}, Description: "Two things done well"},
		"improvements": {Type: TypeArray, Items: &Schema{Type: TypeString}, Description: "Two areas to improve"},
		"tip":          {Type: TypeString, Description: "One actionable tip for tomorrow"},
	},
	Required: []string{"score", "headline", "positives", "improvements", "tip"},
}

var mealSuggestionSchema = &Schema{
	Type: TypeObject,
	Properties: map[string]*Schema{
		"suggestions": {
			Type: TypeArray,
			Items: &Schema{
				Type: TypeObject,
				Properties: map[string]*Schema{
					"name":        {Type: TypeString},
					"description": {Type: TypeString, Description: "Brief description of ingredients"},
					"calories":    {Type: TypeNumber},
					"protein":     {Type: TypeNumber},
					"carbs":       {Type: TypeNumber},
					"fat":         {Type: TypeNumber},
					"timeToCook":  {Type: TypeString, Description: "e.g. '15 mins'"},
				},
				Required: []string{"name", "description", "calories", "protein", "carbs", "fat", "timeToCook"},
			},
		},
	},
	Required: []string{"suggestions"},
}

var recipeSchema = &Schema{
	Type: TypeObject,
	Properties: map[string]*Schema{
		"name": {Type: TypeString},
		"ingredients": {
			Type: TypeArray,
			Items: &Schema{
				Type: TypeObject,
				Properties: map[string]*Schema{
					"item":   {Type: TypeString},
					"amount": {Type: TypeString},
				},
				Required: []string{"item", "amount"},
			},
		},
		"instructions": {Type: TypeArray, Items: &Schema{Type: TypeString}},
		"tips":         {Type: TypeString, Description: "A chef's secret tip for this recipe"},
	},
	Required: []string{"name", "ingredients", "instructions", "tips"},
}
