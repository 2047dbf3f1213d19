package tools

// ToolDefinition is one function schema in the OpenAI tools format.
type ToolDefinition struct {
	Type     string             `json:"type"`
	Function FunctionDefinition `json:"function"`
}

// FunctionDefinition describes a callable tool to the model.
type FunctionDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

func objectSchema(properties map[string]any, required ...string) map[string]any {
	if required == nil {
		required = []string{}
	}
	return map[string]any{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}

var periodProperty = map[string]any{
	"type":        "string",
	"enum":        []string{"Breakfast", "Lunch", "Dinner"},
	"description": "Meal period",
}

// Definitions returns the tool schemas advertised to the model. The
// Registry dispatches a few extra helpers beyond these; the model only
// sees this list.
func (r *Registry) Definitions() []ToolDefinition {
	return []ToolDefinition{
		{
			Type: "function",
			Function: FunctionDefinition{
				Name:        "get_complete_meals",
				Description: "Get COMPLETE ready-to-eat meals (burgers, sandwiches, pizzas, entrees). Use this FIRST when user wants a meal recommendation. These are NOT components - they are full dishes. Includes detailed nutrition data (fiber, sugar, sodium, etc.).",
				Parameters: objectSchema(map[string]any{
					"location": map[string]any{
						"type":        "string",
						"description": "Dining hall name (e.g., 'Palladium', 'Third North')",
					},
					"period": periodProperty,
					"dietary_tags": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "string"},
						"description": "Dietary restrictions: 'Vegan', 'Vegetarian', 'Avoiding Gluten'",
					},
					"min_protein": map[string]any{
						"type":        "number",
						"description": "Minimum protein in grams",
					},
					"max_calories": map[string]any{
						"type":        "integer",
						"description": "Maximum calories",
					},
					"max_sodium": map[string]any{
						"type":        "number",
						"description": "Maximum sodium in mg (for low-sodium diets)",
					},
					"min_fiber": map[string]any{
						"type":        "number",
						"description": "Minimum fiber in grams (for high-fiber needs)",
					},
					"max_sugar": map[string]any{
						"type":        "number",
						"description": "Maximum sugar in grams (for diabetic/low-sugar needs)",
					},
				}),
			},
		},
		{
			Type: "function",
			Function: FunctionDefinition{
				Name:        "get_build_your_own",
				Description: "Get components for BUILD-YOUR-OWN stations (salad bar, deli, taco bar). Returns proteins, bases, toppings, and sauces separately. Use when user wants to customize or build their own meal.",
				Parameters: objectSchema(map[string]any{
					"location": map[string]any{
						"type":        "string",
						"description": "Dining hall name",
					},
					"period": periodProperty,
					"dietary_tags": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "string"},
						"description": "Dietary restrictions",
					},
				}, "location"),
			},
		},
		{
			Type: "function",
			Function: FunctionDefinition{
				Name:        "search_menu",
				Description: "General search for menu items with advanced nutrition filters. Use get_complete_meals for ready-to-eat dishes, or get_build_your_own for customizable stations. Use this for specific keyword searches or advanced nutrition filtering (fiber, sodium, sugar).",
				Parameters: objectSchema(map[string]any{
					"keywords": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "string"},
						"description": "Words to search for (e.g., ['pizza'], ['chicken'])",
					},
					"period": periodProperty,
					"location": map[string]any{
						"type":        "string",
						"description": "Dining hall name",
					},
					"dietary_tags": map[string]any{
						"type":        "array",
						"items":       map[string]any{"type": "string"},
						"description": "Dietary restrictions",
					},
					"min_protein": map[string]any{
						"type":        "number",
						"description": "Minimum protein in grams",
					},
					"max_calories": map[string]any{
						"type":        "integer",
						"description": "Maximum calories",
					},
					"max_sodium": map[string]any{
						"type":        "number",
						"description": "Maximum sodium in mg (for low-sodium diets, recommended <600mg per meal)",
					},
					"min_fiber": map[string]any{
						"type":        "number",
						"description": "Minimum fiber in grams (for high-fiber needs, 5g+ is good)",
					},
					"max_sugar": map[string]any{
						"type":        "number",
						"description": "Maximum sugar in grams (for low-sugar/diabetic needs)",
					},
				}),
			},
		},
		{
			Type: "function",
			Function: FunctionDefinition{
				Name:        "list_locations",
				Description: "Get all NYU dining locations.",
				Parameters:  objectSchema(map[string]any{}),
			},
		},
		{
			Type: "function",
			Function: FunctionDefinition{
				Name:        "get_location_hours",
				Description: "Get operating hours for a specific dining location for TODAY. Returns hours based on current day of week (weekday/weekend) and tells you if the location is open or closed today.",
				Parameters: objectSchema(map[string]any{
					"location": map[string]any{
						"type":        "string",
						"description": "Dining hall name (e.g., 'Third North', 'Kimmel', 'Palladium')",
					},
				}, "location"),
			},
		},
		{
			Type: "function",
			Function: FunctionDefinition{
				Name:        "get_current_time",
				Description: "Get the current time, day of week, and date. Use this at the START of every request to know what meal period it is (breakfast/lunch/dinner) and whether it's a weekday or weekend.",
				Parameters:  objectSchema(map[string]any{}),
			},
		},
	}
}
