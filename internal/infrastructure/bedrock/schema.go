package bedrock

func assessmentSchema() map[string]any {
	str := func(description string) map[string]any {
		return map[string]any{"type": "string", "description": description}
	}
	num := func(description string) map[string]any {
		return map[string]any{"type": "number", "description": description}
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"carMetadata": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"make":  str("Vehicle manufacturer, e.g. Toyota"),
					"model": str("Vehicle model, e.g. Camry"),
					"color": str("Primary exterior color of the vehicle"),
				},
				"required": []string{"make", "model", "color"},
			},
			"damageSummary": str("Detailed description of all visible damage including affected panels, severity, and any safety concerns"),
			"estimatedRepairCost": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"min":      num("Lower bound of repair cost estimate in USD"),
					"max":      num("Upper bound of repair cost estimate in USD"),
					"currency": map[string]any{"type": "string", "enum": []string{"USD"}},
				},
				"required": []string{"min", "max", "currency"},
			},
		},
		"required": []string{"carMetadata", "damageSummary", "estimatedRepairCost"},
	}
}
