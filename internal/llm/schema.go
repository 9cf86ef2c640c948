package llm

// SchemaName is the response_format name sent to the model.
const SchemaName = "extract_offers_response"

// BuildOffersJSONSchema returns the strict response schema as a generic map.
// It is passed to the model as a structured-output constraint and used locally
// to validate the reply: additionalProperties is false at every object level
// and every offer key is required, so the model can neither add nor omit
// fields. brand and originalPrice stay nullable.
func BuildOffersJSONSchema() map[string]any {
	item := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"storeName":      map[string]any{"type": "string"},
			"productName":    map[string]any{"type": "string"},
			"brand":          map[string]any{"type": []string{"string", "null"}},
			"quantity":       map[string]any{"type": "string"},
			"price":          map[string]any{"type": "number"},
			"originalPrice":  map[string]any{"type": []string{"string", "null"}},
			"offerDateStart": map[string]any{"type": "string"},
			"offerDateEnd":   map[string]any{"type": "string"},
		},
		"required": []string{
			"storeName", "productName", "brand", "quantity",
			"price", "originalPrice", "offerDateStart", "offerDateEnd",
		},
		"additionalProperties": false,
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"offers": map[string]any{
				"type":  "array",
				"items": item,
			},
		},
		"required":             []string{"offers"},
		"additionalProperties": false,
	}
}
