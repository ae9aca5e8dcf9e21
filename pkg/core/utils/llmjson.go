package utils

import (
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// RepairJSON attempts to fix common JSON errors from LLM outputs:
// single quotes, unclosed brackets, trailing commas, markdown fences.
func RepairJSON(malformedJSON string) (string, error) {
	repaired, err := jsonrepair.RepairJSON(malformedJSON)
	if err != nil {
		return "", fmt.Errorf("json repair failed: %w", err)
	}
	return repaired, nil
}

// ParseHJSONToStruct parses human-friendly JSON (comments, unquoted keys,
// optional commas) directly into a Go struct. Last-resort decoder for model
// output that survived repair but is still not strict JSON.
func ParseHJSONToStruct(data string, schema interface{}) error {
	if err := hjson.Unmarshal([]byte(data), schema); err != nil {
		return fmt.Errorf("hjson unmarshal failed: %w", err)
	}
	return nil
}

// DecodeLenientJSON decodes LLM-produced JSON into schema, trying strict
// JSON first, then repaired JSON, then Hjson.
func DecodeLenientJSON(raw string, schema interface{}) error {
	cleaned := CleanMarkdown(raw)

	if err := json.Unmarshal([]byte(cleaned), schema); err == nil {
		return nil
	}
	if repaired, err := RepairJSON(cleaned); err == nil {
		if err := json.Unmarshal([]byte(repaired), schema); err == nil {
			return nil
		}
	}
	return ParseHJSONToStruct(cleaned, schema)
}
