package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"deal-formatter/llm"
	"deal-formatter/models"
	"deal-formatter/utils"
)

// requiredKeys are the fields the model is instructed to return.
var requiredKeys = []string{"title", "html_description", "seo_description"}

// Generator produces a formatted listing for a cleaned row via one
// chat-completion call per row.
type Generator struct {
	completer llm.Completer
	logger    *utils.Logger
}

// NewGenerator creates a Generator backed by the given completion client.
func NewGenerator(completer llm.Completer, logger *utils.Logger) *Generator {
	return &Generator{completer: completer, logger: logger}
}

// Generate issues a single request for the row and parses the JSON reply.
// It never fails: any error on the way (transport, malformed JSON, missing
// key) is swallowed into a fallback result carrying the cleaned inputs and
// the failure reason, so the batch keeps going.
func (g *Generator) Generate(ctx context.Context, row *models.DealRow) models.GenerationResult {
	prompt := BuildPrompt(row.CleanTitle, row.CleanDescription)

	reply, err := g.completer.Complete(ctx, prompt)
	if err != nil {
		return g.fallback(row, fmt.Sprintf("generation request failed: %v", err))
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(stripFences(reply)), &fields); err != nil {
		return g.fallback(row, fmt.Sprintf("malformed JSON reply: %v", err))
	}

	values := make(map[string]string, len(requiredKeys))
	for _, key := range requiredKeys {
		val, ok := fields[key]
		if !ok {
			return g.fallback(row, fmt.Sprintf("reply missing key: %q", key))
		}
		str, ok := val.(string)
		if !ok {
			return g.fallback(row, fmt.Sprintf("reply missing key: %q is not a string", key))
		}
		values[key] = str
	}

	return models.GenerationResult{
		Title:           values["title"],
		HTMLDescription: values["html_description"],
		SEODescription:  values["seo_description"],
	}
}

func (g *Generator) fallback(row *models.DealRow, reason string) models.GenerationResult {
	g.logger.Warn("[generator] %q: %s — using fallback", row.CleanTitle, reason)
	return models.GenerationResult{
		Title:           row.CleanTitle,
		HTMLDescription: row.CleanDescription,
		SEODescription:  "",
		Err:             reason,
	}
}

// stripFences removes a markdown code block wrapper (```json ... ``` or
// ``` ... ```) that chat models often put around JSON output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
