// Package recommend turns free-text mood descriptions into typed scent
// recommendations by calling an external text-generation service with a
// fixed response schema.
package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"narie-storefront/internal/domain"
)

var (
	// ErrRecommendation wraps every gateway failure: transport errors,
	// empty payloads, and schema-parse failures.
	ErrRecommendation = errors.New("recommendation failed")
	// ErrBusy is returned when a request is started while another is
	// already in flight. One request per surface at a time.
	ErrBusy = errors.New("recommendation already in flight")
)

// Completer is the boundary to the external text-generation service. It
// returns the raw model text, expected to be JSON matching the schema.
type Completer interface {
	Complete(ctx context.Context, prompt string, schema Schema) (string, error)
}

// Schema is the machine-readable response contract sent with each request.
// The field shapes follow the generative-language structured-output format.
type Schema struct {
	Type        string            `json:"type"`
	Description string            `json:"description,omitempty"`
	Properties  map[string]Schema `json:"properties,omitempty"`
	Items       *Schema           `json:"items,omitempty"`
	Required    []string          `json:"required,omitempty"`
}

// Gateway builds prompts, invokes the completer, and parses results.
type Gateway struct {
	completer Completer

	mu       sync.Mutex
	inFlight bool
}

// New returns a Gateway over the given completer.
func New(completer Completer) *Gateway {
	return &Gateway{completer: completer}
}

func recommendationSchema() Schema {
	return Schema{
		Type: "OBJECT",
		Properties: map[string]Schema{
			"candleName": {
				Type:        "STRING",
				Description: "A creative, artisanal name for the candle.",
			},
			"description": {
				Type:        "STRING",
				Description: "A short, evocative description of the scent experience (max 2 sentences).",
			},
			"scentProfile": {
				Type:        "ARRAY",
				Items:       &Schema{Type: "STRING"},
				Description: "List of 3-4 primary scent notes (e.g., Bergamot, Old Paper, Rain).",
			},
			"moodMatch": {
				Type:        "STRING",
				Description: "A brief phrase explaining why this matches the user's input.",
			},
			"intensityLevel": {
				Type:        "INTEGER",
				Description: "Scent intensity from 1 (Subtle) to 5 (Strong).",
			},
			"recommendedProductId": {
				Type:        "STRING",
				Description: "The exact ID of the real product from the inventory list that is the closest match.",
			},
		},
		Required: []string{"candleName", "description", "scentProfile", "moodMatch", "intensityLevel"},
	}
}

func buildPrompt(mood string, lang domain.Language, inventory []domain.InventoryItem) string {
	langInstruction := "Provide the response in English."
	if lang == domain.LanguageVI {
		langInstruction = "Provide the response in Vietnamese."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Recommend a unique, artisanal candle scent concept based on this user mood or scenario: %q.\n", mood)
	b.WriteString("Be poetic, luxurious, and evocative. ")
	b.WriteString(langInstruction)
	b.WriteString("\n")
	if len(inventory) > 0 {
		b.WriteString("Here is our current available inventory of candles:\n")
		for _, item := range inventory {
			fmt.Fprintf(&b, "- ID: %s, Name: %s, Notes: %s\n", item.ID, item.Name, strings.Join(item.Notes, ", "))
		}
		b.WriteString("CRITICAL: In addition to generating a new concept, you MUST select the single \"ID\" from the list above that matches the generated concept best. Return it in the \"recommendedProductId\" field.\n")
	}
	b.WriteString("The output must be strictly JSON.")
	return b.String()
}

// Recommend asks the external service for a scent concept matching the mood
// text, optionally grounded in the supplied inventory. Only one request may
// be in flight at a time; overlapping calls get ErrBusy. Failures never
// produce a partial result.
func (g *Gateway) Recommend(ctx context.Context, mood string, lang domain.Language, inventory []domain.InventoryItem) (*domain.AIRecommendation, error) {
	if strings.TrimSpace(mood) == "" {
		return nil, fmt.Errorf("mood text required: %w", domain.ErrValidation)
	}

	g.mu.Lock()
	if g.inFlight {
		g.mu.Unlock()
		return nil, ErrBusy
	}
	g.inFlight = true
	g.mu.Unlock()
	defer func() {
		g.mu.Lock()
		g.inFlight = false
		g.mu.Unlock()
	}()

	text, err := g.completer.Complete(ctx, buildPrompt(mood, lang, inventory), recommendationSchema())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRecommendation, err)
	}
	return parseRecommendation(text)
}

// parseRecommendation decodes the model text against the declared schema.
// The service is not guaranteed to conform, so required fields are checked
// and the intensity is clamped to its 1-5 range.
func parseRecommendation(text string) (*domain.AIRecommendation, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty response", ErrRecommendation)
	}
	var rec domain.AIRecommendation
	if err := json.Unmarshal([]byte(text), &rec); err != nil {
		return nil, fmt.Errorf("%w: parse response: %v", ErrRecommendation, err)
	}
	if rec.CandleName == "" || rec.Description == "" || rec.MoodMatch == "" || len(rec.ScentProfile) == 0 {
		return nil, fmt.Errorf("%w: response missing required fields", ErrRecommendation)
	}
	if rec.IntensityLevel < 1 {
		rec.IntensityLevel = 1
	} else if rec.IntensityLevel > 5 {
		rec.IntensityLevel = 5
	}
	return &rec, nil
}
