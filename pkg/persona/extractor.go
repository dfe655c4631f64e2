package persona

import "strings"

// ClickContext describes a navigation interaction accompanying (or instead
// of) a chat message.
type ClickContext struct {
	Label   string `json:"label"`
	Section string `json:"section,omitempty"`
}

// SignalExtractor turns raw visitor input into typed signals. Keyword
// matching is the shipped implementation; the interface keeps it swappable
// for a model-based classifier without touching the accumulator contract.
type SignalExtractor interface {
	Extract(text string, click *ClickContext) []Signal
}

// KeywordExtractor is a pure, deterministic extractor over the keyword
// taxonomies in keywords.go.
type KeywordExtractor struct{}

func NewKeywordExtractor() *KeywordExtractor {
	return &KeywordExtractor{}
}

// Extract scans the message text and, when present, the click context.
// Empty or whitespace-only input yields no signals.
func (e *KeywordExtractor) Extract(text string, click *ClickContext) []Signal {
	var signals []Signal
	signals = append(signals, e.extractFrom(text, SourceMessage)...)
	if click != nil {
		clickText := click.Label
		if click.Section != "" {
			clickText += " " + click.Section
		}
		signals = append(signals, e.extractFrom(clickText, SourceNavigation)...)
	}
	return signals
}

func (e *KeywordExtractor) extractFrom(text string, source Source) []Signal {
	lowered := strings.ToLower(strings.TrimSpace(text))
	if lowered == "" {
		return nil
	}

	var signals []Signal

	for _, cat := range vectorCategories {
		matches, evidence := countMatches(lowered, cat.keywords)
		if matches == 0 {
			continue
		}
		strength := StrengthMedium
		if matches >= 2 {
			strength = StrengthStrong
		}
		confidence := float64(matches) * cat.perMatch
		if confidence > cat.cap {
			confidence = cat.cap
		}
		signals = append(signals, Signal{
			Vector:     cat.vector,
			Value:      cat.value,
			Strength:   strength,
			Confidence: confidence,
			Evidence:   evidence,
			Source:     source,
		})
	}

	for _, cat := range painCategories {
		matches, evidence := countMatches(lowered, cat.keywords)
		if matches == 0 {
			continue
		}
		strength := StrengthMedium
		if matches >= 2 {
			strength = StrengthStrong
		}
		signals = append(signals, Signal{
			Vector:     VectorPainPoint,
			PainPoint:  cat.painPoint,
			Strength:   strength,
			Confidence: cat.confidence,
			Evidence:   evidence,
			Source:     source,
		})
	}

	return signals
}

// countMatches returns the number of distinct matched keywords and a
// comma-joined evidence string of the matches.
func countMatches(lowered string, keywords []string) (int, string) {
	var matched []string
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			matched = append(matched, kw)
		}
	}
	return len(matched), strings.Join(matched, ", ")
}
