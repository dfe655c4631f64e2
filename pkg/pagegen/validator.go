package pagegen

import "fmt"

// Validate checks a generated page against the single-screen schema and
// returns the list of violated rules. An empty list means the page is valid.
// The checker is pure so it can double as retry feedback for the model.
func Validate(p *GeneratedPage) []string {
	var violations []string

	violations = appendLengthViolation(violations, "headline", p.Headline, 20, 80)
	violations = appendLengthViolation(violations, "subtitle", p.Subtitle, 15, 60)

	if n := len(p.Insights); n < 3 || n > 5 {
		violations = append(violations, fmt.Sprintf("insights must contain 3-5 entries, got %d", n))
	}
	for i, insight := range p.Insights {
		violations = appendLengthViolation(violations, fmt.Sprintf("insights[%d].text", i), insight.Text, 50, 250)
	}

	if n := len(p.Stats); n != 3 {
		violations = append(violations, fmt.Sprintf("stats must contain exactly 3 entries, got %d", n))
	}
	for i, stat := range p.Stats {
		if stat.Value == "" || len(stat.Value) > 15 {
			violations = append(violations, fmt.Sprintf("stats[%d].value must be 1-15 chars, got %d", i, len(stat.Value)))
		}
		if stat.Label == "" || len(stat.Label) > 40 {
			violations = append(violations, fmt.Sprintf("stats[%d].label must be 1-40 chars, got %d", i, len(stat.Label)))
		}
	}

	switch p.Visual.Type {
	case VisualCaseStudy, VisualHighlightBox, VisualExample:
	default:
		violations = append(violations, fmt.Sprintf("visual.type must be case_study, highlight_box or example, got %q", p.Visual.Type))
	}
	if p.Visual.Body == "" {
		violations = append(violations, "visual.body must not be empty")
	}

	if n := len(p.Steps); n < 3 || n > 5 {
		violations = append(violations, fmt.Sprintf("steps must contain 3-5 entries, got %d", n))
	}
	for i, step := range p.Steps {
		violations = appendLengthViolation(violations, fmt.Sprintf("steps[%d]", i), step, 20, 100)
	}

	if n := len(p.CTAs); n < 2 || n > 3 {
		violations = append(violations, fmt.Sprintf("ctas must contain 2-3 entries, got %d", n))
	}
	for i, cta := range p.CTAs {
		if cta.Text == "" || len(cta.Text) > 40 {
			violations = append(violations, fmt.Sprintf("ctas[%d].text must be 1-40 chars, got %d", i, len(cta.Text)))
		}
		switch cta.Action {
		case ActionDemo, ActionContact, ActionLearn, ActionDownload:
		default:
			violations = append(violations, fmt.Sprintf("ctas[%d].action %q is not a known action", i, cta.Action))
		}
	}

	return violations
}

func appendLengthViolation(violations []string, field, value string, min, max int) []string {
	if len(value) < min || len(value) > max {
		violations = append(violations, fmt.Sprintf("%s must be %d-%d chars, got %d", field, min, max, len(value)))
	}
	return violations
}
