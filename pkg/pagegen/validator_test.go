package pagegen

import (
	"strings"
	"testing"

	"bevgenie-be/pkg/intent"
)

func validPage() *GeneratedPage {
	return &GeneratedPage{
		PageType: intent.PagePainPointSolution,
		Headline: "Measure field execution across every account",
		Subtitle: "Visibility for beverage sales teams",
		Insights: []Insight{
			{Text: "Teams that track execution weekly close display gaps twice as fast as quarterly audit cycles."},
			{Text: "Most suppliers discover out-of-stocks weeks late because store-level data never reaches the field."},
			{Text: "A single shared scorecard keeps reps, managers and distributors aligned on the same priorities."},
		},
		Stats: []Stat{
			{Value: "37%", Label: "Lift in display compliance"},
			{Value: "8+ hrs", Label: "Saved per rep per week"},
			{Value: "2.4x", Label: "Faster issue resolution"},
		},
		Visual: Visual{
			Type:  VisualHighlightBox,
			Title: "From blind spots to scorecards",
			Body:  "Field activity, depletions and retail conditions roll into one live view per account.",
		},
		Steps: []string{
			"Connect your distributor depletion feeds",
			"Map accounts to territories and reps",
			"Review the execution scorecard weekly",
		},
		CTAs: []CTA{
			{Text: "Book a demo", Action: ActionDemo},
			{Text: "Learn more", Action: ActionLearn},
		},
	}
}

func TestValidateValidPage(t *testing.T) {
	if violations := Validate(validPage()); len(violations) != 0 {
		t.Errorf("Validate returned violations for a valid page: %v", violations)
	}
}

func TestValidateViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GeneratedPage)
		want   string
	}{
		{
			name:   "headline too short",
			mutate: func(p *GeneratedPage) { p.Headline = "Short" },
			want:   "headline must be 20-80 chars",
		},
		{
			name:   "subtitle too long",
			mutate: func(p *GeneratedPage) { p.Subtitle = strings.Repeat("x", 61) },
			want:   "subtitle must be 15-60 chars",
		},
		{
			name:   "too few insights",
			mutate: func(p *GeneratedPage) { p.Insights = p.Insights[:2] },
			want:   "insights must contain 3-5 entries",
		},
		{
			name:   "insight too short",
			mutate: func(p *GeneratedPage) { p.Insights[1].Text = "tiny" },
			want:   "insights[1].text must be 50-250 chars",
		},
		{
			name:   "wrong stat count",
			mutate: func(p *GeneratedPage) { p.Stats = p.Stats[:2] },
			want:   "stats must contain exactly 3 entries",
		},
		{
			name:   "stat value too long",
			mutate: func(p *GeneratedPage) { p.Stats[0].Value = "seventeen percent!" },
			want:   "stats[0].value must be 1-15 chars",
		},
		{
			name:   "unknown visual type",
			mutate: func(p *GeneratedPage) { p.Visual.Type = "carousel" },
			want:   "visual.type must be",
		},
		{
			name:   "empty visual body",
			mutate: func(p *GeneratedPage) { p.Visual.Body = "" },
			want:   "visual.body must not be empty",
		},
		{
			name:   "too many steps",
			mutate: func(p *GeneratedPage) { p.Steps = append(p.Steps, p.Steps...) },
			want:   "steps must contain 3-5 entries",
		},
		{
			name:   "single cta",
			mutate: func(p *GeneratedPage) { p.CTAs = p.CTAs[:1] },
			want:   "ctas must contain 2-3 entries",
		},
		{
			name:   "unknown cta action",
			mutate: func(p *GeneratedPage) { p.CTAs[0].Action = "buy_now" },
			want:   `ctas[0].action "buy_now" is not a known action`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := validPage()
			tt.mutate(page)
			violations := Validate(page)
			if len(violations) == 0 {
				t.Fatal("expected violations, got none")
			}
			joined := strings.Join(violations, "; ")
			if !strings.Contains(joined, tt.want) {
				t.Errorf("violations %q missing %q", joined, tt.want)
			}
		})
	}
}
