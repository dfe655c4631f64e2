package pagegen

import (
	"strings"

	"bevgenie-be/pkg/intent"
)

// Slot names a typed placeholder inside a template skeleton. A skeleton
// string field either holds final copy or exactly one "{{slot}}" token; fill
// never does substring replacement inside serialized output, so substituted
// values cannot break the structure regardless of braces or quotes.
const (
	slotOpen  = "{{"
	slotClose = "}}"
)

// UnfilledSentinel is substituted for any slot the model left without a
// value. It is deliberately visible rather than silently dropped.
const UnfilledSentinel = "[Content]"

// Template is a pre-authored structural page skeleton for one page type.
type Template struct {
	Name     string
	PageType intent.PageType
	// BestFor drives both the LLM template-selection call and the keyword
	// fallback scoring.
	BestFor  []string
	Skeleton GeneratedPage
}

// Slots lists the placeholder names present in the skeleton, in a stable
// field order, for prompt construction.
func (t *Template) Slots() []string {
	var slots []string
	collect := func(s string) {
		if name, ok := slotName(s); ok {
			slots = append(slots, name)
		}
	}
	collect(t.Skeleton.Headline)
	collect(t.Skeleton.Subtitle)
	for _, i := range t.Skeleton.Insights {
		collect(i.Text)
	}
	for _, s := range t.Skeleton.Stats {
		collect(s.Value)
		collect(s.Label)
	}
	collect(t.Skeleton.Visual.Title)
	collect(t.Skeleton.Visual.Body)
	for _, s := range t.Skeleton.Steps {
		collect(s)
	}
	for _, c := range t.Skeleton.CTAs {
		collect(c.Text)
	}
	return slots
}

// Fill substitutes slot values into a copy of the skeleton via typed
// traversal. Missing values become UnfilledSentinel.
func (t *Template) Fill(values map[string]string) *GeneratedPage {
	page := t.Skeleton
	page.PageType = t.PageType

	page.Headline = fillString(page.Headline, values)
	page.Subtitle = fillString(page.Subtitle, values)

	page.Insights = append([]Insight(nil), t.Skeleton.Insights...)
	for i := range page.Insights {
		page.Insights[i].Text = fillString(page.Insights[i].Text, values)
	}

	page.Stats = append([]Stat(nil), t.Skeleton.Stats...)
	for i := range page.Stats {
		page.Stats[i].Value = fillString(page.Stats[i].Value, values)
		page.Stats[i].Label = fillString(page.Stats[i].Label, values)
	}

	page.Visual.Title = fillString(page.Visual.Title, values)
	page.Visual.Body = fillString(page.Visual.Body, values)

	page.Steps = append([]string(nil), t.Skeleton.Steps...)
	for i := range page.Steps {
		page.Steps[i] = fillString(page.Steps[i], values)
	}

	page.CTAs = append([]CTA(nil), t.Skeleton.CTAs...)
	for i := range page.CTAs {
		page.CTAs[i].Text = fillString(page.CTAs[i].Text, values)
	}

	return &page
}

func fillString(s string, values map[string]string) string {
	name, ok := slotName(s)
	if !ok {
		return s
	}
	if v, found := values[name]; found && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return UnfilledSentinel
}

func slotName(s string) (string, bool) {
	if strings.HasPrefix(s, slotOpen) && strings.HasSuffix(s, slotClose) {
		name := s[len(slotOpen) : len(s)-len(slotClose)]
		if name != "" && !strings.Contains(name, slotOpen) {
			return name, true
		}
	}
	return "", false
}

// TemplatesFor returns the authored templates for a page type.
func TemplatesFor(pageType intent.PageType) []*Template {
	var out []*Template
	for _, t := range templates {
		if t.PageType == pageType {
			out = append(out, t)
		}
	}
	return out
}

var templates = []*Template{
	{
		Name:     "roi-payback-focus",
		PageType: intent.PageROICalculator,
		BestFor:  []string{"payback", "investment", "cost justification", "budget approval"},
		Skeleton: GeneratedPage{
			Headline: "{{headline}}",
			Subtitle: "{{subtitle}}",
			Insights: []Insight{
				{Text: "{{insight_1}}"},
				{Text: "{{insight_2}}"},
				{Text: "{{insight_3}}"},
			},
			Stats: []Stat{
				{Value: "{{stat_1_value}}", Label: "{{stat_1_label}}"},
				{Value: "{{stat_2_value}}", Label: "{{stat_2_label}}"},
				{Value: "{{stat_3_value}}", Label: "{{stat_3_label}}"},
			},
			Visual: Visual{Type: VisualHighlightBox, Title: "{{visual_title}}", Body: "{{visual_body}}"},
			Steps: []string{
				"{{step_1}}",
				"{{step_2}}",
				"{{step_3}}",
			},
			CTAs: []CTA{
				{Text: "See your payback period", Action: ActionDemo},
				{Text: "Talk through the numbers", Action: ActionContact},
			},
		},
	},
	{
		Name:     "roi-team-productivity",
		PageType: intent.PageROICalculator,
		BestFor:  []string{"team productivity", "time savings", "rep efficiency", "headcount"},
		Skeleton: GeneratedPage{
			Headline: "{{headline}}",
			Subtitle: "{{subtitle}}",
			Insights: []Insight{
				{Text: "{{insight_1}}"},
				{Text: "{{insight_2}}"},
				{Text: "{{insight_3}}"},
			},
			Stats: []Stat{
				{Value: "{{stat_1_value}}", Label: "{{stat_1_label}}"},
				{Value: "8+ hrs", Label: "Saved per rep per week"},
				{Value: "{{stat_3_value}}", Label: "{{stat_3_label}}"},
			},
			Visual: Visual{Type: VisualCaseStudy, Title: "{{visual_title}}", Body: "{{visual_body}}"},
			Steps: []string{
				"{{step_1}}",
				"{{step_2}}",
				"{{step_3}}",
			},
			CTAs: []CTA{
				{Text: "Calculate your team's ROI", Action: ActionDemo},
				{Text: "Read the full case study", Action: ActionLearn},
			},
		},
	},
	{
		Name:     "pain-execution-visibility",
		PageType: intent.PagePainPointSolution,
		BestFor:  []string{"execution visibility", "field blind spots", "retail tracking", "prove results"},
		Skeleton: GeneratedPage{
			Headline: "{{headline}}",
			Subtitle: "{{subtitle}}",
			Insights: []Insight{
				{Text: "{{insight_1}}"},
				{Text: "{{insight_2}}"},
				{Text: "{{insight_3}}"},
			},
			Stats: []Stat{
				{Value: "{{stat_1_value}}", Label: "{{stat_1_label}}"},
				{Value: "{{stat_2_value}}", Label: "{{stat_2_label}}"},
				{Value: "{{stat_3_value}}", Label: "{{stat_3_label}}"},
			},
			Visual: Visual{Type: VisualHighlightBox, Title: "{{visual_title}}", Body: "{{visual_body}}"},
			Steps: []string{
				"{{step_1}}",
				"{{step_2}}",
				"{{step_3}}",
			},
			CTAs: []CTA{
				{Text: "See it on your accounts", Action: ActionDemo},
				{Text: "Talk to our team", Action: ActionContact},
			},
		},
	},
	{
		Name:     "pain-operational-load",
		PageType: intent.PagePainPointSolution,
		BestFor:  []string{"manual work", "spreadsheets", "process overhead", "too many tools"},
		Skeleton: GeneratedPage{
			Headline: "{{headline}}",
			Subtitle: "{{subtitle}}",
			Insights: []Insight{
				{Text: "{{insight_1}}"},
				{Text: "{{insight_2}}"},
				{Text: "{{insight_3}}"},
			},
			Stats: []Stat{
				{Value: "{{stat_1_value}}", Label: "{{stat_1_label}}"},
				{Value: "{{stat_2_value}}", Label: "{{stat_2_label}}"},
				{Value: "1 place", Label: "For every field answer"},
			},
			Visual: Visual{Type: VisualExample, Title: "{{visual_title}}", Body: "{{visual_body}}"},
			Steps: []string{
				"{{step_1}}",
				"{{step_2}}",
				"{{step_3}}",
			},
			CTAs: []CTA{
				{Text: "Replace the spreadsheet", Action: ActionDemo},
				{Text: "See how it works", Action: ActionLearn},
			},
		},
	},
	{
		Name:     "feature-walkthrough",
		PageType: intent.PageFeatureShowcase,
		BestFor:  []string{"capabilities", "product tour", "integrations", "how it works"},
		Skeleton: GeneratedPage{
			Headline: "{{headline}}",
			Subtitle: "{{subtitle}}",
			Insights: []Insight{
				{Text: "{{insight_1}}"},
				{Text: "{{insight_2}}"},
				{Text: "{{insight_3}}"},
			},
			Stats: []Stat{
				{Value: "{{stat_1_value}}", Label: "{{stat_1_label}}"},
				{Value: "{{stat_2_value}}", Label: "{{stat_2_label}}"},
				{Value: "{{stat_3_value}}", Label: "{{stat_3_label}}"},
			},
			Visual: Visual{Type: VisualExample, Title: "{{visual_title}}", Body: "{{visual_body}}"},
			Steps: []string{
				"{{step_1}}",
				"{{step_2}}",
				"{{step_3}}",
			},
			CTAs: []CTA{
				{Text: "Watch it in action", Action: ActionDemo},
				{Text: "Explore all features", Action: ActionLearn},
			},
		},
	},
	{
		Name:     "customer-proof",
		PageType: intent.PageSuccessStory,
		BestFor:  []string{"case study", "customer results", "proof", "testimonial"},
		Skeleton: GeneratedPage{
			Headline: "{{headline}}",
			Subtitle: "{{subtitle}}",
			Insights: []Insight{
				{Text: "{{insight_1}}"},
				{Text: "{{insight_2}}"},
				{Text: "{{insight_3}}"},
			},
			Stats: []Stat{
				{Value: "{{stat_1_value}}", Label: "{{stat_1_label}}"},
				{Value: "{{stat_2_value}}", Label: "{{stat_2_label}}"},
				{Value: "{{stat_3_value}}", Label: "{{stat_3_label}}"},
			},
			Visual: Visual{Type: VisualCaseStudy, Title: "{{visual_title}}", Body: "{{visual_body}}"},
			Steps: []string{
				"{{step_1}}",
				"{{step_2}}",
				"{{step_3}}",
			},
			CTAs: []CTA{
				{Text: "Get results like these", Action: ActionDemo},
				{Text: "More customer stories", Action: ActionLearn},
			},
		},
	},
	{
		Name:     "competitive-positioning",
		PageType: intent.PageCompetitiveComparison,
		BestFor:  []string{"comparison", "alternatives", "why switch", "differentiation"},
		Skeleton: GeneratedPage{
			Headline: "{{headline}}",
			Subtitle: "{{subtitle}}",
			Insights: []Insight{
				{Text: "{{insight_1}}"},
				{Text: "{{insight_2}}"},
				{Text: "{{insight_3}}"},
			},
			Stats: []Stat{
				{Value: "{{stat_1_value}}", Label: "{{stat_1_label}}"},
				{Value: "{{stat_2_value}}", Label: "{{stat_2_label}}"},
				{Value: "{{stat_3_value}}", Label: "{{stat_3_label}}"},
			},
			Visual: Visual{Type: VisualHighlightBox, Title: "{{visual_title}}", Body: "{{visual_body}}"},
			Steps: []string{
				"{{step_1}}",
				"{{step_2}}",
				"{{step_3}}",
			},
			CTAs: []CTA{
				{Text: "See the difference live", Action: ActionDemo},
				{Text: "Compare plans", Action: ActionLearn},
			},
		},
	},
	{
		Name:     "implementation-path",
		PageType: intent.PageImplementationGuide,
		BestFor:  []string{"onboarding", "rollout", "setup time", "training"},
		Skeleton: GeneratedPage{
			Headline: "{{headline}}",
			Subtitle: "{{subtitle}}",
			Insights: []Insight{
				{Text: "{{insight_1}}"},
				{Text: "{{insight_2}}"},
				{Text: "{{insight_3}}"},
			},
			Stats: []Stat{
				{Value: "{{stat_1_value}}", Label: "{{stat_1_label}}"},
				{Value: "{{stat_2_value}}", Label: "{{stat_2_label}}"},
				{Value: "{{stat_3_value}}", Label: "{{stat_3_label}}"},
			},
			Visual: Visual{Type: VisualExample, Title: "{{visual_title}}", Body: "{{visual_body}}"},
			Steps: []string{
				"{{step_1}}",
				"{{step_2}}",
				"{{step_3}}",
				"{{step_4}}",
			},
			CTAs: []CTA{
				{Text: "Plan your rollout", Action: ActionContact},
				{Text: "Download the guide", Action: ActionDownload},
			},
		},
	},
}
