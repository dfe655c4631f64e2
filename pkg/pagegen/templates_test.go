package pagegen

import (
	"testing"

	"bevgenie-be/pkg/intent"
)

func findTemplate(t *testing.T, name string) *Template {
	t.Helper()
	for _, tmpl := range templates {
		if tmpl.Name == name {
			return tmpl
		}
	}
	t.Fatalf("template %q not found", name)
	return nil
}

func TestTemplatesForCoversEveryPageType(t *testing.T) {
	pageTypes := []intent.PageType{
		intent.PagePainPointSolution,
		intent.PageFeatureShowcase,
		intent.PageSuccessStory,
		intent.PageCompetitiveComparison,
		intent.PageImplementationGuide,
		intent.PageROICalculator,
	}

	for _, pt := range pageTypes {
		if got := TemplatesFor(pt); len(got) == 0 {
			t.Errorf("no templates authored for page type %s", pt)
		}
	}
}

func TestTemplateSlots(t *testing.T) {
	tmpl := findTemplate(t, "roi-payback-focus")

	slots := tmpl.Slots()
	want := []string{
		"headline", "subtitle",
		"insight_1", "insight_2", "insight_3",
		"stat_1_value", "stat_1_label",
		"stat_2_value", "stat_2_label",
		"stat_3_value", "stat_3_label",
		"visual_title", "visual_body",
		"step_1", "step_2", "step_3",
	}

	if len(slots) != len(want) {
		t.Fatalf("Slots() = %v, want %v", slots, want)
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("Slots()[%d] = %q, want %q", i, slots[i], want[i])
		}
	}
}

func TestTemplateFillSubstitutesAndDefaults(t *testing.T) {
	tmpl := findTemplate(t, "roi-payback-focus")

	page := tmpl.Fill(map[string]string{
		"headline":     "  See payback inside the first two quarters  ",
		"stat_1_value": "6 mo",
		"stat_1_label": "Typical payback period",
	})

	if page.PageType != intent.PageROICalculator {
		t.Errorf("PageType = %s, want roi_calculator", page.PageType)
	}
	if page.Headline != "See payback inside the first two quarters" {
		t.Errorf("Headline = %q, want trimmed fill value", page.Headline)
	}
	if page.Stats[0].Value != "6 mo" || page.Stats[0].Label != "Typical payback period" {
		t.Errorf("Stats[0] = %+v, not filled", page.Stats[0])
	}

	// Unprovided slots surface the sentinel instead of leaking slot syntax.
	if page.Subtitle != UnfilledSentinel {
		t.Errorf("Subtitle = %q, want %q", page.Subtitle, UnfilledSentinel)
	}
	if page.Insights[0].Text != UnfilledSentinel {
		t.Errorf("Insights[0] = %q, want %q", page.Insights[0].Text, UnfilledSentinel)
	}

	// Fixed skeleton copy survives untouched.
	if page.CTAs[0].Text != "See your payback period" || page.CTAs[0].Action != ActionDemo {
		t.Errorf("CTAs[0] = %+v, fixed copy was altered", page.CTAs[0])
	}
}

func TestTemplateFillDoesNotMutateSkeleton(t *testing.T) {
	tmpl := findTemplate(t, "pain-operational-load")

	_ = tmpl.Fill(map[string]string{"headline": "Replace manual field reporting for good"})

	if tmpl.Skeleton.Headline != "{{headline}}" {
		t.Errorf("skeleton headline mutated to %q", tmpl.Skeleton.Headline)
	}
	if tmpl.Skeleton.Stats[2].Value != "1 place" {
		t.Errorf("skeleton fixed stat mutated to %q", tmpl.Skeleton.Stats[2].Value)
	}
}

func TestTemplateFillBlankValueFallsBack(t *testing.T) {
	tmpl := findTemplate(t, "customer-proof")

	page := tmpl.Fill(map[string]string{"subtitle": "   "})

	if page.Subtitle != UnfilledSentinel {
		t.Errorf("Subtitle = %q, want sentinel for whitespace-only value", page.Subtitle)
	}
}
