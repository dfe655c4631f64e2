package pagegen

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"strings"
	"sync"
	"testing"

	"bevgenie-be/pkg/intent"
	"bevgenie-be/pkg/knowledge"
	"bevgenie-be/pkg/llm"
)

type scriptedCall struct {
	response string
	err      error
}

// scriptedProvider returns canned responses in call order. Calls past the end
// of the script error out so a test fails loudly on unexpected extra calls.
type scriptedProvider struct {
	mu      sync.Mutex
	script  []scriptedCall
	calls   int
	prompts []string
}

func (p *scriptedProvider) Generate(_ context.Context, prompt string, _ ...llm.Option) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.prompts = append(p.prompts, prompt)
	if p.calls >= len(p.script) {
		p.calls++
		return "", errors.New("unscripted provider call")
	}
	call := p.script[p.calls]
	p.calls++
	return call.response, call.err
}

func (p *scriptedProvider) Chat(_ context.Context, _ []llm.Message, _ ...llm.Option) (string, error) {
	return "", errors.New("chat not scripted")
}

type stubSearcher struct {
	snippets []knowledge.Snippet
	err      error
}

func (s *stubSearcher) Search(_ context.Context, _ string, _ []string, _ int) ([]knowledge.Snippet, error) {
	return s.snippets, s.err
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(raw)
}

// featureFillValues satisfies every slot of the feature-walkthrough template
// within the schema bounds.
func featureFillValues() map[string]string {
	return map[string]string{
		"headline":     "See every capability working on live retail data",
		"subtitle":     "A guided tour of the platform",
		"insight_1":    "Route plans, surveys and shelf photos live in one mobile workflow for every rep.",
		"insight_2":    "Depletion data joins retail conditions so managers see cause and effect per account.",
		"insight_3":    "Role-based dashboards give sales and marketing the same numbers without exports.",
		"stat_1_value": "40+",
		"stat_1_label": "Distributor integrations",
		"stat_2_value": "5 min",
		"stat_2_label": "To build a field survey",
		"stat_3_value": "24/7",
		"stat_3_label": "Sync from retail partners",
		"visual_title": "One workflow, store to dashboard",
		"visual_body":  "A rep logs conditions in-store and the account view updates before they leave the parking lot.",
		"step_1":       "Connect depletion and POS data sources",
		"step_2":       "Build route plans for the field team",
		"step_3":       "Track execution from the live dashboard",
	}
}

func TestGenerateFastPath(t *testing.T) {
	provider := &scriptedProvider{script: []scriptedCall{
		{response: mustJSON(t, featureFillValues())},
	}}
	o := NewOrchestrator(provider, &stubSearcher{}, testLogger(), "")

	result := o.Generate(context.Background(), &Request{
		Message:  "What features does the platform have for field teams?",
		PageType: intent.PageFeatureShowcase,
	})

	if !result.Success {
		t.Fatalf("Success = false, violations %v, err %v", result.Violations, result.Err)
	}
	if result.Mode != ModeTemplateFill {
		t.Errorf("Mode = %s, want template_fill", result.Mode)
	}
	if result.Attempts != 0 {
		t.Errorf("Attempts = %d, want 0 on the fast path", result.Attempts)
	}
	if result.Page.PageType != intent.PageFeatureShowcase {
		t.Errorf("Page.PageType = %s, want feature_showcase", result.Page.PageType)
	}
	if result.Page.Headline != "See every capability working on live retail data" {
		t.Errorf("Headline = %q, fill value not applied", result.Page.Headline)
	}
	if provider.calls != 1 {
		t.Errorf("provider calls = %d, want 1", provider.calls)
	}
}

func TestGenerateCacheHit(t *testing.T) {
	provider := &scriptedProvider{script: []scriptedCall{
		{response: mustJSON(t, featureFillValues())},
	}}
	o := NewOrchestrator(provider, &stubSearcher{}, testLogger(), "")

	req := &Request{
		Message:  "How does the mobile app work?",
		PageType: intent.PageFeatureShowcase,
	}
	first := o.Generate(context.Background(), req)
	if !first.Success {
		t.Fatalf("first generation failed: %v", first.Violations)
	}

	// Same normalized message, different surface form.
	second := o.Generate(context.Background(), &Request{
		Message:  "  How   does the MOBILE app work? ",
		PageType: intent.PageFeatureShowcase,
	})

	if !second.Success {
		t.Fatal("cached generation reported failure")
	}
	if provider.calls != 1 {
		t.Errorf("provider calls = %d, want 1 (second request served from cache)", provider.calls)
	}
	if second.Page.Headline != first.Page.Headline {
		t.Errorf("cached page headline = %q, want %q", second.Page.Headline, first.Page.Headline)
	}
	if second.Mode != ModeTemplateFill {
		t.Errorf("cached Mode = %s, want template_fill", second.Mode)
	}
}

func TestGenerateCacheHitKeepsSynthesisMode(t *testing.T) {
	provider := &scriptedProvider{script: []scriptedCall{
		{err: errors.New("fill call timed out")},
		{response: mustJSON(t, validPage())},
	}}
	o := NewOrchestrator(provider, &stubSearcher{}, testLogger(), "")

	req := &Request{
		Message:  "Show me how reporting replaces our spreadsheets",
		PageType: intent.PageFeatureShowcase,
	}
	first := o.Generate(context.Background(), req)
	if !first.Success || first.Mode != ModeFullSynthesis {
		t.Fatalf("first generation Mode = %s (success %v), want full_synthesis", first.Mode, first.Success)
	}

	second := o.Generate(context.Background(), req)
	if !second.Success {
		t.Fatal("cached generation reported failure")
	}
	if second.Mode != ModeFullSynthesis {
		t.Errorf("cached Mode = %s, want the producing mode full_synthesis", second.Mode)
	}
	if provider.calls != 2 {
		t.Errorf("provider calls = %d, want 2 (second request served from cache)", provider.calls)
	}
}

func TestGenerateFallsBackToSynthesis(t *testing.T) {
	// Pain pages have two templates, so the first call is the selection.
	provider := &scriptedProvider{script: []scriptedCall{
		{response: `{"template": "pain-execution-visibility"}`},
		{err: errors.New("fill call timed out")},
		{response: "Here is the page:\n```json\n" + mustJSON(t, validPage()) + "\n```"},
	}}
	o := NewOrchestrator(provider, &stubSearcher{}, testLogger(), "")

	result := o.Generate(context.Background(), &Request{
		Message:  "We can't see what happens in stores after launch",
		PageType: intent.PagePainPointSolution,
	})

	if !result.Success {
		t.Fatalf("Success = false, violations %v, err %v", result.Violations, result.Err)
	}
	if result.Mode != ModeFullSynthesis {
		t.Errorf("Mode = %s, want full_synthesis", result.Mode)
	}
	if result.Attempts != 1 {
		t.Errorf("Attempts = %d, want 1", result.Attempts)
	}
	if result.Page.PageType != intent.PagePainPointSolution {
		t.Errorf("Page.PageType = %s, want pain_point_solution", result.Page.PageType)
	}
}

func TestGenerateRetryFeedback(t *testing.T) {
	provider := &scriptedProvider{script: []scriptedCall{
		{response: `{"template": "pain-execution-visibility"}`},
		{err: errors.New("fill call failed")},
		{response: `{"headline":"broken"}`},
		{response: mustJSON(t, validPage())},
	}}
	o := NewOrchestrator(provider, &stubSearcher{}, testLogger(), "")

	result := o.Generate(context.Background(), &Request{
		Message:  "Our field reporting is all manual spreadsheets",
		PageType: intent.PagePainPointSolution,
	})

	if !result.Success {
		t.Fatalf("Success = false after corrective retry, violations %v", result.Violations)
	}
	if result.Attempts != 2 {
		t.Errorf("Attempts = %d, want 2", result.Attempts)
	}
	if len(result.Violations) != 0 {
		t.Errorf("Violations = %v, want cleared on success", result.Violations)
	}

	// The retry prompt must carry the prior attempt's violations.
	retryPrompt := provider.prompts[len(provider.prompts)-1]
	if !strings.Contains(retryPrompt, "previous_attempt_violations") {
		t.Error("retry prompt missing violation feedback section")
	}
	if !strings.Contains(retryPrompt, "headline must be 20-80 chars") {
		t.Error("retry prompt missing the specific headline violation")
	}
}

func TestGenerateExhaustsRetries(t *testing.T) {
	invalid := scriptedCall{response: `{"headline":"broken"}`}
	provider := &scriptedProvider{script: []scriptedCall{
		{response: `{"template": "pain-execution-visibility"}`},
		{err: errors.New("fill call failed")},
		invalid, invalid, invalid,
	}}
	o := NewOrchestrator(provider, &stubSearcher{}, testLogger(), "")

	result := o.Generate(context.Background(), &Request{
		Message:  "Why do we keep losing shelf space to competitors?",
		PageType: intent.PagePainPointSolution,
	})

	if result.Success {
		t.Fatal("Success = true after exhausting retries")
	}
	if result.Mode != ModeFailed {
		t.Errorf("Mode = %s, want failed", result.Mode)
	}
	if result.Attempts != maxRetries+1 {
		t.Errorf("Attempts = %d, want %d", result.Attempts, maxRetries+1)
	}
	if len(result.Violations) == 0 {
		t.Error("Violations empty, want the final attempt's rule failures")
	}
	if result.Page != nil {
		t.Error("Page must be nil on failure")
	}
}

func TestGenerateTemplateSelection(t *testing.T) {
	values := featureFillValues()
	provider := &scriptedProvider{script: []scriptedCall{
		{response: `{"template": "roi-team-productivity"}`},
		{response: mustJSON(t, values)},
	}}
	o := NewOrchestrator(provider, &stubSearcher{}, testLogger(), "")

	result := o.Generate(context.Background(), &Request{
		Message:  "How much rep time would this actually save us?",
		PageType: intent.PageROICalculator,
	})

	if !result.Success {
		t.Fatalf("Success = false, violations %v, err %v", result.Violations, result.Err)
	}
	// The chosen template carries a fixed productivity stat.
	if result.Page.Stats[1].Value != "8+ hrs" {
		t.Errorf("Stats[1].Value = %q, want the selected template's fixed stat", result.Page.Stats[1].Value)
	}
}

func TestGenerateSearchFailureDegrades(t *testing.T) {
	provider := &scriptedProvider{script: []scriptedCall{
		{response: mustJSON(t, featureFillValues())},
	}}
	searcher := &stubSearcher{err: errors.New("vector store unreachable")}
	o := NewOrchestrator(provider, searcher, testLogger(), "")

	result := o.Generate(context.Background(), &Request{
		Message:  "Which systems does the platform integrate with?",
		PageType: intent.PageFeatureShowcase,
	})

	if !result.Success {
		t.Fatalf("retrieval failure must not fail generation, got violations %v", result.Violations)
	}
	if strings.Contains(provider.prompts[0], "<knowledge>") {
		t.Error("fill prompt contains a knowledge section despite failed retrieval")
	}
}

func TestGenerateIncludesKnowledge(t *testing.T) {
	provider := &scriptedProvider{script: []scriptedCall{
		{response: mustJSON(t, featureFillValues())},
	}}
	searcher := &stubSearcher{snippets: []knowledge.Snippet{
		{Content: "Regional supplier lifted display compliance 37% in one quarter.", SourceType: "case_study", Similarity: 0.9},
	}}
	o := NewOrchestrator(provider, searcher, testLogger(), "")

	result := o.Generate(context.Background(), &Request{
		Message:  "What does onboarding and the integration setup look like?",
		PageType: intent.PageFeatureShowcase,
	})

	if !result.Success {
		t.Fatalf("Success = false, violations %v", result.Violations)
	}
	if !strings.Contains(provider.prompts[0], "display compliance 37%") {
		t.Error("fill prompt missing retrieved knowledge snippet")
	}
}

func TestKeywordSelect(t *testing.T) {
	candidates := TemplatesFor(intent.PageROICalculator)
	if len(candidates) < 2 {
		t.Fatal("need at least two roi templates for this test")
	}

	got := keywordSelect("what's the payback on this investment", candidates)
	if got.Name != "roi-payback-focus" {
		t.Errorf("keywordSelect = %s, want roi-payback-focus", got.Name)
	}

	got = keywordSelect("how much rep time savings for the team", candidates)
	if got.Name != "roi-team-productivity" {
		t.Errorf("keywordSelect = %s, want roi-team-productivity", got.Name)
	}

	// No overlap at all falls back to the first candidate.
	got = keywordSelect("completely unrelated message", candidates)
	if got != candidates[0] {
		t.Errorf("keywordSelect fallback = %s, want first candidate", got.Name)
	}
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{`Sure! Here you go: {"a":1} hope that helps`, `{"a":1}`},
		{"no json here", ""},
		{"}{", ""},
	}
	for _, tt := range tests {
		if got := extractJSON(tt.in); got != tt.want {
			t.Errorf("extractJSON(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
