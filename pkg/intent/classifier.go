package intent

import (
	"strings"
	"unicode"

	"bevgenie-be/pkg/persona"
)

// Intent is the classified purpose of a single chat message.
type Intent string

const (
	PainPointInquiry       Intent = "pain_point_inquiry"
	FeatureQuestion        Intent = "feature_question"
	SuccessStoryInquiry    Intent = "success_story_inquiry"
	CompetitiveInquiry     Intent = "competitive_inquiry"
	ImplementationQuestion Intent = "implementation_question"
	ROIInquiry             Intent = "roi_inquiry"
	GeneralQuestion        Intent = "general_question" // default, never generates a page
)

// PageType selects which landing-page template family the orchestrator uses.
type PageType string

const (
	PagePainPointSolution     PageType = "pain_point_solution"
	PageFeatureShowcase       PageType = "feature_showcase"
	PageSuccessStory          PageType = "success_story"
	PageCompetitiveComparison PageType = "competitive_comparison"
	PageImplementationGuide   PageType = "implementation_guide"
	PageROICalculator         PageType = "roi_calculator"
)

// pageTypeByIntent is the fixed intent-to-page lookup.
var pageTypeByIntent = map[Intent]PageType{
	PainPointInquiry:       PagePainPointSolution,
	FeatureQuestion:        PageFeatureShowcase,
	SuccessStoryInquiry:    PageSuccessStory,
	CompetitiveInquiry:     PageCompetitiveComparison,
	ImplementationQuestion: PageImplementationGuide,
	ROIInquiry:             PageROICalculator,
}

// generationThreshold is the minimum winning score for page generation.
const generationThreshold = 0.3

type category struct {
	intent   Intent
	keywords []string
	weight   float64
}

var categories = []category{
	{
		intent: PainPointInquiry,
		keywords: []string{
			"struggle", "problem", "challenge", "pain", "difficult",
			"frustrat", "can't", "failing", "losing", "stuck",
		},
		weight: 1.2,
	},
	{
		intent: FeatureQuestion,
		keywords: []string{
			"feature", "how does", "what does", "capability", "can it",
			"does it", "functionality", "integrate",
		},
		weight: 1.0,
	},
	{
		intent: SuccessStoryInquiry,
		keywords: []string{
			"case study", "success", "customer", "example", "who uses",
			"results", "testimonial", "proof",
		},
		weight: 1.0,
	},
	{
		intent: CompetitiveInquiry,
		keywords: []string{
			"competitor", "compare", "versus", "vs", "alternative",
			"different from", "better than", "why you",
		},
		weight: 1.1,
	},
	{
		intent: ImplementationQuestion,
		keywords: []string{
			"implement", "onboard", "setup", "set up", "rollout",
			"how long", "training", "migrate",
		},
		weight: 1.0,
	},
	{
		intent: ROIInquiry,
		keywords: []string{
			"roi", "payback", "investment", "return on", "cost",
			"pricing", "worth it", "save money",
		},
		weight: 1.3,
	},
}

// greetings is the closed short-list of low-value exact messages.
var greetings = map[string]struct{}{
	"hi": {}, "hello": {}, "hey": {}, "yo": {},
	"thanks": {}, "thank you": {}, "thx": {},
	"ok": {}, "okay": {}, "yes": {}, "no": {}, "sure": {},
	"cool": {}, "great": {}, "nice": {},
}

// Classification is the outcome of scoring one message.
type Classification struct {
	Intent             Intent   `json:"intent"`
	Confidence         float64  `json:"confidence"` // 0-1
	ShouldGeneratePage bool     `json:"should_generate_page"`
	PageType           PageType `json:"page_type,omitempty"`
}

// Classifier scores messages against the intent taxonomies. It is a pure
// function of its inputs; identical calls return identical results.
type Classifier struct{}

func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify scores the message, adjusts for conversation depth and persona
// focus, and decides whether a page should be generated.
func (c *Classifier) Classify(message string, turnCount int, p *persona.ScoreVector) Classification {
	lowered := strings.ToLower(message)
	multiplier := contextMultiplier(turnCount)

	best := Classification{Intent: GeneralQuestion}
	for _, cat := range categories {
		matched := 0
		for _, kw := range cat.keywords {
			if strings.Contains(lowered, kw) {
				matched++
			}
		}
		if matched == 0 {
			continue
		}

		score := float64(matched) / float64(len(cat.keywords)) * cat.weight
		score *= multiplier
		score *= personaBoost(cat.intent, p)

		if score > best.Confidence {
			best.Confidence = score
			best.Intent = cat.intent
		}
	}

	// Multipliers can push a saturated keyword match past 1; confidence
	// stays on the declared 0-1 scale.
	if best.Confidence > 1 {
		best.Confidence = 1
	}

	if best.Confidence > generationThreshold && best.Intent != GeneralQuestion {
		best.ShouldGeneratePage = true
		best.PageType = pageTypeByIntent[best.Intent]
	}
	return best
}

// contextMultiplier models that early messages are higher-signal and later
// messages get more exploratory.
func contextMultiplier(turnCount int) float64 {
	switch {
	case turnCount == 0:
		return 1.2
	case turnCount <= 2:
		return 0.95
	default:
		return 0.8
	}
}

func personaBoost(i Intent, p *persona.ScoreVector) float64 {
	if p == nil || p.FunctionalRole.Value != persona.RoleSales {
		return 1.0
	}
	switch i {
	case PainPointInquiry:
		return 1.1
	case ROIInquiry:
		return 1.15
	}
	return 1.0
}

// IsQualityInquiry is the pre-filter applied before classification and
// generation: it rejects messages too short or too empty to warrant a
// generation call.
func IsQualityInquiry(message string) bool {
	trimmed := strings.TrimSpace(strings.ToLower(message))
	if trimmed == "" {
		return false
	}
	if _, ok := greetings[strings.Trim(trimmed, ".!?, ")]; ok {
		return false
	}
	if len(strings.Fields(trimmed)) < 3 {
		return false
	}

	alnum := 0
	for _, r := range trimmed {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			alnum++
		}
	}
	return alnum >= 5
}
