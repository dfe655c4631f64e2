package pagegen

import "bevgenie-be/pkg/intent"

// fallbackTexts are static per-page-type sentences for callers that need to
// show something when generation fails entirely. Plain text, never validated
// against the page schema.
var fallbackTexts = map[intent.PageType]string{
	intent.PageROICalculator:         "Most BevGenie customers see payback within their first two quarters. Book a demo and we'll walk through the numbers for your team.",
	intent.PagePainPointSolution:     "BevGenie gives beverage teams live visibility into what's actually happening at retail, so problems surface before they cost you placements.",
	intent.PageFeatureShowcase:       "BevGenie combines field data capture, account insights, and automated reporting in one platform built for beverage sales teams.",
	intent.PageSuccessStory:          "Beverage suppliers and distributors use BevGenie to win more placements and keep them. Ask us for a customer story that matches your situation.",
	intent.PageCompetitiveComparison: "BevGenie is built specifically for the three-tier beverage world, not adapted from generic CRM tooling. Ask us how that difference shows up day to day.",
	intent.PageImplementationGuide:   "Most teams are live on BevGenie within two weeks, with training built around your existing field routine.",
}

// FallbackText returns the canned sentence for a page type. It bypasses the
// generation service entirely.
func FallbackText(pageType intent.PageType) string {
	if text, ok := fallbackTexts[pageType]; ok {
		return text
	}
	return "BevGenie helps beverage teams understand and improve their retail execution. Book a demo to see it on your own accounts."
}
