package pagegen

import (
	"encoding/json"

	"bevgenie-be/pkg/intent"
)

// VisualType is the closed set of visual-content blocks.
type VisualType string

const (
	VisualCaseStudy    VisualType = "case_study"
	VisualHighlightBox VisualType = "highlight_box"
	VisualExample      VisualType = "example"
)

// CTAAction types a call-to-action button.
type CTAAction string

const (
	ActionDemo     CTAAction = "book_demo"
	ActionContact  CTAAction = "contact_sales"
	ActionLearn    CTAAction = "learn_more"
	ActionDownload CTAAction = "download"
)

// Insight is one insight line. The model sometimes returns insights as raw
// strings instead of {text} records, so unmarshalling accepts both shapes.
type Insight struct {
	Text string `json:"text"`
}

func (i *Insight) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		i.Text = s
		return nil
	}
	var obj struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	i.Text = obj.Text
	return nil
}

type Stat struct {
	Value string `json:"value"` // <=15 chars
	Label string `json:"label"` // <=40 chars
}

type Visual struct {
	Type  VisualType `json:"type"`
	Title string     `json:"title"`
	Body  string     `json:"body"`
}

type CTA struct {
	Text   string    `json:"text"` // <=40 chars
	Action CTAAction `json:"action"`
}

// GeneratedPage is the single-screen landing-page variant produced for one
// chat turn. A page only reaches the caller after passing Validate with zero
// violations.
type GeneratedPage struct {
	PageType intent.PageType `json:"page_type"`
	Headline string          `json:"headline"` // 20-80 chars
	Subtitle string          `json:"subtitle"` // 15-60 chars
	Insights []Insight       `json:"insights"` // 3-5, each 50-250 chars
	Stats    []Stat          `json:"stats"`    // exactly 3
	Visual   Visual          `json:"visual"`
	Steps    []string        `json:"steps"` // 3-5, each 20-100 chars
	CTAs     []CTA           `json:"ctas"`  // 2-3
}
