package dto

// SlideDTO is one slide of the exported follow-up deck.
type SlideDTO struct {
	Title    string   `json:"title"`
	Question string   `json:"question"`
	Solution string   `json:"solution"`
	ROINote  string   `json:"roi_note,omitempty"`
	Bullets  []string `json:"bullets,omitempty"`
}

type GeneratePresentationResponse struct {
	SessionId  string     `json:"session_id"`
	Title      string     `json:"title"`
	Slides     []SlideDTO `json:"slides"`
	SlideCount int        `json:"slide_count"`
}
