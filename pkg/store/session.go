package store

import "time"

// TrackedInquiry records one question the visitor asked together with the
// solution angle the generated page answered it with. The presentation
// export is built from these.
type TrackedInquiry struct {
	Question string `json:"question"`
	Intent   string `json:"intent"`
	Solution string `json:"solution"` // headline of the page generated for it
	ROINote  string `json:"roi_note,omitempty"`
	AskedAt  time.Time
}

// Session is the live in-memory state for one widget visitor. The durable
// persona row is the source of truth; this holds request-scoped extras that
// only matter while the session is warm (tracked inquiries, last page type).
type Session struct {
	ID               string           `json:"id"`
	MessageCount     int              `json:"message_count"`
	LastPageType     string           `json:"last_page_type,omitempty"`
	TrackedInquiries []TrackedInquiry `json:"tracked_inquiries,omitempty"`
}

// Track appends an inquiry to the session's history.
func (s *Session) Track(inquiry TrackedInquiry) {
	s.TrackedInquiries = append(s.TrackedInquiries, inquiry)
}
