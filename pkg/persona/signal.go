package persona

// Strength grades how firmly a signal points at its value.
type Strength string

const (
	StrengthWeak   Strength = "weak"
	StrengthMedium Strength = "medium"
	StrengthStrong Strength = "strong"
)

// Source records where a signal was observed.
type Source string

const (
	SourceMessage    Source = "message"
	SourceNavigation Source = "navigation"
)

// strengthWeights scale pain-point contributions in the accumulator.
var strengthWeights = map[Strength]float64{
	StrengthWeak:   0.1,
	StrengthMedium: 0.2,
	StrengthStrong: 0.3,
}

// Signal is a single piece of evidence extracted from one message or
// navigation interaction. Signals are ephemeral: only their effect on the
// score vector and an audit record survive.
type Signal struct {
	Vector     Vector    `json:"vector"`
	PainPoint  PainPoint `json:"pain_point,omitempty"` // set iff Vector == VectorPainPoint
	Value      string    `json:"value,omitempty"`
	Strength   Strength  `json:"strength"`
	Confidence float64   `json:"confidence"` // 0-1, independent of Strength
	Evidence   string    `json:"evidence"`
	Source     Source    `json:"source"`
}

// Label renders a short human-readable form used in API responses and the
// audit trail.
func (s Signal) Label() string {
	if s.Vector == VectorPainPoint {
		return string(s.Vector) + ":" + string(s.PainPoint)
	}
	return string(s.Vector) + ":" + s.Value
}
