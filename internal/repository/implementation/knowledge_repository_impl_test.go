package implementation

import (
	"math"
	"testing"
)

func TestBoostScore(t *testing.T) {
	tests := []struct {
		name        string
		similarity  float64
		content     string
		tags        []string
		queryWords  []string
		personaTags []string
		want        float64
	}{
		{
			name:       "no boosts",
			similarity: 0.72,
			content:    "Depletion reporting for distributors",
			queryWords: []string{"roi"},
			want:       0.72,
		},
		{
			name:       "lexical boost applies once",
			similarity: 0.70,
			content:    "Survey tooling for field survey programs",
			queryWords: []string{"survey", "tooling"},
			want:       0.70 + lexicalBoost,
		},
		{
			name:       "short query words never match",
			similarity: 0.70,
			content:    "The rep logs a visit",
			queryWords: []string{"rep", "a"},
			want:       0.70,
		},
		{
			name:        "tag boost per matching tag",
			similarity:  0.60,
			content:     "Case study",
			tags:        []string{"sales", "wine"},
			personaTags: []string{"Sales", "wine"},
			want:        0.60 + 2*tagBoost,
		},
		{
			name:        "boosted score clamps at one",
			similarity:  0.95,
			content:     "Display compliance results for sales teams",
			tags:        []string{"sales", "wine"},
			queryWords:  []string{"compliance"},
			personaTags: []string{"sales", "wine"},
			want:        1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := boostScore(tt.similarity, tt.content, tt.tags, tt.queryWords, tt.personaTags)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("boostScore = %f, want %f", got, tt.want)
			}
		})
	}
}
