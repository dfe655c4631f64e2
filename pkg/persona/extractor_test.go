package persona

import (
	"testing"
)

func findSignal(signals []Signal, vec Vector, value string) *Signal {
	for i := range signals {
		if signals[i].Vector == vec && signals[i].Value == value {
			return &signals[i]
		}
	}
	return nil
}

func findPainSignal(signals []Signal, pp PainPoint) *Signal {
	for i := range signals {
		if signals[i].Vector == VectorPainPoint && signals[i].PainPoint == pp {
			return &signals[i]
		}
	}
	return nil
}

func TestExtractRoleAndPainPoints(t *testing.T) {
	e := NewKeywordExtractor()

	signals := e.Extract("We struggle to prove ROI on our field sales team", nil)

	role := findSignal(signals, VectorFunctionalRole, RoleSales)
	if role == nil {
		t.Fatal("expected a sales functional_role signal")
	}
	if role.Strength != StrengthStrong {
		t.Errorf("role strength = %s, want strong (multiple keyword hits)", role.Strength)
	}

	if findPainSignal(signals, PainExecutionBlindSpot) == nil {
		t.Error("expected execution_blind_spot pain signal")
	}
	if findPainSignal(signals, PainSalesEffectiveness) == nil {
		t.Error("expected sales_effectiveness pain signal")
	}
}

func TestExtractOrgAndProduct(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		vector Vector
		value  string
	}{
		{
			name:   "supplier org type",
			text:   "We're a craft brewery looking for distribution insights",
			vector: VectorProductFocus,
			value:  ProductBeer,
		},
		{
			name:   "wine product focus",
			text:   "Our winery wants better retail placement",
			vector: VectorProductFocus,
			value:  ProductWine,
		},
		{
			name:   "retailer org type",
			text:   "I manage a liquor store chain and need assortment help",
			vector: VectorOrgType,
			value:  OrgTypeRetailer,
		},
	}

	e := NewKeywordExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signals := e.Extract(tt.text, nil)
			if findSignal(signals, tt.vector, tt.value) == nil {
				t.Errorf("Extract(%q) missing %s=%s signal, got %v", tt.text, tt.vector, tt.value, signals)
			}
		})
	}
}

func TestExtractEmptyMessage(t *testing.T) {
	e := NewKeywordExtractor()

	for _, text := range []string{"", "   ", "\n\t"} {
		if got := e.Extract(text, nil); got != nil {
			t.Errorf("Extract(%q) = %v, want nil", text, got)
		}
	}
}

func TestExtractClickContext(t *testing.T) {
	e := NewKeywordExtractor()

	signals := e.Extract("tell me more", &ClickContext{
		Label:   "ROI Calculator",
		Section: "pricing",
	})

	var navSourced int
	for _, s := range signals {
		if s.Source == SourceNavigation {
			navSourced++
		}
	}
	if navSourced == 0 {
		t.Error("expected at least one navigation-sourced signal from the ROI Calculator label")
	}
}

func TestExtractDeterministic(t *testing.T) {
	e := NewKeywordExtractor()
	text := "How do suppliers measure field execution for spirits brands?"

	first := e.Extract(text, nil)
	for i := 0; i < 10; i++ {
		again := e.Extract(text, nil)
		if len(again) != len(first) {
			t.Fatalf("run %d: %d signals, want %d", i, len(again), len(first))
		}
		for j := range again {
			if again[j] != first[j] {
				t.Fatalf("run %d: signal %d = %+v, want %+v", i, j, again[j], first[j])
			}
		}
	}
}
