package persona

import (
	"math"
	"testing"
)

func TestApplyNoSignals(t *testing.T) {
	a := NewAccumulator()
	current := NewScoreVector()

	next := a.Apply(current, nil)

	if next.TotalInteractions != 1 {
		t.Errorf("TotalInteractions = %d, want 1", next.TotalInteractions)
	}
	if current.TotalInteractions != 0 {
		t.Error("input vector was mutated")
	}
	if next.OverallConfidence != 0 {
		t.Errorf("OverallConfidence = %f, want 0 with no pain points", next.OverallConfidence)
	}
	if next.FunctionalRole.Value != "" || next.OrgType.Value != "" {
		t.Error("detection vectors moved without signals")
	}
}

func TestApplyDetectionVector(t *testing.T) {
	a := NewAccumulator()

	sig := Signal{
		Vector:     VectorFunctionalRole,
		Value:      RoleSales,
		Strength:   StrengthStrong,
		Confidence: 0.6,
		Source:     SourceMessage,
	}

	next := a.Apply(NewScoreVector(), []Signal{sig})

	if next.FunctionalRole.Value != RoleSales {
		t.Fatalf("FunctionalRole.Value = %q, want %q", next.FunctionalRole.Value, RoleSales)
	}
	want := 0.6 * vectorGain
	if math.Abs(next.FunctionalRole.Confidence-want) > 1e-9 {
		t.Errorf("FunctionalRole.Confidence = %f, want %f", next.FunctionalRole.Confidence, want)
	}
	if len(next.FunctionalRole.History) != 1 || next.FunctionalRole.History[0] != RoleSales {
		t.Errorf("History = %v, want [sales]", next.FunctionalRole.History)
	}
}

func TestApplyZeroConfidenceSignals(t *testing.T) {
	a := NewAccumulator()

	current := NewScoreVector()
	current.FunctionalRole.Value = RoleMarketing
	current.FunctionalRole.Confidence = 40

	next := a.Apply(current, []Signal{
		{Vector: VectorFunctionalRole, Value: RoleSales, Strength: StrengthWeak, Confidence: 0},
	})

	if next.FunctionalRole.Value != RoleMarketing {
		t.Errorf("FunctionalRole.Value = %q, zero-confidence signal displaced the current value", next.FunctionalRole.Value)
	}
	if math.IsNaN(next.FunctionalRole.Confidence) {
		t.Fatal("FunctionalRole.Confidence is NaN")
	}
	if next.FunctionalRole.Confidence != 40 {
		t.Errorf("FunctionalRole.Confidence = %f, want unchanged 40", next.FunctionalRole.Confidence)
	}
	if len(next.FunctionalRole.History) != 0 {
		t.Errorf("History = %v, want no adoption recorded", next.FunctionalRole.History)
	}
}

func TestApplyConfidenceClampsAt100(t *testing.T) {
	a := NewAccumulator()
	sig := Signal{Vector: VectorOrgType, Value: OrgTypeSupplier, Strength: StrengthStrong, Confidence: 0.9}

	v := NewScoreVector()
	for i := 0; i < 20; i++ {
		v = a.Apply(v, []Signal{sig})
	}

	if v.OrgType.Confidence != 100 {
		t.Errorf("OrgType.Confidence = %f, want clamped at 100", v.OrgType.Confidence)
	}
	if v.TotalInteractions != 20 {
		t.Errorf("TotalInteractions = %d, want 20", v.TotalInteractions)
	}
}

func TestApplyHistoryBounded(t *testing.T) {
	a := NewAccumulator()
	values := []string{ProductBeer, ProductWine, ProductSpirits, ProductBeer, ProductWine, ProductSpirits, ProductBeer}

	v := NewScoreVector()
	for _, val := range values {
		v = a.Apply(v, []Signal{{Vector: VectorProductFocus, Value: val, Strength: StrengthMedium, Confidence: 0.3}})
	}

	if len(v.ProductFocus.History) != historyCap {
		t.Fatalf("history length = %d, want %d", len(v.ProductFocus.History), historyCap)
	}
	// Oldest entries drop; the tail of the input sequence survives in order.
	wantTail := values[len(values)-historyCap:]
	for i, val := range wantTail {
		if v.ProductFocus.History[i] != val {
			t.Errorf("History[%d] = %q, want %q", i, v.ProductFocus.History[i], val)
		}
	}
}

func TestApplyCompetingValues(t *testing.T) {
	a := NewAccumulator()

	// Two org-type candidates in one turn; the larger summed confidence wins.
	signals := []Signal{
		{Vector: VectorOrgType, Value: OrgTypeSupplier, Strength: StrengthMedium, Confidence: 0.3},
		{Vector: VectorOrgType, Value: OrgTypeRetailer, Strength: StrengthStrong, Confidence: 0.45},
	}

	next := a.Apply(NewScoreVector(), signals)
	if next.OrgType.Value != OrgTypeRetailer {
		t.Errorf("OrgType.Value = %q, want retailer", next.OrgType.Value)
	}
}

func TestApplyPainPoints(t *testing.T) {
	a := NewAccumulator()
	sig := Signal{
		Vector:     VectorPainPoint,
		PainPoint:  PainExecutionBlindSpot,
		Strength:   StrengthStrong,
		Confidence: 0.8,
	}

	next := a.Apply(NewScoreVector(), []Signal{sig})

	want := strengthWeights[StrengthStrong] * 0.8
	got, ok := next.PainPointConfidence[PainExecutionBlindSpot]
	if !ok {
		t.Fatal("pain point not recorded")
	}
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("pain confidence = %f, want %f", got, want)
	}
	if len(next.PainPointsDetected) != 1 || next.PainPointsDetected[0] != PainExecutionBlindSpot {
		t.Errorf("PainPointsDetected = %v, want [execution_blind_spot]", next.PainPointsDetected)
	}

	// A repeat touch raises the confidence without duplicating membership.
	again := a.Apply(next, []Signal{sig})
	if len(again.PainPointsDetected) != 1 {
		t.Errorf("PainPointsDetected grew to %v on repeat signal", again.PainPointsDetected)
	}
	if again.PainPointConfidence[PainExecutionBlindSpot] <= got {
		t.Error("pain confidence did not increase on repeat signal")
	}
}

func TestApplyPainConfidenceClampsAt1(t *testing.T) {
	a := NewAccumulator()
	sig := Signal{Vector: VectorPainPoint, PainPoint: PainSalesEffectiveness, Strength: StrengthStrong, Confidence: 1.0}

	v := NewScoreVector()
	for i := 0; i < 10; i++ {
		v = a.Apply(v, []Signal{sig})
	}

	if got := v.PainPointConfidence[PainSalesEffectiveness]; got != 1 {
		t.Errorf("pain confidence = %f, want clamped at 1", got)
	}
	if v.OverallConfidence != 1 {
		t.Errorf("OverallConfidence = %f, want 1 with single saturated pain", v.OverallConfidence)
	}
}

func TestApplyLegacyUserType(t *testing.T) {
	a := NewAccumulator()

	next := a.Apply(NewScoreVector(), []Signal{
		{Vector: VectorLegacyUserType, Value: LegacySupplier, Strength: StrengthMedium, Confidence: 0.5},
	})

	want := strengthWeights[StrengthMedium] * 0.5
	if math.Abs(next.SupplierScore-want) > 1e-9 {
		t.Errorf("SupplierScore = %f, want %f", next.SupplierScore, want)
	}
	if next.DistributorScore != 0 {
		t.Errorf("DistributorScore = %f, want 0", next.DistributorScore)
	}
	// Legacy signals never touch the canonical org-type dimension.
	if next.OrgType.Value != "" {
		t.Errorf("OrgType.Value = %q, want empty", next.OrgType.Value)
	}
}

func TestApplyDoesNotAliasInput(t *testing.T) {
	a := NewAccumulator()
	base := a.Apply(NewScoreVector(), []Signal{
		{Vector: VectorProductFocus, Value: ProductWine, Strength: StrengthMedium, Confidence: 0.4},
		{Vector: VectorPainPoint, PainPoint: PainMarketAssessment, Strength: StrengthMedium, Confidence: 0.7},
	})

	next := a.Apply(base, []Signal{
		{Vector: VectorProductFocus, Value: ProductBeer, Strength: StrengthMedium, Confidence: 0.4},
		{Vector: VectorPainPoint, PainPoint: PainRegulatoryCompliance, Strength: StrengthMedium, Confidence: 0.7},
	})

	if len(base.ProductFocus.History) != 1 {
		t.Errorf("base history = %v, mutated by second Apply", base.ProductFocus.History)
	}
	if len(base.PainPointsDetected) != 1 {
		t.Errorf("base pain points = %v, mutated by second Apply", base.PainPointsDetected)
	}
	if len(next.PainPointsDetected) != 2 {
		t.Errorf("next pain points = %v, want two entries", next.PainPointsDetected)
	}
}
