package persona

// Accumulator merges extracted signals into a session's score vector.
//
// Confidence is sticky: there is no decay, values only move up under
// additive signals. Resetting happens only through session erasure.
type Accumulator struct{}

func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// vectorGain converts the average signal confidence (0-1) into a detection
// vector confidence increment on the 0-100 scale.
const vectorGain = 15.0

// Apply merges signals into current and returns the updated vector. The
// input vector is not mutated. TotalInteractions advances by exactly one per
// call regardless of signal count; with no signals everything else is left
// untouched.
func (a *Accumulator) Apply(current *ScoreVector, signals []Signal) *ScoreVector {
	next := current.Clone()
	next.TotalInteractions++

	a.applyDetectionVectors(next, signals)
	a.applyLegacyUserType(next, signals)
	a.applyPainPoints(next, signals)

	next.OverallConfidence = meanPainConfidence(next)
	return next
}

func (a *Accumulator) applyDetectionVectors(v *ScoreVector, signals []Signal) {
	for _, vec := range []Vector{VectorFunctionalRole, VectorOrgType, VectorOrgSize, VectorProductFocus} {
		grouped := make(map[string][]Signal)
		for _, s := range signals {
			if s.Vector == vec {
				grouped[s.Value] = append(grouped[s.Value], s)
			}
		}
		if len(grouped) == 0 {
			continue
		}

		// Adopt the value with the highest summed confidence.
		var bestValue string
		var bestSum float64
		for value, group := range grouped {
			var sum float64
			for _, s := range group {
				sum += s.Confidence
			}
			if sum > bestSum || (sum == bestSum && value < bestValue) {
				bestValue, bestSum = value, sum
			}
		}
		// Zero-confidence signals carry no evidence; adopting them would
		// blank the value and divide by an empty group.
		if bestSum == 0 {
			continue
		}

		dv := v.Detection(vec)
		dv.Value = bestValue
		avg := bestSum / float64(len(grouped[bestValue]))
		dv.Confidence = clamp100(dv.Confidence + avg*vectorGain)
		dv.History = pushHistory(dv.History, bestValue)
	}
}

// applyLegacyUserType maintains the deprecated supplier/distributor float
// scores. OrgType is canonical; these are written here and read nowhere in
// the decision path.
func (a *Accumulator) applyLegacyUserType(v *ScoreVector, signals []Signal) {
	for _, s := range signals {
		if s.Vector != VectorLegacyUserType {
			continue
		}
		delta := strengthWeights[s.Strength] * s.Confidence
		switch s.Value {
		case LegacySupplier:
			v.SupplierScore = clamp01(v.SupplierScore + delta)
		case LegacyDistributor:
			v.DistributorScore = clamp01(v.DistributorScore + delta)
		}
	}
}

func (a *Accumulator) applyPainPoints(v *ScoreVector, signals []Signal) {
	for _, s := range signals {
		if s.Vector != VectorPainPoint {
			continue
		}
		weight := strengthWeights[s.Strength] * s.Confidence
		prev, known := v.PainPointConfidence[s.PainPoint]
		v.PainPointConfidence[s.PainPoint] = clamp01(prev + weight)
		if !known {
			v.PainPointsDetected = append(v.PainPointsDetected, s.PainPoint)
		}
	}
}

func meanPainConfidence(v *ScoreVector) float64 {
	if len(v.PainPointsDetected) == 0 {
		return 0
	}
	var sum float64
	for _, p := range v.PainPointsDetected {
		sum += v.PainPointConfidence[p]
	}
	return sum / float64(len(v.PainPointsDetected))
}

func pushHistory(history []string, value string) []string {
	history = append(history, value)
	if len(history) > historyCap {
		history = history[len(history)-historyCap:]
	}
	return history
}
