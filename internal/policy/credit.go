package policy

// Tier is the discrete risk class derived from a credit score.
type Tier string

const (
	TierA Tier = "A"
	TierB Tier = "B"
	TierC Tier = "C"
	TierD Tier = "D"
)

const (
	ScoreMin     = 0
	ScoreMax     = 1000
	InitialScore = 500

	// Score deltas applied on repayment/default events.
	DeltaOnTime  = 50
	DeltaLate    = -30
	DeltaDefault = -150
)

// Denomination is the ledger's smallest unit per whole token.
const Denomination uint64 = 1_000_000_000

// AdjustScore applies delta and clamps the result to [ScoreMin, ScoreMax].
func AdjustScore(score, delta int) int {
	s := score + delta
	if s < ScoreMin {
		return ScoreMin
	}
	if s > ScoreMax {
		return ScoreMax
	}
	return s
}

// TierOf maps a credit score to its tier. Boundaries are inclusive on the
// lower edge: 800 is A, 600 is B, 400 is C.
func TierOf(score int) Tier {
	switch {
	case score >= 800:
		return TierA
	case score >= 600:
		return TierB
	case score >= 400:
		return TierC
	default:
		return TierD
	}
}

// MaxBorrow is the hard principal ceiling per tier, in base units.
// Checked at request time only.
func MaxBorrow(tier Tier) uint64 {
	switch tier {
	case TierA:
		return 100 * Denomination
	case TierB:
		return 50 * Denomination
	case TierC:
		return 25 * Denomination
	default:
		return 10 * Denomination
	}
}
