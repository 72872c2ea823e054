package policy

import "math/bits"

const (
	// BaseRateBps is the floor every loan starts from.
	BaseRateBps uint32 = 500

	// Duration surcharge: 10 bps per whole 30-day period.
	surchargePer30Days uint32 = 10

	SecondsPerDay int64 = 86400

	MinDurationSeconds int64 = 86400     // 1 day
	MaxDurationSeconds int64 = 31536000  // 365 days

	// MaxFeeBps caps the protocol fee at 10%.
	MaxFeeBps uint32 = 1000

	BpsDenominator uint64 = 10000
)

func riskPremiumBps(tier Tier) uint32 {
	switch tier {
	case TierA:
		return 0
	case TierB:
		return 200
	case TierC:
		return 500
	default:
		return 1000
	}
}

// MinimumRate returns the lowest interest rate (bps) a loan of the given
// tier and duration may carry. Partial 30-day periods add no surcharge.
func MinimumRate(tier Tier, durationSeconds int64) uint32 {
	days := durationSeconds / SecondsPerDay
	periods := uint32(days / 30)
	return BaseRateBps + riskPremiumBps(tier) + periods*surchargePer30Days
}

// ApplyBps computes floor(amount * bps / 10000) with a 128-bit
// intermediate so large principals cannot overflow.
func ApplyBps(amount uint64, bps uint32) uint64 {
	hi, lo := bits.Mul64(amount, uint64(bps))
	q, _ := bits.Div64(hi, lo, BpsDenominator)
	return q
}
