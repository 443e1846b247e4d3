package cosine

// StatKind tags the Statistic variant.
type StatKind int

const (
	// StatNone marks an entity with no defined statistic (not shared).
	StatNone StatKind = iota

	// StatBootstrap carries a BCa interval: Point, Lower, Upper, Level.
	StatBootstrap

	// StatPValue carries a permutation p-value in P.
	StatPValue
)

// Statistic is the tagged confidence variant attached to every score.
// Only the fields of the active Kind are meaningful.
type Statistic struct {
	Kind StatKind

	// P is the permutation p-value (StatPValue).
	P float64

	// Point, Lower, Upper and Level describe the BCa interval
	// (StatBootstrap). Lower <= Point <= Upper holds whenever the bounds
	// are defined; under NaNPropagate a degenerate resample makes Lower
	// and Upper NaN.
	Point float64
	Lower float64
	Upper float64
	Level float64
}
