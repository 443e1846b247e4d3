// Package edgesim builds, per level, a sparse symmetric matrix of
// pairwise entity similarities over that level's replicate vectors.
//
// For every unordered entity pair with at least two replicates where
// both are measured, the entry is the Pearson correlation of the
// paired values, clamped at MaximumEdge. Pairs that cannot be scored
// (too few common replicates, or zero variance) hold the Sentinel
// value, which is deliberately outside [-1, 1] so it can never be
// mistaken for a real correlation. The diagonal is left untouched by
// the builder; it is reserved for cross-level vertex-similarity
// injection during alignment.
//
// The Matrix type stores rows as sparse maps: an absent entry means
// "no relation recorded", a Sentinel entry means "relation exists but
// is unknown". The two are distinct on purpose.
package edgesim
