// Package walker aligns two levels with a restartable random walk over
// their product graph, as an alternative to the cosine aligner.
//
// The product graph has one vertex per pair (i, j) with i a row of the
// first edge matrix and j a row of the second. The transition weight
// from (i, j) to (i', j') is E1[i,i']·E2[j,j'], taking only positive,
// non-sentinel entries as edges; each row is normalized to mass 1-r and
// every vertex receives the uniform restart mass r/|vertices|.
//
// The stationary distribution starts from the vertex-similarity
// weighting and is found by power iteration (up to Steps multiplies or
// until the L1 change drops below Epsilon), or, for product graphs of
// at most EigenMaxDim vertices, by taking the dominant left eigenvector
// directly. Per-entity scores project the diagonal: score(k) = π(k,k)
// for entities present in both levels, NaN otherwise.
package walker
