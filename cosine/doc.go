// Package cosine aligns two levels by comparing, per shared entity,
// the entity's neighborhood vectors in the two edge-similarity
// matrices.
//
// Algorithm outline, per level pair:
//  1. Inject the cross-level vertex similarities into copies of both
//     edge matrices (the diagonal region carries them from then on).
//  2. Intersect the row sets; every shared entity k becomes one job.
//  3. score_k = cosine(E1'[k,·], E2'[k,·]) over the union support,
//     absent entries read as 0. A zero-norm side is a numeric
//     degeneracy: logged, score reset to 0, never fatal.
//  4. A confidence statistic accompanies every score: a BCa bootstrap
//     interval at the configured level, or, in permutation mode, a
//     p-value from shuffling the second neighborhood.
//
// Jobs are pure functions of their inputs and a per-job seed derived
// from (global seed, level pair, entity index), so results are
// identical across runs and worker schedules. They run on a bounded
// errgroup pool; the first failure cancels the rest.
package cosine
