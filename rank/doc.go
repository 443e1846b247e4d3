// Package rank combines per-pair alignment scores into the final
// per-entity report.
//
// Flatten averages, per entity, the defined scores across all level
// pairs; entities with no defined score anywhere stay NaN. Print emits
// the two-column tab-separated table in entity-index order, with NaN
// for unknown scores. Ranking and Accuracy are evaluation-time
// helpers: entities rank ascending by flat score (the most
// inconsistent first) and the accuracy measures how concentrated a
// ground-truth set is in the lowest-scoring positions.
package rank
