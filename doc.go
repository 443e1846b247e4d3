// Package integreat integrates measurements of one entity set taken by
// multiple independent experiments ("levels") and scores, per entity,
// how consistent that entity behaves across all level pairs.
//
// The pipeline, leaves first:
//
//	ids/       — canonical dense integer IDs for entity names
//	dataset/   — CSV ingestion; rows grouped into replicate-indexed levels
//	edgesim/   — per-level sparse symmetric entity-similarity matrices
//	vertexsim/ — cross-level entity-similarity maps (user-supplied or identity)
//	cosine/    — cosine alignment of neighborhood vectors + bootstrap CIs
//	walker/    — restartable random-walk alignment over the product graph
//	rank/      — aggregation across level pairs, ranking, accuracy
//
// Everything is a batch computation: read inputs, compute, print. All
// structures are built once during ingestion and read-only afterwards;
// per-vertex alignment jobs run on a bounded worker pool and are pure
// functions of their inputs and a deterministic per-job seed.
//
//	go install github.com/jay11071998/integreat/cmd/integreat
package integreat
