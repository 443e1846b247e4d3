// Package dataset ingests the two CSV inputs and groups measurement
// rows into replicate-indexed levels.
//
// The data CSV carries one measurement per row:
//
//	dataLevel,dataReplicate,vertex,intensity
//
// The optional vertex CSV carries cross-level entity similarities:
//
//	vertexLevel1,vertexLevel2,vertex1,vertex2,similarity
//
// BuildLevels produces one StandardLevel per distinct level name: a
// dense mapping entityIndex → one optional intensity per replicate,
// with replicates in sorted name order so every downstream stage sees
// a deterministic layout. Missing measurements stay absent; they are
// never coerced to zero.
//
// All parsing is strict. A malformed header, a record with the wrong
// column count, an unparsable number or a duplicate (level, replicate,
// entity) triple aborts the run with a sentinel error. Column-count and
// number errors carry the offending line number; a duplicate-triple
// error names the level, replicate and entity.
package dataset
