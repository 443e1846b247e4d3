// Package vertexsim builds the cross-level entity-similarity map.
//
// For every unordered level pair the map yields triples (i, j, sim):
// entity i of the first level, entity j of the second, and their
// similarity. Two sources exist:
//
//   - User-supplied rows from the vertex CSV (FromRows). Every row must
//     reference levels and entities known from the data input; anything
//     else is a reference error and fatal.
//   - The identity default (Identity): sim 1 exactly when two entities
//     are the same name, or, given an entity-diff separator s, when
//     exactly one of the two names contains s and their prefixes up to
//     the first s are equal (ARG29 vs ARG29_7 with s = "_").
//
// Queries are symmetric: Pairs(A, B) and Pairs(B, A) describe the same
// relation with I and J swapped.
package vertexsim
