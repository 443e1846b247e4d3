// Package ids assigns canonical dense integer indices to entity names.
//
// Every distinct name observed during ingestion is interned exactly
// once and receives the next free index in [0, N). The mapping is a
// bijection: Lookup(Intern(name)) == name for the whole run. After
// ingestion the registry is frozen; later Intern calls are errors, so
// the compute stages can share the registry across goroutines without
// locking.
package ids
