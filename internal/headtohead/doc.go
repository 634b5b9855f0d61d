// Package headtohead derives head-to-head views from a collection of match
// records: the team roster, the matches between a selected pair, per-match
// results seen from the pair's ordering, and the aggregates built from them.
//
// Every function is pure. Inputs are never mutated and results never share
// backing arrays with their inputs.
package headtohead
