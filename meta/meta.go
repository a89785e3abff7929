// meta/meta.go
package meta

// GO_ROUTINES defines the number of goroutines for parallel root search.
const GO_ROUTINES = 8

// DEFAULT_DEPTH defines the fixed search depth in plies.
const DEFAULT_DEPTH = 7

// MAX_SEARCH_DEPTH caps iterative deepening under a time budget.
const MAX_SEARCH_DEPTH = 64

// MAX_TURNS stops a game that has not finished after this many moves.
const MAX_TURNS = 300

// REPETITION_LIMIT is how often a position may recur before the engine warns.
const REPETITION_LIMIT = 3

// DEFAULT_TEMPERATURE defines the softmax temperature of exploring agents.
const DEFAULT_TEMPERATURE = 1.0
