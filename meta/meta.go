// meta/meta.go
package meta

// DEFAULT_DIFFICULTY is the engine strength used when none is given.
const DEFAULT_DIFFICULTY = 5

// MAX_TURNS ends a game as a draw when no one has won by then.
const MAX_TURNS = 300

// NUM_GAMES is the number of games played per match up in experiments.
const NUM_GAMES = 20

// PARQUET_PARALLEL is the number of goroutines marshalling parquet rows.
const PARQUET_PARALLEL = 4
