// meta/meta.go
package meta

// DEFAULT_PLIES is the search depth of the alpha-beta agents.
const DEFAULT_PLIES = 4

// MAX_PLIES bounds the depths compared by the pruning experiment.
const MAX_PLIES = 6

// GAMES is the number of games per match.
const GAMES = 10

// MAX_TURNS stops a game that has not ended after this many moves.
const MAX_TURNS = 300

// OUTPUT_DIR is where experiment records are written.
const OUTPUT_DIR = "experiments"

// WORD is the starting word of the letter game.
const WORD = "alphabeta"

// CONFIDENCE is the confidence level, in percent, of reported win rates.
const CONFIDENCE = 95
