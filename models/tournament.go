package models

import "time"

// Tournament modes.
const (
	ModeOneMatch = "one-match"
	ModeBestOf3  = "best-of-3"
	ModeBestOf5  = "best-of-5"
)

// Modes lists every accepted tournament mode.
var Modes = []string{ModeOneMatch, ModeBestOf3, ModeBestOf5}

// Tournament is a scheduled encounter between two participants, A and B,
// which are player or team names.
type Tournament struct {
	When     time.Time `json:"timestamp"`
	Location string    `json:"location" validate:"required,oneof=Berlin Munich Würzburg"`
	Mode     string    `json:"mode" validate:"required,oneof=one-match best-of-3 best-of-5"`
	A        string    `json:"a" validate:"required"`
	B        string    `json:"b" validate:"required"`
}

// CreateTournament builds a Tournament from an untyped field map. The
// timestamp must be an RFC 3339 string.
func CreateTournament(fields map[string]any) (Tournament, error) {
	var t Tournament
	if err := decode(fields, &t); err != nil {
		return Tournament{}, err
	}
	return t, nil
}

// Match is the score of a single match in a tournament.
type Match struct {
	A int `json:"a" validate:"min=0"`
	B int `json:"b" validate:"min=0"`
}

// CreateMatch builds a Match from an untyped field map.
func CreateMatch(fields map[string]any) (Match, error) {
	var m Match
	if err := decode(fields, &m); err != nil {
		return Match{}, err
	}
	return m, nil
}
