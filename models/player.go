package models

import "golang.org/x/text/unicode/norm"

// Cities a player or tournament may be located in.
const (
	Berlin    = "Berlin"
	Munich    = "Munich"
	Wuerzburg = "Würzburg"
)

// Locations lists every accepted location.
var Locations = []string{Berlin, Munich, Wuerzburg}

// Player is a league member. Name is the unique key.
type Player struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location" validate:"required,oneof=Berlin Munich Würzburg"`
}

// CreatePlayer builds a Player from an untyped field map.
func CreatePlayer(fields map[string]any) (Player, error) {
	var p Player
	if err := decode(fields, &p); err != nil {
		return Player{}, err
	}
	return p, nil
}

// PlayerRequest selects a single player by name without requiring a location.
type PlayerRequest struct {
	Name string `json:"name"`
}

// NewPlayerRequest returns the selector for name.
func NewPlayerRequest(name string) PlayerRequest {
	return PlayerRequest{Name: norm.NFC.String(name)}
}
