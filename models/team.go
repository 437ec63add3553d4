package models

import "golang.org/x/text/unicode/norm"

// Team is identified by its name and never changes after creation.
type Team struct {
	Name string `json:"name" validate:"required"`
}

// CreateTeam builds a Team from an untyped field map.
func CreateTeam(fields map[string]any) (Team, error) {
	var t Team
	if err := decode(fields, &t); err != nil {
		return Team{}, err
	}
	return t, nil
}

// TeamNamed returns the Team key for name, as taken from a path segment.
func TeamNamed(name string) Team {
	return Team{Name: norm.NFC.String(name)}
}

// Membership places the player Member within the team Within.
type Membership struct {
	Member string `json:"member" validate:"required"`
	Within string `json:"within" validate:"required"`
}

// CreateMembership builds a Membership from an untyped field map.
func CreateMembership(fields map[string]any) (Membership, error) {
	var m Membership
	if err := decode(fields, &m); err != nil {
		return Membership{}, err
	}
	return m, nil
}
