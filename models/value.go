package models

// Kind names a variant of Value. It is what the storage dispatcher reports
// when it has no implementation for an (operation, value) pair.
type Kind string

const (
	KindPlayer        Kind = "Player"
	KindPlayerIndex   Kind = "Player.Index"
	KindPlayerRequest Kind = "PlayerRequest"
	KindPlayerList    Kind = "PlayerList"
	KindTeam          Kind = "Team"
	KindTeamIndex     Kind = "Team.Index"
	KindTeamList      Kind = "TeamList"
	KindMembership    Kind = "Membership"
	KindTournament    Kind = "Tournament"
	KindMatch         Kind = "Match"
)

// Value is the closed set of domain values the storage layer routes.
// The unexported method keeps implementations inside this package.
type Value interface {
	Kind() Kind
	value()
}

// PlayerIndex selects every stored player.
type PlayerIndex struct{}

// TeamIndex selects every stored team.
type TeamIndex struct{}

// AllPlayers and AllTeams are the index selectors used by the API layer.
var (
	AllPlayers = PlayerIndex{}
	AllTeams   = TeamIndex{}
)

// PlayerList is the result of loading PlayerIndex.
type PlayerList []Player

// TeamList is the result of loading TeamIndex.
type TeamList []Team

func (Player) Kind() Kind        { return KindPlayer }
func (PlayerIndex) Kind() Kind   { return KindPlayerIndex }
func (PlayerRequest) Kind() Kind { return KindPlayerRequest }
func (PlayerList) Kind() Kind    { return KindPlayerList }
func (Team) Kind() Kind          { return KindTeam }
func (TeamIndex) Kind() Kind     { return KindTeamIndex }
func (TeamList) Kind() Kind      { return KindTeamList }
func (Membership) Kind() Kind    { return KindMembership }
func (Tournament) Kind() Kind    { return KindTournament }
func (Match) Kind() Kind         { return KindMatch }

func (Player) value()        {}
func (PlayerIndex) value()   {}
func (PlayerRequest) value() {}
func (PlayerList) value()    {}
func (Team) value()          {}
func (TeamIndex) value()     {}
func (TeamList) value()      {}
func (Membership) value()    {}
func (Tournament) value()    {}
func (Match) value()         {}
