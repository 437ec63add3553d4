package storage

import "time"

// Row types mirror the relational schema one to one. They stay unexported so
// nothing outside the store depends on the table layout.

type playerRow struct {
	Name     string `gorm:"column:name;primaryKey"`
	Location string `gorm:"column:location"`
}

func (playerRow) TableName() string { return "player" }

type teamRow struct {
	Name string `gorm:"column:name;primaryKey"`
}

func (teamRow) TableName() string { return "team" }

type membershipRow struct {
	Within string `gorm:"column:within;primaryKey"`
	Member string `gorm:"column:member;primaryKey"`

	Team   *teamRow   `gorm:"foreignKey:Within;references:Name;constraint:OnDelete:CASCADE"`
	Player *playerRow `gorm:"foreignKey:Member;references:Name;constraint:OnDelete:CASCADE"`
}

func (membershipRow) TableName() string { return "membership" }

type tournamentRow struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement"`
	Timestamp time.Time `gorm:"column:timestamp"`
	Location  string    `gorm:"column:location"`
	Mode      string    `gorm:"column:mode"`
	A         string    `gorm:"column:a"`
	B         string    `gorm:"column:b"`
}

func (tournamentRow) TableName() string { return "tournament" }

// schema lists the tables in dependency order.
var schema = []any{
	&playerRow{},
	&teamRow{},
	&membershipRow{},
	&tournamentRow{},
}
