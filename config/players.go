package config

import "slices"

// Players is the fixed roster of names the maze service accepts.
var Players = []string{
	"Twilight Sparkle",
	"Pinkie Pie",
	"Fluttershy",
	"Rainbow Dash",
	"Princess Celestia",
	"Rarity",
	"Applejack",
	"Spike",
}

// DefaultPlayer is the first name of the roster.
var DefaultPlayer = Players[0]

// IsPlayer reports whether name belongs to the roster.
func IsPlayer(name string) bool {
	return slices.Contains(Players, name)
}
