// internal/defs/heroes.go
package defs

import "fmt"

type HeroID string

const (
	HeroShana   HeroID = "SHANA"
	HeroDiamond HeroID = "DIAMOND"
	HeroScarlet HeroID = "SCARLET"
	HeroLilith  HeroID = "LILITH"
	HeroDasher  HeroID = "DASHER"
)

// HeroDefinition describes a playable character. Speed is in units per frame
// at 60 FPS, like enemy speeds.
type HeroDefinition struct {
	ID        HeroID
	Name      string
	MaxHealth int
	Speed     float64
	Texture   string
}

var heroes = []HeroDefinition{
	{ID: HeroShana, Name: "Shana", MaxHealth: 4, Speed: 4, Texture: "hero_shana"},
	{ID: HeroDiamond, Name: "Diamond", MaxHealth: 7, Speed: 1, Texture: "hero_diamond"},
	{ID: HeroScarlet, Name: "Scarlet", MaxHealth: 3, Speed: 5, Texture: "hero_scarlet"},
	{ID: HeroLilith, Name: "Lilith", MaxHealth: 5, Speed: 3, Texture: "hero_lilith"},
	{ID: HeroDasher, Name: "Dasher", MaxHealth: 2, Speed: 10, Texture: "hero_dasher"},
}

// Hero looks up a hero by ID.
func Hero(id HeroID) (HeroDefinition, error) {
	for _, h := range heroes {
		if h.ID == id {
			return h, nil
		}
	}
	return HeroDefinition{}, fmt.Errorf("unknown hero %q", id)
}
