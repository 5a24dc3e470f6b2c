// internal/defs/weapons.go
package defs

import "fmt"

type WeaponID string

const (
	WeaponRevolver WeaponID = "REVOLVER"
	WeaponShotgun  WeaponID = "SHOTGUN"
	WeaponSMG      WeaponID = "SMG"
)

// WeaponDefinition holds the static stats of a gun. Spread is the total fan
// angle in radians across which multiple projectiles are distributed.
type WeaponDefinition struct {
	ID           WeaponID
	Name         string
	Damage       int
	Projectiles  int
	Spread       float64
	Magazine     int
	ReloadTime   float64
	FireCooldown float64
	Texture      string
}

var weapons = []WeaponDefinition{
	{ID: WeaponRevolver, Name: "Revolver", Damage: 20, Projectiles: 1, Spread: 0, Magazine: 6, ReloadTime: 1, FireCooldown: 0.25, Texture: "weapon_revolver"},
	{ID: WeaponShotgun, Name: "Shotgun", Damage: 10, Projectiles: 4, Spread: 0.5, Magazine: 2, ReloadTime: 1, FireCooldown: 0.5, Texture: "weapon_shotgun"},
	{ID: WeaponSMG, Name: "SMG", Damage: 8, Projectiles: 1, Spread: 0.08, Magazine: 24, ReloadTime: 2, FireCooldown: 0.08, Texture: "weapon_smg"},
}

// Weapon looks up a weapon by ID.
func Weapon(id WeaponID) (WeaponDefinition, error) {
	for _, w := range weapons {
		if w.ID == id {
			return w, nil
		}
	}
	return WeaponDefinition{}, fmt.Errorf("unknown weapon %q", id)
}
