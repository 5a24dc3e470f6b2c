// internal/defs/abilities.go
package defs

// AbilityID identifies a level-up ability. Descriptors are immutable; the
// per-player runtime state lives in component.AbilityState.
type AbilityID string

const (
	AbilityVitality  AbilityID = "VITALITY"
	AbilityDamager   AbilityID = "DAMAGER"
	AbilityProcrease AbilityID = "PROCREASE"
	AbilityAmocrease AbilityID = "AMOCREASE"
	AbilitySpeedy    AbilityID = "SPEEDY"
)

// Ability describes a level-up pick. Duration 0 means permanent.
type Ability struct {
	ID          AbilityID
	Name        string
	Description string
	Duration    float64
}

var abilities = [...]Ability{
	{ID: AbilityVitality, Name: "Vitality", Description: "+1 max HP"},
	{ID: AbilityDamager, Name: "Damager", Description: "+25% damage for 10s", Duration: 10},
	{ID: AbilityProcrease, Name: "Procrease", Description: "+1 projectile"},
	{ID: AbilityAmocrease, Name: "Amocrease", Description: "+5 max ammo"},
	{ID: AbilitySpeedy, Name: "Speedy", Description: "2x speed for 10s", Duration: 10},
}

const (
	DamagerMultiplier = 1.25
	SpeedyMultiplier  = 2.0
	AmocreaseMagazine = 5
	ProcreaseBullets  = 1
	VitalityMaxHealth = 1
)

// Abilities returns all ability descriptors.
func Abilities() []Ability {
	out := make([]Ability, len(abilities))
	copy(out, abilities[:])
	return out
}

// AbilityByID looks up an ability descriptor.
func AbilityByID(id AbilityID) (Ability, bool) {
	for _, a := range abilities {
		if a.ID == id {
			return a, true
		}
	}
	return Ability{}, false
}
