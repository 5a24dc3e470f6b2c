// internal/defs/types.go
package defs

// DropType defines what a collectible does when picked up.
type DropType string

const (
	DropNone       DropType = ""
	DropHealth     DropType = "health"
	DropExperience DropType = "experience"
)

// Texture returns the asset key for the drop sprite.
func (d DropType) Texture() string {
	switch d {
	case DropHealth:
		return "drop_health"
	case DropExperience:
		return "drop_experience"
	default:
		return ""
	}
}
