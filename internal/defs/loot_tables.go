// internal/defs/loot_tables.go
package defs

// DropRule is the drop chance and item type for one enemy type.
type DropRule struct {
	Type   DropType `yaml:"type"`
	Chance float64  `yaml:"chance"`
}

// DropTable maps enemy types to their drop rule. Types without an entry use
// Fallback.
type DropTable struct {
	Rules    map[EnemyType]DropRule
	Fallback DropRule
}

// DefaultDropTable: trees drop health 80% of the time, everything else always
// drops experience.
func DefaultDropTable() DropTable {
	return DropTable{
		Rules: map[EnemyType]DropRule{
			EnemyTree: {Type: DropHealth, Chance: 0.8},
		},
		Fallback: DropRule{Type: DropExperience, Chance: 1.0},
	}
}

// RuleFor returns the drop rule for an enemy type.
func (t DropTable) RuleFor(id EnemyType) DropRule {
	if rule, ok := t.Rules[id]; ok {
		return rule
	}
	return t.Fallback
}
