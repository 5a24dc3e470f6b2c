// internal/component/status_effect.go
package component

import "go-till-dawn/internal/defs"

// AbilityState is the per-player runtime record for one ability. Timed
// abilities count Remaining down to zero; permanent ones stack Stacks.
type AbilityState struct {
	Ability   defs.AbilityID
	Active    bool
	Remaining float64 // seconds left for timed abilities
	Stacks    int
}
