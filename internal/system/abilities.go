// internal/system/abilities.go
package system

import (
	"fmt"

	"go-till-dawn/internal/component"
	"go-till-dawn/internal/defs"
)

// HealthBooster is the player surface VITALITY needs.
type HealthBooster interface {
	MaxHealth() int
	SetMaxHealth(n int)
}

// AbilitySystem holds one player's ability state for one match.
type AbilitySystem struct {
	rng    Random
	player HealthBooster
	states map[defs.AbilityID]*component.AbilityState
}

func NewAbilitySystem(rng Random, player HealthBooster) *AbilitySystem {
	return &AbilitySystem{
		rng:    rng,
		player: player,
		states: make(map[defs.AbilityID]*component.AbilityState),
	}
}

// Offer draws n distinct abilities for a level-up choice.
func (s *AbilitySystem) Offer(n int) []defs.Ability {
	all := defs.Abilities()
	n = min(max(0, n), len(all))
	out := make([]defs.Ability, 0, n)
	for _, i := range s.rng.Perm(len(all))[:n] {
		out = append(out, all[i])
	}
	return out
}

// Apply activates an ability. Timed abilities restart their timer,
// permanent ones stack.
func (s *AbilitySystem) Apply(id defs.AbilityID) error {
	ability, ok := defs.AbilityByID(id)
	if !ok {
		return fmt.Errorf("unknown ability %q", id)
	}
	st := s.state(id)
	st.Active = true
	st.Stacks++
	if ability.Duration > 0 {
		st.Remaining = ability.Duration
	}
	if id == defs.AbilityVitality && s.player != nil {
		s.player.SetMaxHealth(s.player.MaxHealth() + defs.VitalityMaxHealth)
	}
	return nil
}

// Update expires timed abilities.
func (s *AbilitySystem) Update(dt float64) {
	for _, st := range s.states {
		if !st.Active || st.Remaining <= 0 {
			continue
		}
		st.Remaining -= dt
		if st.Remaining <= 0 {
			st.Remaining = 0
			st.Active = false
			st.Stacks = 0
		}
	}
}

func (s *AbilitySystem) state(id defs.AbilityID) *component.AbilityState {
	st, ok := s.states[id]
	if !ok {
		st = &component.AbilityState{Ability: id}
		s.states[id] = st
	}
	return st
}

// State returns a copy of the runtime state of one ability.
func (s *AbilitySystem) State(id defs.AbilityID) component.AbilityState {
	if st, ok := s.states[id]; ok {
		return *st
	}
	return component.AbilityState{Ability: id}
}

// Active lists active abilities in descriptor order.
func (s *AbilitySystem) Active() []component.AbilityState {
	var out []component.AbilityState
	for _, a := range defs.Abilities() {
		if st, ok := s.states[a.ID]; ok && st.Active {
			out = append(out, *st)
		}
	}
	return out
}

func (s *AbilitySystem) isActive(id defs.AbilityID) bool {
	st, ok := s.states[id]
	return ok && st.Active
}

func (s *AbilitySystem) stacks(id defs.AbilityID) int {
	if st, ok := s.states[id]; ok {
		return st.Stacks
	}
	return 0
}

func (s *AbilitySystem) DamageMultiplier() float64 {
	if s.isActive(defs.AbilityDamager) {
		return defs.DamagerMultiplier
	}
	return 1
}

func (s *AbilitySystem) SpeedMultiplier() float64 {
	if s.isActive(defs.AbilitySpeedy) {
		return defs.SpeedyMultiplier
	}
	return 1
}

func (s *AbilitySystem) ExtraProjectiles() int {
	return s.stacks(defs.AbilityProcrease) * defs.ProcreaseBullets
}

func (s *AbilitySystem) ExtraMagazine() int {
	return s.stacks(defs.AbilityAmocrease) * defs.AmocreaseMagazine
}
