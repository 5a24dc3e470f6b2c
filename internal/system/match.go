// internal/system/match.go
package system

import (
	"go-till-dawn/internal/component"
	"go-till-dawn/internal/event"
	"go-till-dawn/internal/interfaces"
)

// MatchSystem runs the match timer and decides how the match ended.
type MatchSystem struct {
	duration        float64
	elapsed         float64
	phase           component.MatchPhase
	eventDispatcher *event.Dispatcher
}

func NewMatchSystem(duration float64, d *event.Dispatcher) *MatchSystem {
	return &MatchSystem{duration: duration, eventDispatcher: d}
}

// Update advances the clock. The player losing all health ends the match
// lost; reaching the duration ends it won. MatchEnded fires once.
func (s *MatchSystem) Update(dt float64, player interfaces.Player) {
	if s.phase != component.MatchRunning {
		return
	}
	s.elapsed = min(s.duration, s.elapsed+dt)
	switch {
	case player != nil && player.Health() <= 0:
		s.end(component.MatchLost)
	case s.elapsed >= s.duration:
		s.end(component.MatchWon)
	}
}

func (s *MatchSystem) end(p component.MatchPhase) {
	s.phase = p
	s.eventDispatcher.Emit(event.MatchEnded, p)
}

// Skip moves the clock forward without simulating, used by cheats.
func (s *MatchSystem) Skip(seconds float64) {
	if s.phase != component.MatchRunning {
		return
	}
	s.elapsed = min(s.duration, s.elapsed+seconds)
}

func (s *MatchSystem) Elapsed() float64 { return s.elapsed }

func (s *MatchSystem) Duration() float64 { return s.duration }

func (s *MatchSystem) Remaining() float64 { return max(0, s.duration-s.elapsed) }

func (s *MatchSystem) Phase() component.MatchPhase { return s.phase }

func (s *MatchSystem) IsOver() bool { return s.phase != component.MatchRunning }
