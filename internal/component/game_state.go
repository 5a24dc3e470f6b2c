// internal/component/game_state.go
package component

// MatchPhase описывает состояние матча
type MatchPhase int

const (
	MatchRunning MatchPhase = iota
	MatchWon
	MatchLost
)

func (p MatchPhase) String() string {
	switch p {
	case MatchRunning:
		return "running"
	case MatchWon:
		return "won"
	case MatchLost:
		return "lost"
	default:
		return "unknown"
	}
}
