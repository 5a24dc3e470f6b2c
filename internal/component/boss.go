// internal/component/boss.go
package component

// BossState is the phase of the Elder boss state machine.
type BossState int

const (
	BossWalking BossState = iota
	BossCharging
	BossAttacking
)

func (s BossState) String() string {
	switch s {
	case BossWalking:
		return "WALKING"
	case BossCharging:
		return "CHARGING"
	case BossAttacking:
		return "ATTACKING"
	default:
		return "UNKNOWN"
	}
}

// AnimationKey returns the asset key suffix for the state animation.
func (s BossState) AnimationKey() string {
	switch s {
	case BossCharging:
		return "charge"
	case BossAttacking:
		return "attack"
	default:
		return "walk"
	}
}
