// internal/event/types.go
package event

const (
	EnemyKilled   EventType = "EnemyKilled"   // Враг уничтожен, Data: *entity.Enemy
	BossDefeated  EventType = "BossDefeated"  // Босс уничтожен
	DropCollected EventType = "DropCollected" // в Data лежит defs.DropType
	PlayerDamaged EventType = "PlayerDamaged" // Data: int (оставшееся здоровье)
	PlayerLevelUp EventType = "PlayerLevelUp" // Data: int (новый уровень)
	MatchEnded    EventType = "MatchEnded"    // в Data лежит component.MatchPhase
)
