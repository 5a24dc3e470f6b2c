// internal/component/player.go
package component

// PlayerProgress хранит текущий уровень и опыт игрока.
type PlayerProgress struct {
	Level         int // Текущий уровень игрока
	CurrentXP     int // Текущее количество очков опыта
	XPToNextLevel int // Количество опыта, необходимое для следующего уровня
}

// XPForLevel возвращает опыт, нужный для перехода с уровня level на следующий.
func XPForLevel(base, level int) int {
	return base * level
}
