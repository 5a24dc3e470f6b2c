// internal/component/visual.go
package component

import "go-till-dawn/pkg/utils"

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Timer    float64 // Сколько времени эффекта осталось
	Duration float64 // Общая продолжительность эффекта
}

const DamageFlashDuration = 0.12

// Start (пере)запускает вспышку.
func (f *DamageFlash) Start() {
	f.Duration = DamageFlashDuration
	f.Timer = DamageFlashDuration
}

// Tick уменьшает таймер вспышки, не опускаясь ниже нуля.
func (f *DamageFlash) Tick(dt float64) {
	f.Timer = utils.Approach(f.Timer, 0, dt)
}

func (f DamageFlash) Active() bool { return f.Timer > 0 }
