// internal/app/cheats.go
package app

import "log/slog"

const skipSeconds = 60

// CheatService holds debug commands. It is created with a Game and acts
// on that Game only.
type CheatService struct {
	game   *Game
	logger *slog.Logger
}

func NewCheatService(g *Game, logger *slog.Logger) *CheatService {
	return &CheatService{game: g, logger: logger}
}

// SkipMinute moves the match clock one minute forward.
func (c *CheatService) SkipMinute() {
	c.game.Match.Skip(skipSeconds)
	c.logger.Info("cheat: skipped a minute", "elapsed", c.game.Match.Elapsed())
}

// SpawnBoss brings the boss in now. It reports false if it already came.
func (c *CheatService) SpawnBoss() bool {
	ok := c.game.Enemies.SpawnBoss() != nil
	c.logger.Info("cheat: spawn boss", "spawned", ok)
	return ok
}

// GrantLevel queues one level-up.
func (c *CheatService) GrantLevel() {
	c.game.Player.GrantLevel()
	c.logger.Info("cheat: level granted", "level", c.game.Player.Progress.Level)
}

func (c *CheatService) Heal() {
	p := c.game.Player
	p.SetHealth(p.MaxHealth())
	c.logger.Info("cheat: healed", "health", p.Health())
}

// ToggleInfiniteAmmo flips infinite ammo and returns the new setting.
func (c *CheatService) ToggleInfiniteAmmo() bool {
	on := !c.game.Weapon.InfiniteAmmo()
	c.game.Weapon.SetInfiniteAmmo(on)
	c.logger.Info("cheat: infinite ammo", "on", on)
	return on
}
