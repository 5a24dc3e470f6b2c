// internal/defs/loader.go
package defs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadEnemyDefinitions reads an enemy definitions file. The result is meant to
// be merged over DefaultEnemies with Library.Merge.
func LoadEnemyDefinitions(path string) ([]EnemyDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := yaml.Unmarshal(file, &enemyDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}
	return enemyDefs, nil
}
