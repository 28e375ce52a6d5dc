package config

import (
	"fmt"

	"github.com/ptaljaard1985/health-dashboard/internal/healthstats"

	"github.com/BurntSushi/toml"
)

// LoadGoals reads the goal policy from the given TOML file. An empty path
// means the built-in defaults. Values missing from the file keep their
// defaults, so a file can override just one goal.
func LoadGoals(path string) (healthstats.Goals, error) {
	goals := healthstats.DefaultGoals()
	if path == "" {
		return goals, nil
	}

	if _, err := toml.DecodeFile(path, &goals); err != nil {
		return healthstats.Goals{}, fmt.Errorf("decode goals file %s: %w", path, err)
	}

	if err := goals.Validate(); err != nil {
		return healthstats.Goals{}, fmt.Errorf("validate goals file %s: %w", path, err)
	}

	return goals, nil
}
