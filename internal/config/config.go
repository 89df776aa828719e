// Package config provides YAML-based configuration loading and the
// per-level difficulty curve for word snake.
package config

// WordSnakeConfig contains all tunables of the game.
type WordSnakeConfig struct {
	Grid      GridConfig      `yaml:"grid"`
	Speed     SpeedConfig     `yaml:"speed"`
	Tiles     TilesConfig     `yaml:"tiles"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
	Words     WordsConfig     `yaml:"words"`
}

// GridConfig defines the play field in field units.
type GridConfig struct {
	CellSize  int `yaml:"cell_size"`
	FieldSize int `yaml:"field_size"` // Square field; must be a multiple of cell_size
	StartX    int `yaml:"start_x"`
	StartY    int `yaml:"start_y"`
}

// SpeedConfig defines the tick interval curve.
type SpeedConfig struct {
	StartMS int `yaml:"start_ms"`
	StepMS  int `yaml:"step_ms"`  // Decrement per level
	FloorMS int `yaml:"floor_ms"` // Interval never drops below this
}

// TilesConfig defines how many letter tiles are kept on the field.
type TilesConfig struct {
	Base            int `yaml:"base"`
	PerLevelDivisor int `yaml:"per_level_divisor"`
	Max             int `yaml:"max"`
	Initial         int `yaml:"initial"`
	SpawnAttempts   int `yaml:"spawn_attempts"`
}

// ObstaclesConfig defines obstacle counts in the missions variant.
type ObstaclesConfig struct {
	Base            int `yaml:"base"`
	PerLevelDivisor int `yaml:"per_level_divisor"`
	Max             int `yaml:"max"`
}

// WordsConfig defines word matching and progression rules.
type WordsConfig struct {
	WordsPerLevel      int `yaml:"words_per_level"` // Classic variant
	SuggestionLimit    int `yaml:"suggestion_limit"`
	MinLenClassic      int `yaml:"min_len_classic"`
	MinLenMissions     int `yaml:"min_len_missions"`
	TriggerLenClassic  int `yaml:"trigger_len_classic"`
	TriggerLenMissions int `yaml:"trigger_len_missions"`
}

// Normalize replaces non-positive values with the built-in defaults so a
// partial YAML file still yields a playable configuration.
func (c *WordSnakeConfig) Normalize() {
	d := DefaultWordSnakeConfig()

	fill := func(v *int, def int) {
		if *v <= 0 {
			*v = def
		}
	}

	fill(&c.Grid.CellSize, d.Grid.CellSize)
	fill(&c.Grid.FieldSize, d.Grid.FieldSize)
	if c.Grid.FieldSize%c.Grid.CellSize != 0 {
		c.Grid.FieldSize -= c.Grid.FieldSize % c.Grid.CellSize
	}
	if c.Grid.FieldSize < c.Grid.CellSize {
		c.Grid.FieldSize = c.Grid.CellSize
	}
	if c.Grid.StartX < 0 || c.Grid.StartX >= c.Grid.FieldSize {
		c.Grid.StartX = c.Grid.FieldSize / 2
	}
	if c.Grid.StartY < 0 || c.Grid.StartY >= c.Grid.FieldSize {
		c.Grid.StartY = c.Grid.FieldSize / 2
	}
	c.Grid.StartX -= c.Grid.StartX % c.Grid.CellSize
	c.Grid.StartY -= c.Grid.StartY % c.Grid.CellSize

	fill(&c.Speed.StartMS, d.Speed.StartMS)
	fill(&c.Speed.StepMS, d.Speed.StepMS)
	fill(&c.Speed.FloorMS, d.Speed.FloorMS)

	fill(&c.Tiles.Base, d.Tiles.Base)
	fill(&c.Tiles.PerLevelDivisor, d.Tiles.PerLevelDivisor)
	fill(&c.Tiles.Max, d.Tiles.Max)
	fill(&c.Tiles.Initial, d.Tiles.Initial)
	fill(&c.Tiles.SpawnAttempts, d.Tiles.SpawnAttempts)

	fill(&c.Obstacles.Base, d.Obstacles.Base)
	fill(&c.Obstacles.PerLevelDivisor, d.Obstacles.PerLevelDivisor)
	fill(&c.Obstacles.Max, d.Obstacles.Max)

	fill(&c.Words.WordsPerLevel, d.Words.WordsPerLevel)
	fill(&c.Words.SuggestionLimit, d.Words.SuggestionLimit)
	fill(&c.Words.MinLenClassic, d.Words.MinLenClassic)
	fill(&c.Words.MinLenMissions, d.Words.MinLenMissions)
	fill(&c.Words.TriggerLenClassic, d.Words.TriggerLenClassic)
	fill(&c.Words.TriggerLenMissions, d.Words.TriggerLenMissions)
}
