package config

import (
	_ "embed"
)

//go:embed defaults/wordsnake.yaml
var defaultWordSnakeYAML []byte

// DefaultWordSnakeConfig returns the default word snake configuration.
func DefaultWordSnakeConfig() WordSnakeConfig {
	return WordSnakeConfig{
		Grid: GridConfig{
			CellSize:  30,
			FieldSize: 600,
			StartX:    300,
			StartY:    300,
		},
		Speed: SpeedConfig{
			StartMS: 200,
			StepMS:  25,
			FloorMS: 80,
		},
		Tiles: TilesConfig{
			Base:            12,
			PerLevelDivisor: 2,
			Max:             20,
			Initial:         10,
			SpawnAttempts:   100,
		},
		Obstacles: ObstaclesConfig{
			Base:            3,
			PerLevelDivisor: 3,
			Max:             15,
		},
		Words: WordsConfig{
			WordsPerLevel:      5,
			SuggestionLimit:    8,
			MinLenClassic:      3,
			MinLenMissions:     1,
			TriggerLenClassic:  3,
			TriggerLenMissions: 2,
		},
	}
}
