package session

import "cosmic-mines/internal/config"

// LevelForRows maps a board size to its level. Level 1 is 8x8 and every
// level adds two rows; odd sizes share the level below.
func LevelForRows(rows int) int {
	return (rows-config.DefaultRows)/config.RowsPerLevel + 1
}

// RowsForLevel is the board size a level starts at.
func RowsForLevel(level int) int {
	return config.DefaultRows + (level-1)*config.RowsPerLevel
}

// TimeLimit is the countdown for a board, in seconds.
func TimeLimit(rows int) int {
	return config.SecondsPerExtraRow * (rows - 7)
}
