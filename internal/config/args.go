package config

import (
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// ParseStartingRows reads the optional board size argument. Anything that is
// not an integer falls back to DefaultRows; integers are clamped to
// [MinRows, MaxRows].
func ParseStartingRows(args []string, log logrus.FieldLogger) int {
	if len(args) == 0 {
		return DefaultRows
	}
	rows, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		log.WithField("arg", args[0]).Warnf("Invalid input. Starting with default %d.", DefaultRows)
		return DefaultRows
	}
	if rows < MinRows || rows > MaxRows {
		clamped := min(max(rows, MinRows), MaxRows)
		log.WithFields(logrus.Fields{"requested": rows, "rows": clamped}).Warn("board size out of range")
		return clamped
	}
	return rows
}
