package domain

import (
	"math"
	"time"
)

// Program shape
const (
	// DefaultProgramLength is the number of days in a full journey
	DefaultProgramLength = 90

	// MaxBuildingLevel caps the building visualization level
	MaxBuildingLevel = 90

	// FirstDay is the day a fresh journey starts on
	FirstDay = 1
)

// Unlock scheduling defaults
const (
	// DefaultUnlockDelay is how long a completed day keeps the next one locked
	DefaultUnlockDelay = 18 * time.Hour

	// MinimumRestPeriod is the shortest lock an "end day" request may set
	MinimumRestPeriod = 8 * time.Hour
)

// Token bounds; balances are stored as 32-bit integers
const (
	MaxTokenAmount  = math.MaxInt32
	MaxTokenBalance = math.MaxInt32
)

// DefaultXPPerCompletedDay is granted the first time a day is completed
const DefaultXPPerCompletedDay = 100

// BuildingLevelFor derives the building level from the completed day count
func BuildingLevelFor(totalCompletedDays int) int {
	level := totalCompletedDays + 1
	if level > MaxBuildingLevel {
		return MaxBuildingLevel
	}
	return level
}
