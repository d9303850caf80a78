// Package streak computes consecutive-day streaks from completion records.
package streak

import (
	"sort"

	"github.com/osse101/foundry90/internal/domain"
)

// Compute returns the number of consecutive completed days ending at asOfDay.
// The walk starts at asOfDay and stops at the first day that is missing or not
// completed, so an incomplete asOfDay yields 0. Duplicate records for the same
// day are counted once.
func Compute(completions []domain.Completion, asOfDay int) int {
	if asOfDay < domain.FirstDay || len(completions) == 0 {
		return 0
	}

	days := completedDaysDescending(completions)

	streak := 0
	expected := asOfDay
	for _, day := range days {
		if day > expected {
			continue
		}
		if day != expected {
			break
		}
		streak++
		expected--
	}
	return streak
}

// Longest returns the longest run of consecutive completed days in the set
func Longest(completions []domain.Completion) int {
	days := completedDaysDescending(completions)

	longest, run := 0, 0
	prev := 0
	for i, day := range days {
		if i > 0 && day == prev-1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev = day
	}
	return longest
}

// LatestCompletedDay returns the highest completed day, or 0 if none
func LatestCompletedDay(completions []domain.Completion) int {
	latest := 0
	for _, c := range completions {
		if c.Completed && c.Day > latest {
			latest = c.Day
		}
	}
	return latest
}

// CountCompleted returns the number of distinct completed days
func CountCompleted(completions []domain.Completion) int {
	return len(completedDaysDescending(completions))
}

// completedDaysDescending returns distinct completed days sorted high to low
func completedDaysDescending(completions []domain.Completion) []int {
	seen := make(map[int]struct{}, len(completions))
	days := make([]int, 0, len(completions))
	for _, c := range completions {
		if !c.Completed {
			continue
		}
		if _, dup := seen[c.Day]; dup {
			continue
		}
		seen[c.Day] = struct{}{}
		days = append(days, c.Day)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(days)))
	return days
}
