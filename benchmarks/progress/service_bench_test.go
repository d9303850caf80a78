package progress_bench

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/foundry90/internal/achievement"
	"github.com/osse101/foundry90/internal/clock"
	"github.com/osse101/foundry90/internal/database/memory"
	"github.com/osse101/foundry90/internal/domain"
	"github.com/osse101/foundry90/internal/progress"
	"github.com/osse101/foundry90/internal/streak"
)

// fullProgram returns completions for every day with a gap every tenth day
func fullProgram(length int) []domain.Completion {
	out := make([]domain.Completion, 0, length)
	for d := 1; d <= length; d++ {
		out = append(out, domain.Completion{Day: d, Completed: d%10 != 0})
	}
	return out
}

func BenchmarkStreakCompute(b *testing.B) {
	for _, n := range []int{7, 30, 90} {
		completions := fullProgram(n)
		b.Run(fmt.Sprintf("days=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = streak.Compute(completions, n)
				_ = streak.Longest(completions)
			}
		})
	}
}

// Each iteration completes day 1 for a fresh user
func BenchmarkCompleteDay(b *testing.B) {
	ctx := context.Background()
	clk := clock.NewFake(time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC))
	svc := progress.NewService(memory.New(), achievement.Empty(), nil, clk, progress.DefaultConfig())

	users := make([]string, b.N)
	for i := range users {
		users[i] = uuid.NewString()
		if _, _, err := svc.StartJourney(ctx, users[i]); err != nil {
			b.Fatal(err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.CompleteDay(ctx, users[i], 1, domain.DraftInput{}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCanAdvance(b *testing.B) {
	ctx := context.Background()
	clk := clock.NewFake(time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC))
	svc := progress.NewService(memory.New(), achievement.Empty(), nil, clk, progress.DefaultConfig())

	userID := uuid.NewString()
	if _, _, err := svc.StartJourney(ctx, userID); err != nil {
		b.Fatal(err)
	}
	if _, err := svc.CompleteDay(ctx, userID, 1, domain.DraftInput{}); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.CanAdvance(ctx, userID); err != nil {
			b.Fatal(err)
		}
	}
}
