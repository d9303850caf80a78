package handler

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/foundry90/internal/domain"
	"github.com/osse101/foundry90/internal/event"
	"github.com/osse101/foundry90/internal/eventlog"
	"github.com/osse101/foundry90/internal/ledger"
)

// MockProgressService mocks progress.Service
type MockProgressService struct {
	mock.Mock
}

func (m *MockProgressService) StartJourney(ctx context.Context, userID string) (*domain.Progress, bool, error) {
	args := m.Called(ctx, userID)
	p, _ := args.Get(0).(*domain.Progress)
	return p, args.Bool(1), args.Error(2)
}

func (m *MockProgressService) CompleteDay(ctx context.Context, userID string, day int, content domain.DraftInput) (*domain.CompleteDayResult, error) {
	args := m.Called(ctx, userID, day, content)
	res, _ := args.Get(0).(*domain.CompleteDayResult)
	return res, args.Error(1)
}

func (m *MockProgressService) EndDay(ctx context.Context, userID string, customUnlockTime *time.Time) (*domain.EndDayResult, error) {
	args := m.Called(ctx, userID, customUnlockTime)
	res, _ := args.Get(0).(*domain.EndDayResult)
	return res, args.Error(1)
}

func (m *MockProgressService) CanAdvance(ctx context.Context, userID string) (*domain.AdvanceStatus, error) {
	args := m.Called(ctx, userID)
	res, _ := args.Get(0).(*domain.AdvanceStatus)
	return res, args.Error(1)
}

func (m *MockProgressService) SaveDraft(ctx context.Context, userID string, day int, content domain.DraftInput) (*domain.Completion, error) {
	args := m.Called(ctx, userID, day, content)
	res, _ := args.Get(0).(*domain.Completion)
	return res, args.Error(1)
}

func (m *MockProgressService) GetProgress(ctx context.Context, userID string) (*domain.ProgressView, error) {
	args := m.Called(ctx, userID)
	res, _ := args.Get(0).(*domain.ProgressView)
	return res, args.Error(1)
}

func (m *MockProgressService) GetDay(ctx context.Context, userID string, day int) (*domain.Completion, error) {
	args := m.Called(ctx, userID, day)
	res, _ := args.Get(0).(*domain.Completion)
	return res, args.Error(1)
}

func (m *MockProgressService) GetAchievements(ctx context.Context, userID string) ([]domain.AchievementStatus, error) {
	args := m.Called(ctx, userID)
	res, _ := args.Get(0).([]domain.AchievementStatus)
	return res, args.Error(1)
}

func (m *MockProgressService) ClearLock(ctx context.Context, userID string) (*domain.Progress, error) {
	args := m.Called(ctx, userID)
	res, _ := args.Get(0).(*domain.Progress)
	return res, args.Error(1)
}

// MockLedgerService mocks ledger.Service
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) Award(ctx context.Context, userID string, req ledger.Request) (domain.Balances, error) {
	args := m.Called(ctx, userID, req)
	return args.Get(0).(domain.Balances), args.Error(1)
}

func (m *MockLedgerService) Spend(ctx context.Context, userID string, req ledger.Request) (domain.Balances, error) {
	args := m.Called(ctx, userID, req)
	return args.Get(0).(domain.Balances), args.Error(1)
}

func (m *MockLedgerService) GetBalances(ctx context.Context, userID string) (domain.Balances, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Balances), args.Error(1)
}

func (m *MockLedgerService) GetTransactions(ctx context.Context, userID string, limit int) ([]domain.TokenTransaction, error) {
	args := m.Called(ctx, userID, limit)
	res, _ := args.Get(0).([]domain.TokenTransaction)
	return res, args.Error(1)
}

func (m *MockLedgerService) VerifyBalances(ctx context.Context, userID string) (*domain.BalanceReport, error) {
	args := m.Called(ctx, userID)
	res, _ := args.Get(0).(*domain.BalanceReport)
	return res, args.Error(1)
}

// MockEventLogService mocks eventlog.Service
type MockEventLogService struct {
	mock.Mock
}

func (m *MockEventLogService) Subscribe(bus event.Bus) error {
	return m.Called(bus).Error(0)
}

func (m *MockEventLogService) GetEvents(ctx context.Context, filter eventlog.EventFilter) ([]eventlog.Event, error) {
	args := m.Called(ctx, filter)
	res, _ := args.Get(0).([]eventlog.Event)
	return res, args.Error(1)
}

func (m *MockEventLogService) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	args := m.Called(ctx, retentionDays)
	return args.Get(0).(int64), args.Error(1)
}

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}
