package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/foundry90/internal/domain"
	"github.com/osse101/foundry90/internal/ledger"
)

func TestHandleAward(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &MockLedgerService{}
		svc.On("Award", mock.Anything, testUserID, ledger.Request{
			TokenType: domain.TokenFounderCoins,
			Amount:    25,
			Reason:    "weekly bonus",
		}).Return(domain.Balances{FounderCoins: 125}, nil)

		w := httptest.NewRecorder()
		body := `{"token_type":"founder_coins","amount":25,"reason":"weekly bonus"}`
		NewTokenHandler(svc).HandleAward(w, newJSONRequest(http.MethodPost, "/api/v1/tokens/award", body))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 125, decodeBody[BalancesResponse](t, w).Balances.FounderCoins)
		svc.AssertExpectations(t)
	})

	t.Run("invalid token type rejected before service", func(t *testing.T) {
		svc := &MockLedgerService{}

		w := httptest.NewRecorder()
		body := `{"token_type":"gold","amount":25,"reason":"x"}`
		NewTokenHandler(svc).HandleAward(w, newJSONRequest(http.MethodPost, "/api/v1/tokens/award", body))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeBody[ValidationErrorResponse](t, w).Fields, "token_type")
		svc.AssertNotCalled(t, "Award", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("amount above limit rejected before service", func(t *testing.T) {
		svc := &MockLedgerService{}

		w := httptest.NewRecorder()
		body := `{"token_type":"founder_coins","amount":2147483648,"reason":"x"}`
		NewTokenHandler(svc).HandleAward(w, newJSONRequest(http.MethodPost, "/api/v1/tokens/award", body))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeBody[ValidationErrorResponse](t, w).Fields, "amount")
		svc.AssertNotCalled(t, "Award", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("balance limit is a client error", func(t *testing.T) {
		svc := &MockLedgerService{}
		svc.On("Award", mock.Anything, testUserID, mock.Anything).
			Return(domain.Balances{}, fmt.Errorf("%w: founder_coins", domain.ErrBalanceLimit))

		w := httptest.NewRecorder()
		body := `{"token_type":"founder_coins","amount":5,"reason":"x"}`
		NewTokenHandler(svc).HandleAward(w, newJSONRequest(http.MethodPost, "/api/v1/tokens/award", body))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, ErrMsgBalanceLimitError, decodeBody[ErrorResponse](t, w).Error)
	})

	t.Run("missing reason rejected", func(t *testing.T) {
		svc := &MockLedgerService{}

		w := httptest.NewRecorder()
		body := `{"token_type":"vision_gems","amount":2}`
		NewTokenHandler(svc).HandleAward(w, newJSONRequest(http.MethodPost, "/api/v1/tokens/award", body))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeBody[ValidationErrorResponse](t, w).Fields, "reason")
	})
}

func TestHandleSpend(t *testing.T) {
	t.Run("insufficient funds reports balance", func(t *testing.T) {
		svc := &MockLedgerService{}
		svc.On("Spend", mock.Anything, testUserID, mock.Anything).Return(domain.Balances{}, domain.InsufficientFundsError{
			TokenType: domain.TokenVisionGems,
			Balance:   3,
			Requested: 10,
		})

		w := httptest.NewRecorder()
		body := `{"token_type":"vision_gems","amount":10,"reason":"unlock theme"}`
		NewTokenHandler(svc).HandleSpend(w, newJSONRequest(http.MethodPost, "/api/v1/tokens/spend", body))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeBody[InsufficientFundsResponse](t, w)
		assert.Equal(t, domain.TokenVisionGems, resp.TokenType)
		assert.Equal(t, 3, resp.Balance)
		assert.Equal(t, 10, resp.Requested)
	})

	t.Run("journey not started", func(t *testing.T) {
		svc := &MockLedgerService{}
		svc.On("Spend", mock.Anything, testUserID, mock.Anything).Return(domain.Balances{}, domain.ErrProgressNotFound)

		w := httptest.NewRecorder()
		body := `{"token_type":"vision_gems","amount":1,"reason":"x"}`
		NewTokenHandler(svc).HandleSpend(w, newJSONRequest(http.MethodPost, "/api/v1/tokens/spend", body))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleGetBalances(t *testing.T) {
	svc := &MockLedgerService{}
	svc.On("GetBalances", mock.Anything, testUserID).Return(domain.Balances{FounderCoins: 4, VisionGems: 9}, nil)

	w := httptest.NewRecorder()
	NewTokenHandler(svc).HandleGetBalances(w, newJSONRequest(http.MethodGet, "/api/v1/tokens/balances", ""))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.Balances{FounderCoins: 4, VisionGems: 9}, decodeBody[BalancesResponse](t, w).Balances)
}

func TestHandleGetTransactions(t *testing.T) {
	t.Run("limit forwarded", func(t *testing.T) {
		svc := &MockLedgerService{}
		svc.On("GetTransactions", mock.Anything, testUserID, 20).Return([]domain.TokenTransaction{
			{ID: 2, UserID: testUserID, Type: domain.TransactionSpent, TokenType: domain.TokenFounderCoins, Amount: 5, CreatedAt: testNow},
			{ID: 1, UserID: testUserID, Type: domain.TransactionEarned, TokenType: domain.TokenFounderCoins, Amount: 10, CreatedAt: testNow.Add(-time.Hour)},
		}, nil)

		w := httptest.NewRecorder()
		NewTokenHandler(svc).HandleGetTransactions(w, newJSONRequest(http.MethodGet, "/api/v1/tokens/transactions?limit=20", ""))

		assert.Equal(t, http.StatusOK, w.Code)
		txns := decodeBody[TransactionsResponse](t, w).Transactions
		assert.Len(t, txns, 2)
		assert.Equal(t, int64(2), txns[0].ID)
	})

	t.Run("default limit is zero", func(t *testing.T) {
		svc := &MockLedgerService{}
		svc.On("GetTransactions", mock.Anything, testUserID, 0).Return([]domain.TokenTransaction{}, nil)

		w := httptest.NewRecorder()
		NewTokenHandler(svc).HandleGetTransactions(w, newJSONRequest(http.MethodGet, "/api/v1/tokens/transactions", ""))

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("bad limit", func(t *testing.T) {
		svc := &MockLedgerService{}

		w := httptest.NewRecorder()
		NewTokenHandler(svc).HandleGetTransactions(w, newJSONRequest(http.MethodGet, "/api/v1/tokens/transactions?limit=-1", ""))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidLimit)
	})
}
