package handler

import (
	"context"
	"net/http"

	"github.com/osse101/foundry90/internal/domain"
	"github.com/osse101/foundry90/internal/ledger"
)

// TokenHandler serves the token ledger endpoints
type TokenHandler struct {
	service ledger.Service
}

// NewTokenHandler creates a token handler
func NewTokenHandler(service ledger.Service) *TokenHandler {
	return &TokenHandler{service: service}
}

// TokenRequest is the body for award and spend
type TokenRequest struct {
	TokenType string                 `json:"token_type" validate:"required,token_type"`
	Amount    int                    `json:"amount" validate:"required,min=1,max=2147483647"`
	Reason    string                 `json:"reason" validate:"required,max=255"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

func (r TokenRequest) toLedger() ledger.Request {
	return ledger.Request{
		TokenType: domain.TokenType(r.TokenType),
		Amount:    r.Amount,
		Reason:    r.Reason,
		Metadata:  r.Metadata,
	}
}

// BalancesResponse wraps the caller's balances
type BalancesResponse struct {
	Balances domain.Balances `json:"balances"`
}

// TransactionsResponse wraps ledger history, newest first
type TransactionsResponse struct {
	Transactions []domain.TokenTransaction `json:"transactions"`
}

// HandleAward credits tokens
// @Summary Award tokens
// @Tags tokens
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User UUID"
// @Param request body TokenRequest true "Award"
// @Success 200 {object} BalancesResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/tokens/award [post]
func (h *TokenHandler) HandleAward(w http.ResponseWriter, r *http.Request) {
	h.handleMutation(w, r, "Award tokens", h.service.Award)
}

// HandleSpend debits tokens, rejecting spends larger than the balance
// @Summary Spend tokens
// @Tags tokens
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User UUID"
// @Param request body TokenRequest true "Spend"
// @Success 200 {object} BalancesResponse
// @Failure 400 {object} InsufficientFundsResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/tokens/spend [post]
func (h *TokenHandler) HandleSpend(w http.ResponseWriter, r *http.Request) {
	h.handleMutation(w, r, "Spend tokens", h.service.Spend)
}

func (h *TokenHandler) handleMutation(w http.ResponseWriter, r *http.Request, opName string,
	apply func(ctx context.Context, userID string, req ledger.Request) (domain.Balances, error)) {
	userID, ok := RequireUserID(w, r)
	if !ok {
		return
	}
	var req TokenRequest
	if err := DecodeAndValidateRequest(r, w, &req, opName); err != nil {
		return
	}

	balances, err := apply(r.Context(), userID, req.toLedger())
	if err != nil {
		respondServiceError(w, r, opName, err)
		return
	}
	respondJSON(w, http.StatusOK, BalancesResponse{Balances: balances})
}

// HandleGetBalances returns the caller's balances
// @Summary Get balances
// @Tags tokens
// @Produce json
// @Param X-User-ID header string true "User UUID"
// @Success 200 {object} BalancesResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/tokens/balances [get]
func (h *TokenHandler) HandleGetBalances(w http.ResponseWriter, r *http.Request) {
	userID, ok := RequireUserID(w, r)
	if !ok {
		return
	}
	balances, err := h.service.GetBalances(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Get balances", err)
		return
	}
	respondJSON(w, http.StatusOK, BalancesResponse{Balances: balances})
}

// HandleGetTransactions returns ledger history
// @Summary List transactions
// @Tags tokens
// @Produce json
// @Param X-User-ID header string true "User UUID"
// @Param limit query int false "Maximum entries (default 50, max 500)"
// @Success 200 {object} TransactionsResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/tokens/transactions [get]
func (h *TokenHandler) HandleGetTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := RequireUserID(w, r)
	if !ok {
		return
	}
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}
	txns, err := h.service.GetTransactions(r.Context(), userID, limit)
	if err != nil {
		respondServiceError(w, r, "Get transactions", err)
		return
	}
	respondJSON(w, http.StatusOK, TransactionsResponse{Transactions: txns})
}
