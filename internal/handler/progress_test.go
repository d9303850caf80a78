package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/foundry90/internal/domain"
)

const testUserID = "6f1c2a9e-4b3d-4f7a-9c1e-2d5b8a7f0e31"

var testNow = time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC)

func newJSONRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(HeaderContentType, ContentTypeJSON)
	}
	req.Header.Set(HeaderUserID, testUserID)
	return req
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestHandleStartJourney(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &MockProgressService{}
		svc.On("StartJourney", mock.Anything, testUserID).Return(domain.NewProgress(testUserID, testNow), true, nil)

		w := httptest.NewRecorder()
		NewProgressHandler(svc).HandleStartJourney(w, newJSONRequest(http.MethodPost, "/api/v1/progress/start", ""))

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decodeBody[StartJourneyResponse](t, w)
		assert.True(t, resp.Created)
		assert.Equal(t, 1, resp.Progress.CurrentDay)
	})

	t.Run("already started", func(t *testing.T) {
		svc := &MockProgressService{}
		svc.On("StartJourney", mock.Anything, testUserID).Return(domain.NewProgress(testUserID, testNow), false, nil)

		w := httptest.NewRecorder()
		NewProgressHandler(svc).HandleStartJourney(w, newJSONRequest(http.MethodPost, "/api/v1/progress/start", ""))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHandleCompleteDay(t *testing.T) {
	t.Run("success passes content through", func(t *testing.T) {
		svc := &MockProgressService{}
		p := domain.NewProgress(testUserID, testNow)
		p.Streak = 1
		svc.On("CompleteDay", mock.Anything, testUserID, 1, mock.MatchedBy(func(in domain.DraftInput) bool {
			return in.Notes != nil && *in.Notes == "ran 5k" && in.StepResponses["q1"] == "yes"
		})).Return(&domain.CompleteDayResult{Progress: p, FirstCompletion: true}, nil)

		w := httptest.NewRecorder()
		body := `{"day":1,"notes":"ran 5k","step_responses":{"q1":"yes"}}`
		NewProgressHandler(svc).HandleCompleteDay(w, newJSONRequest(http.MethodPost, "/api/v1/progress/complete", body))

		assert.Equal(t, http.StatusOK, w.Code)
		res := decodeBody[domain.CompleteDayResult](t, w)
		assert.True(t, res.FirstCompletion)
		assert.Equal(t, 1, res.Progress.Streak)
		svc.AssertExpectations(t)
	})

	t.Run("locked maps to 429 with time left", func(t *testing.T) {
		svc := &MockProgressService{}
		unlock := testNow.Add(90 * time.Minute)
		svc.On("CompleteDay", mock.Anything, testUserID, 2, mock.Anything).Return(nil, domain.LockedError{
			HoursLeft:      2,
			Remaining:      90 * time.Minute,
			NextUnlockTime: unlock,
		})

		w := httptest.NewRecorder()
		NewProgressHandler(svc).HandleCompleteDay(w, newJSONRequest(http.MethodPost, "/api/v1/progress/complete", `{"day":2}`))

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		resp := decodeBody[LockedResponse](t, w)
		assert.Equal(t, ErrMsgDayLockedError, resp.Error)
		assert.Equal(t, 2, resp.HoursLeft)
		assert.Equal(t, int64(5400), resp.TimeLeftSeconds)
		assert.True(t, unlock.Equal(resp.NextUnlockTime))
	})

	t.Run("future day maps to 400 with days", func(t *testing.T) {
		svc := &MockProgressService{}
		svc.On("CompleteDay", mock.Anything, testUserID, 5, mock.Anything).
			Return(nil, domain.FutureDayError{RequestedDay: 5, CurrentDay: 3})

		w := httptest.NewRecorder()
		NewProgressHandler(svc).HandleCompleteDay(w, newJSONRequest(http.MethodPost, "/api/v1/progress/complete", `{"day":5}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeBody[FutureDayResponse](t, w)
		assert.Equal(t, 5, resp.RequestedDay)
		assert.Equal(t, 3, resp.CurrentDay)
	})

	t.Run("not started maps to 404", func(t *testing.T) {
		svc := &MockProgressService{}
		svc.On("CompleteDay", mock.Anything, testUserID, 1, mock.Anything).Return(nil, domain.ErrProgressNotFound)

		w := httptest.NewRecorder()
		NewProgressHandler(svc).HandleCompleteDay(w, newJSONRequest(http.MethodPost, "/api/v1/progress/complete", `{"day":1}`))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgProgressNotFoundError)
	})

	t.Run("out of range maps to 400", func(t *testing.T) {
		svc := &MockProgressService{}
		svc.On("CompleteDay", mock.Anything, testUserID, 91, mock.Anything).Return(nil, domain.ErrDayOutOfRange)

		w := httptest.NewRecorder()
		NewProgressHandler(svc).HandleCompleteDay(w, newJSONRequest(http.MethodPost, "/api/v1/progress/complete", `{"day":91}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("store failure hides details", func(t *testing.T) {
		svc := &MockProgressService{}
		svc.On("CompleteDay", mock.Anything, testUserID, 1, mock.Anything).Return(nil, assert.AnError)

		w := httptest.NewRecorder()
		NewProgressHandler(svc).HandleCompleteDay(w, newJSONRequest(http.MethodPost, "/api/v1/progress/complete", `{"day":1}`))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), assert.AnError.Error())
	})

	t.Run("validation failure lists fields", func(t *testing.T) {
		svc := &MockProgressService{}

		w := httptest.NewRecorder()
		NewProgressHandler(svc).HandleCompleteDay(w, newJSONRequest(http.MethodPost, "/api/v1/progress/complete", `{"day":0}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeBody[ValidationErrorResponse](t, w)
		assert.Contains(t, resp.Fields, "day")
		svc.AssertNotCalled(t, "CompleteDay", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		svc := &MockProgressService{}

		w := httptest.NewRecorder()
		NewProgressHandler(svc).HandleCompleteDay(w, newJSONRequest(http.MethodPost, "/api/v1/progress/complete", `{"day":1,"xp":500}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidRequest)
	})
}

func TestRequireUserID(t *testing.T) {
	svc := &MockProgressService{}
	h := NewProgressHandler(svc)

	t.Run("missing header is 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/progress", nil)
		w := httptest.NewRecorder()
		h.HandleGetProgress(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header is 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/progress", nil)
		req.Header.Set(HeaderUserID, "not-a-uuid")
		w := httptest.NewRecorder()
		h.HandleGetProgress(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidUserIDError)
	})

	t.Run("uppercase header is canonicalized", func(t *testing.T) {
		svc := &MockProgressService{}
		svc.On("GetProgress", mock.Anything, testUserID).Return(&domain.ProgressView{
			Progress: domain.NewProgress(testUserID, testNow),
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/progress", nil)
		req.Header.Set(HeaderUserID, strings.ToUpper(testUserID))
		w := httptest.NewRecorder()
		NewProgressHandler(svc).HandleGetProgress(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	svc.AssertNotCalled(t, "GetProgress", mock.Anything, mock.Anything)
}

func TestHandleEndDay(t *testing.T) {
	t.Run("no body uses default delay", func(t *testing.T) {
		svc := &MockProgressService{}
		next := testNow.Add(20 * time.Hour)
		svc.On("EndDay", mock.Anything, testUserID, (*time.Time)(nil)).
			Return(&domain.EndDayResult{NextUnlockTime: next}, nil)

		w := httptest.NewRecorder()
		NewProgressHandler(svc).HandleEndDay(w, newJSONRequest(http.MethodPost, "/api/v1/progress/end-day", ""))

		assert.Equal(t, http.StatusOK, w.Code)
		res := decodeBody[domain.EndDayResult](t, w)
		assert.True(t, next.Equal(res.NextUnlockTime))
	})

	t.Run("chunked empty body uses default delay", func(t *testing.T) {
		svc := &MockProgressService{}
		svc.On("EndDay", mock.Anything, testUserID, (*time.Time)(nil)).
			Return(&domain.EndDayResult{NextUnlockTime: testNow.Add(18 * time.Hour)}, nil)

		req := newJSONRequest(http.MethodPost, "/api/v1/progress/end-day", "")
		req.Body = io.NopCloser(strings.NewReader(""))
		req.ContentLength = -1
		req.TransferEncoding = []string{"chunked"}

		w := httptest.NewRecorder()
		NewProgressHandler(svc).HandleEndDay(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("malformed body still rejected", func(t *testing.T) {
		svc := &MockProgressService{}

		w := httptest.NewRecorder()
		NewProgressHandler(svc).HandleEndDay(w, newJSONRequest(http.MethodPost, "/api/v1/progress/end-day", `{"custom_unlock_time":`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "EndDay", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("custom unlock time forwarded", func(t *testing.T) {
		svc := &MockProgressService{}
		custom := time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)
		svc.On("EndDay", mock.Anything, testUserID, mock.MatchedBy(func(ts *time.Time) bool {
			return ts != nil && ts.Equal(custom)
		})).Return(&domain.EndDayResult{NextUnlockTime: custom}, nil)

		w := httptest.NewRecorder()
		body := `{"custom_unlock_time":"2024-03-11T09:00:00Z"}`
		NewProgressHandler(svc).HandleEndDay(w, newJSONRequest(http.MethodPost, "/api/v1/progress/end-day", body))

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})
}

func TestHandleCanAdvance(t *testing.T) {
	svc := &MockProgressService{}
	next := testNow.Add(3 * time.Hour)
	svc.On("CanAdvance", mock.Anything, testUserID).Return(&domain.AdvanceStatus{
		CanAdvance:      false,
		HoursLeft:       3,
		TimeLeftSeconds: 10800,
		NextUnlockTime:  &next,
		CurrentDay:      4,
	}, nil)

	w := httptest.NewRecorder()
	NewProgressHandler(svc).HandleCanAdvance(w, newJSONRequest(http.MethodGet, "/api/v1/progress/can-advance", ""))

	assert.Equal(t, http.StatusOK, w.Code)
	status := decodeBody[domain.AdvanceStatus](t, w)
	assert.False(t, status.CanAdvance)
	assert.Equal(t, 3, status.HoursLeft)
	assert.Equal(t, 4, status.CurrentDay)
}

func TestHandleSaveDraft(t *testing.T) {
	svc := &MockProgressService{}
	notes := "half done"
	svc.On("SaveDraft", mock.Anything, testUserID, 2, mock.Anything).Return(&domain.Completion{
		UserID: testUserID,
		Day:    2,
		Notes:  &notes,
	}, nil)

	w := httptest.NewRecorder()
	NewProgressHandler(svc).HandleSaveDraft(w, newJSONRequest(http.MethodPost, "/api/v1/progress/draft", `{"day":2,"notes":"half done"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	c := decodeBody[domain.Completion](t, w)
	assert.False(t, c.Completed)
	assert.Equal(t, "half done", *c.Notes)
}

func TestHandleGetDay(t *testing.T) {
	newRouter := func(svc *MockProgressService) http.Handler {
		r := chi.NewRouter()
		r.Get("/api/v1/progress/days/{day}", NewProgressHandler(svc).HandleGetDay)
		return r
	}

	t.Run("found", func(t *testing.T) {
		svc := &MockProgressService{}
		svc.On("GetDay", mock.Anything, testUserID, 7).Return(&domain.Completion{UserID: testUserID, Day: 7, Completed: true}, nil)

		w := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(w, newJSONRequest(http.MethodGet, "/api/v1/progress/days/7", ""))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 7, decodeBody[domain.Completion](t, w).Day)
	})

	t.Run("missing record is 404", func(t *testing.T) {
		svc := &MockProgressService{}
		svc.On("GetDay", mock.Anything, testUserID, 8).Return(nil, domain.ErrCompletionNotFound)

		w := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(w, newJSONRequest(http.MethodGet, "/api/v1/progress/days/8", ""))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric day is 400", func(t *testing.T) {
		svc := &MockProgressService{}

		w := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(w, newJSONRequest(http.MethodGet, "/api/v1/progress/days/seven", ""))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidDayParam)
	})
}

func TestHandleGetAchievements(t *testing.T) {
	svc := &MockProgressService{}
	svc.On("GetAchievements", mock.Anything, testUserID).Return([]domain.AchievementStatus{}, nil)

	w := httptest.NewRecorder()
	NewProgressHandler(svc).HandleGetAchievements(w, newJSONRequest(http.MethodGet, "/api/v1/achievements", ""))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]\n", w.Body.String())
}
