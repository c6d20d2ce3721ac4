package reschedule_tour

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdmit/HTS-TourService/internal/api/handlers"
	rescheduleTour "github.com/avdmit/HTS-TourService/internal/usecase/reschedule_tour"
)

type fakeUseCase struct {
	gotReq *rescheduleTour.Request
	resp   *rescheduleTour.Response
	err    error
}

func (f *fakeUseCase) Execute(_ context.Context, req *rescheduleTour.Request) (*rescheduleTour.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestRouter(uc *fakeUseCase) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/tour/{tourId}/reschedule", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodPatch)
	return r
}

func doRequest(t *testing.T, router *mux.Router, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPatch, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_TourTimeFromQuery(t *testing.T) {
	newTime := time.Date(2026, 3, 12, 14, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{
		resp: &rescheduleTour.Response{
			ID: 4, PropertyID: "prop-1", ScheduledAt: newTime, UserID: "user-1",
		},
	}
	router := newTestRouter(uc)

	rec := doRequest(t, router, "/tour/3/reschedule?tourTime=2026-03-12T14:00:00Z", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(3), uc.gotReq.TourID)
	assert.True(t, uc.gotReq.NewTourTime.Equal(newTime))

	var resp TourResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(4), resp.ID)
	assert.Equal(t, "prop-1", resp.PropertyID)
	assert.Equal(t, "2026-03-12T14:00:00Z", resp.ScheduledAt)
}

func TestHandle_TourTimeFromBody(t *testing.T) {
	newTime := time.Date(2026, 3, 12, 14, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{
		resp: &rescheduleTour.Response{ID: 4, PropertyID: "prop-1", ScheduledAt: newTime, UserID: "user-1"},
	}
	router := newTestRouter(uc)

	rec := doRequest(t, router, "/tour/3/reschedule", `{"tourTime":"2026-03-12T14:00:00Z"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.True(t, uc.gotReq.NewTourTime.Equal(newTime))
}

// Query-параметр имеет приоритет над телом запроса
func TestHandle_QueryWinsOverBody(t *testing.T) {
	queryTime := time.Date(2026, 3, 12, 14, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{
		resp: &rescheduleTour.Response{ID: 4, PropertyID: "prop-1", ScheduledAt: queryTime, UserID: "user-1"},
	}
	router := newTestRouter(uc)

	rec := doRequest(t, router,
		"/tour/3/reschedule?tourTime=2026-03-12T14:00:00Z",
		`{"tourTime":"2026-03-13T10:00:00Z"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, uc.gotReq.NewTourTime.Equal(queryTime))
}

func TestHandle_MissingTourTime(t *testing.T) {
	router := newTestRouter(&fakeUseCase{})

	rec := doRequest(t, router, "/tour/3/reschedule", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, msgMissingTourTime, resp.Message)
}

func TestHandle_InvalidTourID(t *testing.T) {
	router := newTestRouter(&fakeUseCase{})

	rec := doRequest(t, router, "/tour/abc/reschedule?tourTime=2026-03-12T14:00:00Z", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidTourTimeFormat(t *testing.T) {
	router := newTestRouter(&fakeUseCase{})

	rec := doRequest(t, router, "/tour/3/reschedule?tourTime=12-03-2026", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, msgInvalidTourTime, resp.Message)
}

func TestHandle_BusinessErrorsMapTo400(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"not found", rescheduleTour.ErrTourNotFound, msgTourNotFound},
		{"past tour", rescheduleTour.ErrTourNotReschedulable, msgTourNotReschedulable},
		{"window violation", rescheduleTour.ErrInvalidScheduleWindow, msgInvalidScheduleWindow},
		{"slot unavailable", rescheduleTour.ErrSlotUnavailable, msgSlotUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&fakeUseCase{err: tt.err})

			rec := doRequest(t, router, "/tour/3/reschedule?tourTime=2026-03-12T14:00:00Z", "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantMsg, resp.Message)
		})
	}
}

func TestHandle_InternalError(t *testing.T) {
	router := newTestRouter(&fakeUseCase{err: rescheduleTour.ErrInternal})

	rec := doRequest(t, router, "/tour/3/reschedule?tourTime=2026-03-12T14:00:00Z", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
