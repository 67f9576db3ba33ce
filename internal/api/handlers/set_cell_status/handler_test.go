package set_cell_status

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	setCellStatus "github.com/m04kA/SMC-CalendarService/internal/usecase/set_cell_status"
)

func mustDate(s string) time.Time {
	t, err := time.ParseInLocation(domain.DateFormat, s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubUseCase struct {
	resp *setCellStatus.Response
	err  error
	got  *setCellStatus.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *setCellStatus.Request) (*setCellStatus.Response, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func doRequest(uc *stubUseCase, body string) *httptest.ResponseRecorder {
	h := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/cells/status", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	uc := &stubUseCase{resp: &setCellStatus.Response{
		UnitID:  2,
		Date:    mustDate("2025-07-01"),
		Status:  "blocked",
		Applied: 1,
	}}

	rec := doRequest(uc, `{"unitId":2,"date":"2025-07-01","status":"blocked","reason":"deep clean"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SetStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.UnitID)
	assert.Equal(t, "2025-07-01", resp.Date)
	assert.Equal(t, "blocked", resp.Status)
	assert.Equal(t, 1, resp.Applied)

	require.NotNil(t, uc.got)
	assert.Equal(t, int64(2), uc.got.UnitID)
	assert.Equal(t, "deep clean", *uc.got.Reason)
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := doRequest(&stubUseCase{}, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidDate(t *testing.T) {
	rec := doRequest(&stubUseCase{}, `{"unitId":1,"date":"01.07.2025","status":"free"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid status", err: setCellStatus.ErrInvalidStatus, want: http.StatusBadRequest},
		{name: "invalid input", err: setCellStatus.ErrInvalidInput, want: http.StatusBadRequest},
		{name: "unit not found", err: setCellStatus.ErrUnitNotFound, want: http.StatusNotFound},
		{name: "partial apply", err: setCellStatus.ErrPartialApply, want: http.StatusConflict},
		{name: "internal", err: setCellStatus.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(&stubUseCase{err: tt.err}, `{"unitId":1,"date":"2025-07-01","status":"free"}`)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
