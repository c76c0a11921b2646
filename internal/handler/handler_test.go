package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthpath/calendar/internal/apperror"
	"github.com/wealthpath/calendar/internal/logger"
	"github.com/wealthpath/calendar/internal/service"
	"github.com/wealthpath/calendar/internal/tzhost"
	"github.com/wealthpath/calendar/pkg/datetime"
)

// newServiceRouter wires the real calendar service behind the router with
// Local set to Europe/Rome and the clock stopped in the October 2016 fold.
func newServiceRouter(t *testing.T) http.Handler {
	t.Helper()
	cal := datetime.NewCalendar(
		datetime.WithEnvironment(tzhost.NewMemoryEnv()),
		datetime.WithLogger(logger.Discard()),
		datetime.WithClock(func() time.Time { return time.Date(2016, time.October, 30, 0, 30, 0, 0, time.UTC) }),
	)
	require.NoError(t, cal.SetLocal("Europe/Rome"))
	return newTestRouter(service.NewCalendarService(cal, 20))
}

func TestAPI_NowInFold(t *testing.T) {
	rr := doRequest(t, newServiceRouter(t), http.MethodGet, "/api/now", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var got service.Moment
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "2016-10-30T02:30:00+0200", got.ISO8601)
	assert.True(t, got.InDSTOverlap)
}

func TestAPI_Make(t *testing.T) {
	h := newServiceRouter(t)

	rr := doRequest(t, h, http.MethodPost, "/api/make", service.MakeInput{
		Year: 2016, Month: 10, Day: 30, Hour: 2, Minute: 22, Second: 21, Precedence: "dst-over-st",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var got service.Moment
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "2016-10-30T02:22:21+0200", got.ISO8601)
	assert.True(t, got.IsDST)

	// 02:30 does not exist on the spring-forward day
	rr = doRequest(t, h, http.MethodPost, "/api/make", service.MakeInput{
		Year: 2016, Month: 3, Day: 27, Hour: 2, Minute: 30,
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAPI_ParseRejected(t *testing.T) {
	rr := doRequest(t, newServiceRouter(t), http.MethodPost, "/api/parse", service.ParseInput{Text: "2016-03-27T02:30:00"})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, apperror.CodeInvalidArgument, resp.Code)
}

func TestAPI_SecondsInDay(t *testing.T) {
	h := newServiceRouter(t)

	tests := []struct {
		path string
		want int
	}{
		{"/api/calendar/2016/10/30/seconds", 90000},
		{"/api/calendar/2016/3/27/seconds", 82800},
		{"/api/calendar/2016/3/27/seconds?wallclock=UTC", 86400},
		{"/api/calendar/2016/3/27/seconds?wallclock=Asia/Tokyo", 86400},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rr := doRequest(t, h, http.MethodGet, tt.path, nil)
			require.Equal(t, http.StatusOK, rr.Code)

			var got SecondsInDayResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, tt.want, got.Seconds)
		})
	}
}

func TestAPI_LocalRoundTrip(t *testing.T) {
	h := newServiceRouter(t)

	rr := doRequest(t, h, http.MethodPut, "/api/wallclock/local", SetLocalRequest{Name: "Asia/Tokyo"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(t, h, http.MethodGet, "/api/wallclock/local", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"name":"Asia/Tokyo","system":false,"utc":false}`, rr.Body.String())

	rr = doRequest(t, h, http.MethodPut, "/api/wallclock/local", SetLocalRequest{Name: "Mars/Olympus"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func BenchmarkRespondJSON(b *testing.B) {
	m := service.Moment{ISO8601: "2016-10-30T02:30:00+0200", WallClock: "Europe/Rome"}
	for i := 0; i < b.N; i++ {
		w := discardWriter{header: http.Header{}}
		respondJSON(w, http.StatusOK, m)
	}
}

type discardWriter struct {
	header http.Header
}

func (w discardWriter) Header() http.Header         { return w.header }
func (w discardWriter) Write(p []byte) (int, error) { return len(p), nil }
func (w discardWriter) WriteHeader(int)             {}
