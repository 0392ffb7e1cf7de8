package model_test

import (
	"carrental/internal/domains/reservation/model"
	"carrental/shared/failure"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
}

func rng(start, end int) model.DateRange {
	return model.DateRange{Start: day(start), End: day(end)}
}

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		want    model.DateRange
		wantErr bool
	}{
		{name: "valid", start: "2025-03-10", end: "2025-03-12", want: rng(10, 12)},
		{name: "single day", start: "2025-03-10", end: "2025-03-11", want: rng(10, 11)},
		{name: "start equals end", start: "2025-03-10", end: "2025-03-10", wantErr: true},
		{name: "end before start", start: "2025-03-12", end: "2025-03-10", wantErr: true},
		{name: "malformed start", start: "10/03/2025", end: "2025-03-12", wantErr: true},
		{name: "malformed end", start: "2025-03-10", end: "2025-13-01", wantErr: true},
		{name: "impossible calendar day", start: "2025-02-30", end: "2025-03-02", wantErr: true},
		{name: "missing start", start: "", end: "2025-03-12", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := model.ParseDateRange(tt.start, tt.end)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, failure.Is(err, failure.KindInvalidDateRange))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewDateRange_TruncatesTime(t *testing.T) {
	got, err := model.NewDateRange(time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC), time.Date(2025, 3, 12, 1, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, rng(10, 12), got)
	assert.Equal(t, 2, got.Days())
}

func TestDateRange_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b model.DateRange
		want bool
	}{
		{name: "identical", a: rng(10, 12), b: rng(10, 12), want: true},
		{name: "partial", a: rng(10, 12), b: rng(11, 13), want: true},
		{name: "contained", a: rng(10, 20), b: rng(12, 13), want: true},
		{name: "back to back", a: rng(10, 12), b: rng(12, 14), want: false},
		{name: "back to back reversed", a: rng(12, 14), b: rng(10, 12), want: false},
		{name: "disjoint", a: rng(10, 12), b: rng(15, 17), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestDateRange_Days(t *testing.T) {
	assert.Equal(t, 1, rng(10, 11).Days())
	assert.Equal(t, 5, rng(10, 15).Days())

	partial := model.DateRange{Start: day(10), End: day(11).Add(time.Hour)}
	assert.Equal(t, 2, partial.Days())
}

func TestFirstOverlap(t *testing.T) {
	existing := []model.Reservation{
		{ID: "late", StartDate: day(14), EndDate: day(16), Status: model.StatusActive},
		{ID: "pending", StartDate: day(9), EndDate: day(11), Status: model.StatusPending},
		{ID: "early", StartDate: day(11), EndDate: day(13), Status: model.StatusActive},
		{ID: "cancelled", StartDate: day(10), EndDate: day(20), Status: model.StatusCancelled},
	}

	got, ok := model.FirstOverlap(existing, rng(10, 15), model.StrictFilter, "")
	require.True(t, ok)
	assert.Equal(t, "early", got.ID)

	got, ok = model.FirstOverlap(existing, rng(10, 15), model.InclusiveFilter, "")
	require.True(t, ok)
	assert.Equal(t, "pending", got.ID)

	got, ok = model.FirstOverlap(existing, rng(11, 13), model.StrictFilter, "early")
	assert.False(t, ok, "unexpected overlap with %s", got.ID)

	_, ok = model.FirstOverlap(existing, rng(16, 18), model.InclusiveFilter, "")
	assert.False(t, ok)
}
