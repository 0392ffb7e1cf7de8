package model_test

import (
	"carrental/internal/domains/car/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(day int) time.Time {
	return time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC)
}

func ptr(t time.Time) *time.Time {
	return &t
}

func TestProjectStatus(t *testing.T) {
	today := date(10)
	spanning := model.ActiveWindow{Start: date(9), End: date(12)}
	future := model.ActiveWindow{Start: date(15), End: date(18)}
	endedToday := model.ActiveWindow{Start: date(7), End: date(10)}

	tests := []struct {
		name              string
		stored            model.Status
		availableFrom     *time.Time
		active            []model.ActiveWindow
		wantStatus        model.Status
		wantAvailableFrom *time.Time
	}{
		{
			name:              "maintenance is authoritative",
			stored:            model.StatusMaintenance,
			availableFrom:     ptr(date(20)),
			active:            []model.ActiveWindow{spanning},
			wantStatus:        model.StatusMaintenance,
			wantAvailableFrom: ptr(date(20)),
		},
		{
			name:       "busy is authoritative",
			stored:     model.StatusBusy,
			active:     []model.ActiveWindow{spanning},
			wantStatus: model.StatusBusy,
		},
		{
			name:       "sold is authoritative",
			stored:     model.StatusSold,
			wantStatus: model.StatusSold,
		},
		{
			name:              "available with active rental today shows reserved",
			stored:            model.StatusAvailable,
			active:            []model.ActiveWindow{spanning},
			wantStatus:        model.StatusReserved,
			wantAvailableFrom: ptr(date(12)),
		},
		{
			name:              "available with only a future active window stays available",
			stored:            model.StatusAvailable,
			availableFrom:     ptr(date(1)),
			active:            []model.ActiveWindow{future},
			wantStatus:        model.StatusAvailable,
			wantAvailableFrom: ptr(date(1)),
		},
		{
			name:              "reserved without an active rental self-heals",
			stored:            model.StatusReserved,
			availableFrom:     ptr(date(12)),
			wantStatus:        model.StatusAvailable,
			wantAvailableFrom: ptr(today),
		},
		{
			name:              "window ending today no longer spans it",
			stored:            model.StatusReserved,
			availableFrom:     ptr(date(10)),
			active:            []model.ActiveWindow{endedToday},
			wantStatus:        model.StatusAvailable,
			wantAvailableFrom: ptr(today),
		},
		{
			name:              "reserved with active rental stays as stored",
			stored:            model.StatusReserved,
			availableFrom:     ptr(date(12)),
			active:            []model.ActiveWindow{spanning},
			wantStatus:        model.StatusReserved,
			wantAvailableFrom: ptr(date(12)),
		},
		{
			name:       "available with nothing active stays as stored",
			stored:     model.StatusAvailable,
			wantStatus: model.StatusAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.ProjectStatus(tt.stored, tt.availableFrom, tt.active, today)

			assert.Equal(t, tt.wantStatus, got.Status)
			if tt.wantAvailableFrom == nil {
				assert.Nil(t, got.AvailableFrom)

				return
			}

			require.NotNil(t, got.AvailableFrom)
			assert.Equal(t, *tt.wantAvailableFrom, *got.AvailableFrom)
		})
	}
}

func TestProjectStatus_DoesNotMutateInput(t *testing.T) {
	stored := date(12)
	car := model.Car{Status: model.StatusReserved, AvailableFrom: &stored}

	got := car.Project(nil, date(10))

	assert.Equal(t, model.StatusAvailable, got.Status)
	assert.Equal(t, model.StatusReserved, car.Status)
	assert.Equal(t, date(12), *car.AvailableFrom)
}

func TestStatus(t *testing.T) {
	assert.True(t, model.StatusReserved.IsBookable())
	assert.True(t, model.StatusAvailable.IsBookable())
	assert.False(t, model.StatusMaintenance.IsBookable())
	assert.True(t, model.StatusSold.IsStaffControlled())
	assert.False(t, model.StatusReserved.IsStaffControlled())
	assert.False(t, model.Status("rented").IsValid())
}
