package model_test

import (
	"carrental/internal/domains/reservation/model"
	"carrental/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []model.Status{
	model.StatusPending,
	model.StatusConfirmed,
	model.StatusActive,
	model.StatusCompleted,
	model.StatusCancelled,
}

func TestStatus_CanTransitionTo(t *testing.T) {
	allowed := map[model.Status][]model.Status{
		model.StatusPending:   {model.StatusConfirmed, model.StatusCancelled},
		model.StatusConfirmed: {model.StatusActive, model.StatusCancelled},
		model.StatusActive:    {model.StatusCompleted, model.StatusCancelled},
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			want := false
			for _, target := range allowed[from] {
				if target == to {
					want = true
				}
			}

			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, model.StatusCompleted.IsTerminal())
	assert.True(t, model.StatusCancelled.IsTerminal())
	assert.False(t, model.StatusPending.IsTerminal())
	assert.False(t, model.StatusActive.IsTerminal())
	assert.False(t, model.Status("rented").IsTerminal())
	assert.Empty(t, model.StatusCompleted.Next())
}

func TestParseStatus(t *testing.T) {
	for _, status := range allStatuses {
		got, err := model.ParseStatus(string(status))
		require.NoError(t, err)
		assert.Equal(t, status, got)
	}

	_, err := model.ParseStatus("returned")
	require.Error(t, err)
	assert.True(t, failure.Is(err, failure.KindUnknownStatus))

	_, err = model.ParseStatus("")
	assert.True(t, failure.Is(err, failure.KindUnknownStatus))
}

func TestStatusFilter(t *testing.T) {
	assert.Equal(t, []string{"active"}, model.StrictFilter.Strings())
	assert.Equal(t, []string{"pending", "confirmed", "active"}, model.InclusiveFilter.Strings())

	assert.False(t, model.StrictFilter.Contains(model.StatusPending))
	assert.True(t, model.InclusiveFilter.Contains(model.StatusConfirmed))
	assert.False(t, model.InclusiveFilter.Contains(model.StatusCancelled))
	assert.False(t, model.InclusiveFilter.Contains(model.StatusCompleted))
}

func TestFilterFor(t *testing.T) {
	filter, err := model.FilterFor("")
	require.NoError(t, err)
	assert.Equal(t, model.StrictFilter, filter)

	filter, err = model.FilterFor(model.FilterModeInclusive)
	require.NoError(t, err)
	assert.Equal(t, model.InclusiveFilter, filter)

	_, err = model.FilterFor("loose")
	assert.True(t, failure.Is(err, failure.KindBadRequest))
}
