package events_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calehb/evoke/pkg/errors"
	"github.com/calehb/evoke/pkg/events"
)

func newDemoDynamic(t *testing.T) *events.Dynamic {
	t.Helper()
	reg, err := events.NewDynamic("foo", "bar", "baz")
	require.NoError(t, err)
	return reg
}

func TestNewDynamic(t *testing.T) {
	tests := []struct {
		name     string
		events   []string
		wantErr  errors.ErrorCode
		wantLen  int
	}{
		{
			name:    "distinct names",
			events:  []string{"foo", "bar", "baz"},
			wantLen: 3,
		},
		{
			name:    "single event",
			events:  []string{"only"},
			wantLen: 1,
		},
		{
			name:    "empty set",
			events:  nil,
			wantErr: errors.ErrInvalidInput,
		},
		{
			name:    "empty name",
			events:  []string{"foo", ""},
			wantErr: errors.ErrInvalidInput,
		},
		{
			name:    "duplicate name",
			events:  []string{"foo", "bar", "foo"},
			wantErr: errors.ErrDuplicateEvent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := events.NewDynamic(tt.events...)

			if tt.wantErr != "" {
				assert.True(t, errors.IsErrorCode(err, tt.wantErr),
					"want code %s, got %v", tt.wantErr, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, reg.Len())
		})
	}
}

func TestDynamicTriggerEmptyIsNoOp(t *testing.T) {
	reg := newDemoDynamic(t)

	require.NoError(t, reg.Trigger("foo"))
	require.NoError(t, reg.Trigger("bar"))
	require.NoError(t, reg.Trigger("baz"))
}

func TestDynamicTriggerOrder(t *testing.T) {
	reg := newDemoDynamic(t)

	var got []int
	require.NoError(t, reg.On("foo", func() { got = append(got, 1) }))
	require.NoError(t, reg.On("foo", func() { got = append(got, 2) }))
	require.NoError(t, reg.On("foo", func() { got = append(got, 3) }))

	require.NoError(t, reg.Trigger("foo"))

	assert.Equal(t, []int{1, 2, 3}, got, "callbacks must fire in registration order, once each")
}

func TestDynamicRepeatedTrigger(t *testing.T) {
	reg := newDemoDynamic(t)

	var got []int
	require.NoError(t, reg.On("bar", func() { got = append(got, 1) }))
	require.NoError(t, reg.On("bar", func() { got = append(got, 2) }))

	require.NoError(t, reg.Trigger("bar"))
	require.NoError(t, reg.Trigger("bar"))

	assert.Equal(t, []int{1, 2, 1, 2}, got, "each trigger runs the full list in the same order")
}

func TestDynamicRegistrationBetweenTriggers(t *testing.T) {
	reg := newDemoDynamic(t)

	count := 0
	require.NoError(t, reg.On("foo", func() { count++ }))
	require.NoError(t, reg.Trigger("foo"))
	assert.Equal(t, 1, count)

	require.NoError(t, reg.On("foo", func() { count += 10 }))
	require.NoError(t, reg.Trigger("foo"))
	assert.Equal(t, 12, count)
}

func TestDynamicEquivalenceScenario(t *testing.T) {
	reg := newDemoDynamic(t)

	fooCount := 0
	barCount := 0
	bazCount := 0
	require.NoError(t, reg.On("foo", func() { fooCount++ }))
	require.NoError(t, reg.On("foo", func() { fooCount++ }))
	require.NoError(t, reg.On("bar", func() { barCount++ }))
	require.NoError(t, reg.On("baz", func() { bazCount++ }))

	require.NoError(t, reg.Trigger("foo"))
	require.NoError(t, reg.Trigger("bar"))
	require.NoError(t, reg.Trigger("foo"))

	assert.Equal(t, 4, fooCount, "two foo callbacks, triggered twice")
	assert.Equal(t, 1, barCount)
	assert.Equal(t, 0, bazCount, "baz was never triggered")
}

func TestDynamicUnknownEvent(t *testing.T) {
	t.Run("on unknown event", func(t *testing.T) {
		reg := newDemoDynamic(t)

		err := reg.On("unknown", func() {})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownEvent))
		assert.ErrorContains(t, err, "trying to add a callback to an unknown event")
	})

	t.Run("trigger unknown event", func(t *testing.T) {
		reg := newDemoDynamic(t)

		fired := false
		require.NoError(t, reg.On("foo", func() { fired = true }))

		err := reg.Trigger("unknown")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownEvent))
		assert.ErrorContains(t, err, "trying to trigger an unknown event")
		assert.False(t, fired, "no callback anywhere may run on an unknown-event trigger")
	})
}

func TestDynamicMustHelpers(t *testing.T) {
	reg := newDemoDynamic(t)

	count := 0
	assert.NotPanics(t, func() { events.MustOn(reg, "foo", func() { count++ }) })
	assert.NotPanics(t, func() { events.MustTrigger(reg, "foo") })
	assert.Equal(t, 1, count)

	assert.Panics(t, func() { events.MustOn(reg, "unknown", func() {}) })
	assert.Panics(t, func() { events.MustTrigger(reg, "unknown") })
}

func TestDynamicHasAndEvents(t *testing.T) {
	reg := newDemoDynamic(t)

	assert.True(t, reg.Has("foo"))
	assert.False(t, reg.Has("qux"))
	assert.Equal(t, []string{"bar", "baz", "foo"}, reg.Events())
}
