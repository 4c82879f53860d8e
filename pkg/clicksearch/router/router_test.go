package router

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouter_NoScreenRegistered(t *testing.T) {
	r := New()

	err := r.Run(context.Background())
	assert.ErrorIs(t, err, ErrNoScreen)
}

func TestRouter_ScreenErrorIsWrapped(t *testing.T) {
	boom := errors.New("boom")
	r := New().Register(KindMain, func(context.Context, Entry) (Outcome, error) {
		return Outcome{}, boom
	})

	err := r.Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "main")
}

func TestRouter_BackAtRootWithoutHookStops(t *testing.T) {
	calls := 0
	r := New().Register(KindMain, func(context.Context, Entry) (Outcome, error) {
		calls++
		return Back(), nil
	})

	require.NoError(t, r.Run(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestRouter_RootBackHookCanDecline(t *testing.T) {
	calls := 0
	asked := 0
	r := New().
		Register(KindMain, func(context.Context, Entry) (Outcome, error) {
			calls++
			return Back(), nil
		}).
		OnRootBack(func() bool {
			asked++
			return asked == 2
		})

	require.NoError(t, r.Run(context.Background()))
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, asked)
}

func TestRouter_NavigateWithoutRoute(t *testing.T) {
	r := New().Register(KindMain, func(context.Context, Entry) (Outcome, error) {
		return Outcome{Action: ActionNavigate}, nil
	})

	assert.Error(t, r.Run(context.Background()))
}

func TestRouter_ResumeStateRoundTrip(t *testing.T) {
	visits := 0
	var restored any

	r := New()
	r.Register(KindMain, func(_ context.Context, e Entry) (Outcome, error) {
		visits++
		if visits == 1 {
			return Navigate(DetailRoute{Name: "Peter"}, selectOpts, "pe"), nil
		}
		restored = e.State
		return Exit(), nil
	})
	r.Register(KindDetail, func(context.Context, Entry) (Outcome, error) {
		return Back(), nil
	})

	require.NoError(t, r.Run(context.Background()))
	assert.Equal(t, "pe", restored)
	assert.Equal(t, 1, r.Navigator().Depth())
}

func TestRouter_StopsWhenContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	r := New().Register(KindMain, func(context.Context, Entry) (Outcome, error) {
		cancel()
		return Navigate(DetailRoute{Name: "John"}, selectOpts, nil), nil
	})

	err := r.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, r.Navigator().Depth())
}
