package backend

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestDiscardsSupersededResult(t *testing.T) {
	var l Latest[string, string]
	started := make(chan struct{})
	release := make(chan struct{})

	type outcome struct {
		value string
		err   error
	}
	first := make(chan outcome, 1)
	go func() {
		v, err := l.Do(context.Background(), "app-1", func(ctx context.Context) (string, error) {
			close(started)
			<-release
			return "slow", nil
		})
		first <- outcome{v, err}
	}()
	<-started

	v, err := l.Do(context.Background(), "app-2", func(ctx context.Context) (string, error) {
		return "fast", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "fast", v)

	close(release)
	got := <-first
	assert.True(t, errors.Is(got.err, ErrSuperseded))
	assert.Empty(t, got.value)
}

func TestLatestCancelsPreviousContext(t *testing.T) {
	var l Latest[string, int]
	started := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		_, err := l.Do(context.Background(), "a", func(ctx context.Context) (int, error) {
			close(started)
			<-ctx.Done()
			return 0, ctx.Err()
		})
		done <- err
	}()
	<-started

	key, pending := l.Pending()
	assert.True(t, pending)
	assert.Equal(t, "a", key)

	_, err := l.Do(context.Background(), "b", func(ctx context.Context) (int, error) { return 1, nil })
	require.NoError(t, err)
	assert.True(t, errors.Is(<-done, ErrSuperseded))

	_, pending = l.Pending()
	assert.False(t, pending)
}

func TestLatestDeliversErrorsOfCurrentCall(t *testing.T) {
	var l Latest[string, int]
	boom := errors.New("boom")
	_, err := l.Do(context.Background(), "a", func(ctx context.Context) (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)
}

func TestLatestCancel(t *testing.T) {
	var l Latest[string, int]
	started := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		_, err := l.Do(context.Background(), "a", func(ctx context.Context) (int, error) {
			close(started)
			<-ctx.Done()
			return 0, ctx.Err()
		})
		done <- err
	}()
	<-started
	l.Cancel()
	assert.ErrorIs(t, <-done, ErrSuperseded)
}

func TestLatestStartOrderDecidesWinner(t *testing.T) {
	var l Latest[string, string]
	a := l.Start(context.Background(), "a")
	b := l.Start(context.Background(), "b")

	assert.ErrorIs(t, a.Context().Err(), context.Canceled)

	_, err := a.Finish("a", nil)
	assert.ErrorIs(t, err, ErrSuperseded)

	got, err := b.Finish("b", nil)
	require.NoError(t, err)
	assert.Equal(t, "b", got)

	_, pending := l.Pending()
	assert.False(t, pending)
}
