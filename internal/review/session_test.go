package review

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruit-backend/internal/backend"
	"recruit-backend/internal/evaluation"
)

func TestSessionSelectStoresView(t *testing.T) {
	sess := NewSession("s-1")
	err := sess.Select(context.Background(), "app-1", func(ctx context.Context, id string) (ApplicationView, error) {
		return ApplicationView{ID: id}, nil
	})
	require.NoError(t, err)

	state := sess.State()
	assert.Equal(t, "app-1", state.SelectedApplicationID)
	assert.False(t, state.Loading)
	require.NotNil(t, state.View)
	assert.Equal(t, "app-1", state.View.ID)
	assert.Empty(t, state.Error)
}

func TestSessionDiscardsSupersededLoad(t *testing.T) {
	sess := NewSession("s-1")
	started := make(chan struct{})
	release := make(chan struct{})
	slowDone := make(chan error, 1)

	go func() {
		slowDone <- sess.Select(context.Background(), "slow", func(ctx context.Context, id string) (ApplicationView, error) {
			close(started)
			<-release
			return ApplicationView{ID: id}, nil
		})
	}()
	<-started

	err := sess.Select(context.Background(), "fast", func(ctx context.Context, id string) (ApplicationView, error) {
		return ApplicationView{ID: id}, nil
	})
	require.NoError(t, err)

	close(release)
	assert.True(t, errors.Is(<-slowDone, backend.ErrSuperseded))

	state := sess.State()
	assert.Equal(t, "fast", state.SelectedApplicationID)
	require.NotNil(t, state.View)
	assert.Equal(t, "fast", state.View.ID)
}

// pausedContext blocks the first Done call until resumed, which holds a
// Select while it registers its load.
type pausedContext struct {
	context.Context
	once    sync.Once
	entered chan struct{}
	resume  chan struct{}
}

func newPausedContext() *pausedContext {
	return &pausedContext{
		Context: context.Background(),
		entered: make(chan struct{}),
		resume:  make(chan struct{}),
	}
}

func (c *pausedContext) Done() <-chan struct{} {
	c.once.Do(func() {
		close(c.entered)
		<-c.resume
	})
	return c.Context.Done()
}

func TestSessionConcurrentSelectLoadsLastSelection(t *testing.T) {
	sess := NewSession("s-1")
	load := func(ctx context.Context, id string) (ApplicationView, error) {
		return ApplicationView{ID: id}, nil
	}

	paused := newPausedContext()
	firstDone := make(chan error, 1)
	go func() { firstDone <- sess.Select(paused, "A", load) }()
	<-paused.entered

	secondDone := make(chan error, 1)
	go func() { secondDone <- sess.Select(context.Background(), "B", load) }()
	time.Sleep(20 * time.Millisecond)
	close(paused.resume)

	firstErr := <-firstDone
	require.NoError(t, <-secondDone)
	if firstErr != nil {
		assert.ErrorIs(t, firstErr, backend.ErrSuperseded)
	}

	state := sess.State()
	assert.Equal(t, "B", state.SelectedApplicationID)
	assert.False(t, state.Loading)
	require.NotNil(t, state.View)
	assert.Equal(t, "B", state.View.ID)
}

func TestSessionFailureKeepsPreviousView(t *testing.T) {
	sess := NewSession("s-1")
	require.NoError(t, sess.Select(context.Background(), "app-1", func(ctx context.Context, id string) (ApplicationView, error) {
		return ApplicationView{ID: id}, nil
	}))

	err := sess.Select(context.Background(), "app-2", func(ctx context.Context, id string) (ApplicationView, error) {
		return ApplicationView{}, &backend.Error{Op: backend.OpGetApplicationDetails, Status: 500, Kind: backend.KindStatus}
	})
	require.Error(t, err)

	state := sess.State()
	assert.Equal(t, "지원서 정보를 불러오지 못했습니다.", state.Error)
	assert.False(t, state.Loading)
	require.NotNil(t, state.View)
	assert.Equal(t, "app-1", state.View.ID)
}

func TestSessionClearSelection(t *testing.T) {
	sess := NewSession("s-1")
	require.NoError(t, sess.Select(context.Background(), "app-1", func(ctx context.Context, id string) (ApplicationView, error) {
		return ApplicationView{ID: id}, nil
	}))
	require.NoError(t, sess.Select(context.Background(), "", nil))

	state := sess.State()
	assert.Empty(t, state.SelectedApplicationID)
	assert.Nil(t, state.View)
}

func TestSessionTab(t *testing.T) {
	sess := NewSession("s-1")
	assert.Equal(t, evaluation.CategoryInProgress, sess.State().Tab)
	sess.SetTab(evaluation.CategoryNotMet)
	assert.Equal(t, evaluation.CategoryNotMet, sess.State().Tab)
}

func TestSessionStore(t *testing.T) {
	store := NewSessionStore()
	sess := store.Create()
	assert.Equal(t, 1, store.Len())

	got, err := store.Get(sess.ID())
	require.NoError(t, err)
	assert.Same(t, sess, got)

	require.NoError(t, store.Delete(sess.ID()))
	_, err = store.Get(sess.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, store.Delete(sess.ID()), ErrSessionNotFound)
}

func TestSessionStoreEvictsIdleSessions(t *testing.T) {
	now := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	store := NewSessionStore()
	store.IdleTTL = time.Hour
	store.Now = func() time.Time { return now }

	stale := store.Create()
	now = now.Add(30 * time.Minute)
	kept := store.Create()
	now = now.Add(45 * time.Minute)

	fresh := store.Create()
	assert.Equal(t, 2, store.Len())
	_, err := store.Get(stale.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = store.Get(kept.ID())
	assert.NoError(t, err)
	_, err = store.Get(fresh.ID())
	assert.NoError(t, err)
}

func TestSessionStoreCapsSessions(t *testing.T) {
	now := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	store := NewSessionStore()
	store.MaxSessions = 2
	store.Now = func() time.Time { return now }

	oldest := store.Create()
	now = now.Add(time.Minute)
	second := store.Create()
	now = now.Add(time.Minute)
	_, err := store.Get(oldest.ID())
	require.NoError(t, err)
	now = now.Add(time.Minute)

	store.Create()
	assert.Equal(t, 2, store.Len())
	_, err = store.Get(second.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound, "least recently used session is evicted")
	_, err = store.Get(oldest.ID())
	assert.NoError(t, err)
}
