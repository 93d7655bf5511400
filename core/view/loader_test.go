package view

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Mount(t *testing.T) {
	release := make(chan struct{})
	l := new(Loader[int])
	l.Mount(context.Background(), func(ctx context.Context) ([]int, error) {
		<-release
		return []int{1, 2, 3}, nil
	})

	assert.True(t, l.State().Loading, "pending fetch exposes the loading flag")

	close(release)
	st := l.Wait(context.Background())
	assert.False(t, st.Loading)
	assert.Equal(t, []int{1, 2, 3}, st.Items)
}

func TestLoader_UnmountDiscardsLateResult(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	l := new(Loader[int])
	l.Mount(context.Background(), func(ctx context.Context) ([]int, error) {
		close(started)
		<-release
		return []int{42}, nil
	})
	<-started

	l.Unmount()
	close(release)
	st := l.Wait(context.Background())
	assert.True(t, st.Loading, "a result settling after unmount must not be stored")
	assert.Empty(t, st.Items)
}

func TestLoader_UnmountCancelsFetch(t *testing.T) {
	cancelled := make(chan struct{})
	l := new(Loader[int])
	l.Mount(context.Background(), func(ctx context.Context) ([]int, error) {
		<-ctx.Done()
		close(cancelled)
		return nil, ctx.Err()
	})
	l.Unmount()

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("fetch context was not cancelled on unmount")
	}
}

func TestLoader_Remount(t *testing.T) {
	first := make(chan struct{})
	l := new(Loader[string])
	l.Mount(context.Background(), func(ctx context.Context) ([]string, error) {
		<-first
		return []string{"old"}, nil
	})
	l.Mount(context.Background(), func(ctx context.Context) ([]string, error) {
		return []string{"new"}, nil
	})
	st := l.Wait(context.Background())
	close(first)

	require.False(t, st.Loading)
	assert.Equal(t, []string{"new"}, st.Items)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, []string{"new"}, l.State().Items, "the stale fetch never overwrites the newer one")
}

func TestPage_SiblingsAreIndependent(t *testing.T) {
	page := NewPage(context.Background())
	ok := Section(page, func(context.Context) ([]string, error) { return []string{"habari"}, nil })
	failing := Section(page, func(context.Context) ([]int, error) { return nil, errors.New("boom") })
	empty := Section(page, func(context.Context) ([]float64, error) { return []float64{}, nil })
	page.Wait()

	assert.Equal(t, []string{"habari"}, ok.Items)
	assert.Empty(t, ok.Error)

	assert.Equal(t, GenericErrorMessage, failing.Error)
	assert.Empty(t, failing.Items)

	assert.True(t, empty.Empty)
	assert.Empty(t, empty.Error)
}
