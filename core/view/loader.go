package view

import (
	"context"
	"sync"
)

// Loader owns the list state of one mounted page component.
// A fetch that settles after Unmount (or after a newer Mount) is discarded.
type Loader[T any] struct {
	mu     sync.Mutex
	state  ListState[T]
	gen    uint64
	cancel context.CancelFunc
	done   chan struct{}
}

// Mount starts fetch in the background; the state is Loading until it settles.
func (l *Loader[T]) Mount(ctx context.Context, fetch Fetcher[T]) {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	l.gen++
	gen := l.gen
	l.cancel = cancel
	l.state = Loading[T]()
	done := make(chan struct{})
	l.done = done
	l.mu.Unlock()

	go func() {
		defer close(done)
		items, err := fetch(ctx)

		l.mu.Lock()
		defer l.mu.Unlock()
		if gen != l.gen || ctx.Err() != nil {
			return
		}
		l.state = FromResult(items, err)
	}()
}

// Unmount cancels any in-flight fetch.
func (l *Loader[T]) Unmount() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.gen++
}

func (l *Loader[T]) State() ListState[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Wait blocks until the current fetch settles or ctx is done, then returns the state.
func (l *Loader[T]) Wait(ctx context.Context) ListState[T] {
	l.mu.Lock()
	done := l.done
	l.mu.Unlock()

	if done != nil {
		select {
		case <-done:
		case <-ctx.Done():
		}
	}
	return l.State()
}

// Page mounts independent components side by side.
// A failing component never blocks or fails its siblings.
type Page struct {
	ctx      context.Context
	waiters  []func(ctx context.Context)
	unmounts []func()
}

func NewPage(ctx context.Context) *Page {
	return &Page{ctx: ctx}
}

// Section mounts a list component on the page and returns a pointer to the settled state,
// valid once Wait has returned.
func Section[T any](p *Page, fetch Fetcher[T]) *ListState[T] {
	l := new(Loader[T])
	l.Mount(p.ctx, fetch)

	st := new(ListState[T])
	*st = Loading[T]()
	p.waiters = append(p.waiters, func(ctx context.Context) { *st = l.Wait(ctx) })
	p.unmounts = append(p.unmounts, l.Unmount)
	return st
}

// Wait waits for every section, then unmounts them.
func (p *Page) Wait() {
	for _, wait := range p.waiters {
		wait(p.ctx)
	}
	for _, unmount := range p.unmounts {
		unmount()
	}
}
