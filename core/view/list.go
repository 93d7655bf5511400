// Package view holds the page-state primitives shared by every portal module:
// list state, mount-scoped loaders, submission state and named-stage wizards.
package view

import (
	"context"
	"strings"

	"github.com/FidelisKagashe26/godcares/core"
)

const (
	// GenericErrorMessage is shown for any failed fetch without a `detail`.
	GenericErrorMessage = "Imeshindwa kupakia taarifa. Tafadhali jaribu tena baadaye."

	// TabAll and TabAllEn select the unfiltered set.
	TabAll   = "Zote"
	TabAllEn = "All"
)

// ListState is what a list page renders: a loading flag, the cached items,
// an inline error message or the "no data" state.
type ListState[T any] struct {
	Loading bool   `json:"loading"`
	Items   []T    `json:"items"`
	Error   string `json:"error,omitempty"`
	Empty   bool   `json:"empty"`
}

// Fetcher issues the GET backing a list.
type Fetcher[T any] func(ctx context.Context) ([]T, error)

func Loading[T any]() ListState[T] {
	return ListState[T]{Loading: true, Items: []T{}}
}

func Loaded[T any](items []T) ListState[T] {
	if items == nil {
		items = []T{}
	}
	return ListState[T]{Items: items, Empty: len(items) == 0}
}

// Failed never carries items: a failed fetch leaves the list empty.
func Failed[T any](err error) ListState[T] {
	return ListState[T]{Items: []T{}, Error: ErrorMessage(err)}
}

func FromResult[T any](items []T, err error) ListState[T] {
	if err != nil {
		return Failed[T](err)
	}
	return Loaded(items)
}

// Load runs fetch synchronously.
func Load[T any](ctx context.Context, fetch Fetcher[T]) ListState[T] {
	return FromResult(fetch(ctx))
}

// Filter narrows the cached items. Error and loading states pass through untouched.
func (s ListState[T]) Filter(keep func(T) bool) ListState[T] {
	if s.Loading || s.Error != "" {
		return s
	}
	return Loaded(Filter(s.Items, keep))
}

// ErrorMessage is the human-readable text shown for err.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if apiErr, ok := core.AsAPIError(err); ok && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return GenericErrorMessage
}

// Filter returns the items for which keep is true, preserving order.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// IsAllTab reports whether tab selects the full unfiltered set.
func IsAllTab(tab string) bool {
	tab = core.CleanString(tab)
	return tab == "" || strings.EqualFold(tab, TabAll) || strings.EqualFold(tab, TabAllEn)
}

// MatchesTab reports whether an item whose category (or type) is value belongs to tab.
func MatchesTab(tab, value string) bool {
	if IsAllTab(tab) {
		return true
	}
	return value == core.CleanString(tab)
}
