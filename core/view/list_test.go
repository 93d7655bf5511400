package view

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FidelisKagashe26/godcares/core"
)

type item struct {
	Title    string
	Category string
}

func TestFromResult(t *testing.T) {
	tests := []struct {
		name      string
		items     []item
		err       error
		wantEmpty bool
		wantErr   string
		wantLen   int
	}{
		{name: "nil list", wantEmpty: true},
		{name: "empty list", items: []item{}, wantEmpty: true},
		{name: "items", items: []item{{Title: "a"}, {Title: "b"}}, wantLen: 2},
		{name: "network error", err: errors.New("dial tcp: refused"), wantErr: GenericErrorMessage},
		{name: "api error without detail", err: &core.APIError{Status: 500, Path: "/api/news/"}, wantErr: GenericErrorMessage},
		{name: "api error with detail", err: &core.APIError{Status: 503, Detail: "Huduma haipatikani"}, wantErr: "Huduma haipatikani"},
		{
			name: "items are dropped on error", items: []item{{Title: "stale"}},
			err: &core.APIError{Status: 404}, wantErr: GenericErrorMessage,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := FromResult(tt.items, tt.err)
			assert.False(t, st.Loading)
			assert.Equal(t, tt.wantEmpty, st.Empty)
			assert.Equal(t, tt.wantErr, st.Error)
			assert.NotNil(t, st.Items)
			assert.Len(t, st.Items, tt.wantLen)
		})
	}
}

func TestLoad(t *testing.T) {
	st := Load(context.Background(), func(context.Context) ([]item, error) {
		return []item{{Title: "x"}}, nil
	})
	assert.Equal(t, ListState[item]{Items: []item{{Title: "x"}}}, st)
}

func TestMatchesTab(t *testing.T) {
	tests := []struct {
		tab, value string
		want       bool
	}{
		{tab: "", value: "Afya", want: true},
		{tab: "Zote", value: "Afya", want: true},
		{tab: "zote", value: "Afya", want: true},
		{tab: "All", value: "", want: true},
		{tab: "Afya", value: "Afya", want: true},
		{tab: " Afya ", value: "Afya", want: true},
		{tab: "Afya", value: "Imani", want: false},
		{tab: "Afya", value: "afya", want: false},
	}
	for _, tt := range tests {
		if got := MatchesTab(tt.tab, tt.value); got != tt.want {
			t.Errorf("MatchesTab(%q, %q) = %v, want %v", tt.tab, tt.value, got, tt.want)
		}
	}
}

func TestListState_Filter(t *testing.T) {
	items := []item{
		{Title: "Maombi ya asubuhi", Category: "Maombi"},
		{Title: "Historia ya kanisa", Category: "Historia"},
		{Title: "Maombi ya jioni", Category: "Maombi"},
	}
	byTab := func(tab string) func(item) bool {
		return func(it item) bool { return MatchesTab(tab, it.Category) }
	}

	st := Loaded(items)
	assert.Equal(t, items, st.Filter(byTab(TabAll)).Items, "the All tab keeps the full set")
	assert.Equal(t, []item{items[0], items[2]}, st.Filter(byTab("Maombi")).Items)

	none := st.Filter(byTab("Sayansi"))
	assert.True(t, none.Empty)
	assert.Empty(t, none.Items)

	failed := Failed[item](errors.New("boom"))
	assert.Equal(t, failed, failed.Filter(byTab("Maombi")), "errors pass through")

	search := st.Filter(func(it item) bool { return core.MatchAny("JIONI", it.Title, it.Category) })
	assert.Equal(t, []item{items[2]}, search.Items)
}
