package news

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/FidelisKagashe26/godcares/core"
)

type fakeRepo struct {
	items []Item
	views map[int]int
	subs  []Subscription
}

func (r *fakeRepo) QueryItems(context.Context) ([]Item, error) { return r.items, nil }

func (r *fakeRepo) RecordView(_ context.Context, id int) (int, error) {
	if _, ok := r.views[id]; !ok {
		return 0, &core.APIError{Status: 404, Detail: "Not found."}
	}
	r.views[id]++
	return r.views[id], nil
}

func (r *fakeRepo) Subscribe(_ context.Context, s Subscription) error {
	r.subs = append(r.subs, s)
	return nil
}

func TestApplyViewCount(t *testing.T) {
	items := []Item{{ID: 1, Views: 10}, {ID: 2, Views: 5}}
	got := ApplyViewCount(items, 2, 6)
	assert.Equal(t, []Item{{ID: 1, Views: 10}, {ID: 2, Views: 6}}, got)
	assert.Equal(t, 5, items[1].Views, "the input list is untouched")
}

func TestService(t *testing.T) {
	repo := &fakeRepo{
		items: []Item{
			{ID: 1, Title: "Mkutano wa injili Dodoma", Category: "Matukio"},
			{ID: 2, Title: "Kambi ya vijana", Category: "Vijana"},
		},
		views: map[int]int{1: 10},
	}
	svc := NewService(repo)
	ctx := context.Background()

	got, err := svc.Items(ctx, QueryFilter{Tab: "Vijana"})
	assert.NoError(t, err)
	assert.Equal(t, []Item{repo.items[1]}, got)

	got, _ = svc.Items(ctx, QueryFilter{Tab: "All", Search: "dodoma"})
	assert.Equal(t, []Item{repo.items[0]}, got)

	views, err := svc.RecordView(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, 11, views)

	_, err = svc.RecordView(ctx, 3)
	apiErr, ok := core.AsAPIError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, apiErr.Status)
	assert.Contains(t, errors.Cause(err).Error(), "Not found.")
}

func TestService_Subscribe(t *testing.T) {
	tests := []struct {
		name    string
		sub     Subscription
		wantErr bool
	}{
		{name: "valid", sub: Subscription{Email: " Juma@Example.com "}},
		{name: "missing email", sub: Subscription{Name: "Juma"}, wantErr: true},
		{name: "bad email", sub: Subscription{Email: "juma"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			err := NewService(repo).Subscribe(context.Background(), tt.sub)
			if (err != nil) != tt.wantErr {
				t.Errorf("Subscribe() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && repo.subs[0].Email != "juma@example.com" {
				t.Errorf("Subscribe() sent email %q", repo.subs[0].Email)
			}
		})
	}
}
