package testimony

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FidelisKagashe26/godcares/core"
)

type fakeRepo struct {
	items   []Testimony
	created []NewTestimony
	reacted []string
}

func (r *fakeRepo) QueryTestimonies(context.Context) ([]Testimony, error) { return r.items, nil }

func (r *fakeRepo) Create(_ context.Context, nt NewTestimony) (Testimony, error) {
	r.created = append(r.created, nt)
	return Testimony{ID: 10, Name: nt.Name, Title: nt.Title, Story: nt.Story}, nil
}

func (r *fakeRepo) React(_ context.Context, id int, kind string) (map[string]int, error) {
	r.reacted = append(r.reacted, kind)
	return map[string]int{kind: 3}, nil
}

func TestApplyReaction(t *testing.T) {
	items := []Testimony{
		{ID: 1, Reactions: map[string]int{ReactionAmen: 1}},
		{ID: 2, Reactions: map[string]int{ReactionPray: 4}},
	}
	counts := map[string]int{ReactionAmen: 2, ReactionLove: 1}

	got := ApplyReaction(items, 1, counts)
	assert.Equal(t, map[string]int{ReactionAmen: 2, ReactionLove: 1}, got[0].Reactions)
	assert.Equal(t, map[string]int{ReactionPray: 4}, got[1].Reactions)

	assert.Equal(t, map[string]int{ReactionAmen: 1}, items[0].Reactions, "the input list is untouched")

	counts[ReactionAmen] = 99
	assert.Equal(t, 2, got[0].Reactions[ReactionAmen], "the merged counts are a copy")

	same := ApplyReaction(items, 42, counts)
	assert.Equal(t, items, same)
}

func TestNewTestimony_Validate(t *testing.T) {
	valid := func() NewTestimony {
		return NewTestimony{Name: "Neema", Title: "Nimeponywa", Story: "Mungu ni mwema."}
	}
	tests := []struct {
		name      string
		mutate    func(*NewTestimony)
		wantField string
	}{
		{name: "valid", mutate: func(*NewTestimony) {}},
		{name: "missing name", mutate: func(nt *NewTestimony) { nt.Name = "  " }, wantField: "name"},
		{name: "missing story", mutate: func(nt *NewTestimony) { nt.Story = "" }, wantField: "story"},
		{name: "bad video url", mutate: func(nt *NewTestimony) { nt.VideoURL = "not a url" }, wantField: "video_url"},
		{
			name: "video not a video",
			mutate: func(nt *NewTestimony) {
				nt.Video = &core.Upload{Field: "video", Filename: "a.pdf", ContentType: "application/pdf", Data: []byte("%PDF")}
			},
			wantField: "video",
		},
		{
			name: "video too large",
			mutate: func(nt *NewTestimony) {
				nt.Video = &core.Upload{Field: "video", ContentType: "video/mp4", Data: make([]byte, MaxVideoSize+1)}
			},
			wantField: "video",
		},
		{
			name: "video ok",
			mutate: func(nt *NewTestimony) {
				nt.Video = &core.Upload{Field: "video", Filename: "a.mp4", ContentType: "video/mp4", Data: []byte{0, 0, 0, 1}}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nt := valid()
			tt.mutate(&nt)
			err := nt.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			fields, ok := core.FieldErrors(err)
			require.True(t, ok, "error = %v", err)
			assert.Contains(t, fields, tt.wantField)
		})
	}
}

func TestNewTestimony_Fields(t *testing.T) {
	nt := NewTestimony{Name: "Neema", Title: "T", Story: "S", Location: "Arusha"}
	assert.Equal(t, map[string]string{"name": "Neema", "title": "T", "story": "S", "location": "Arusha"}, nt.Fields())
}

func TestService(t *testing.T) {
	repo := &fakeRepo{items: []Testimony{
		{ID: 1, Name: "Neema", Title: "Uponyaji", Category: "Uponyaji"},
		{ID: 2, Name: "Baraka", Title: "Kazi mpya", Category: "Riziki"},
	}}
	svc := NewService(repo)
	ctx := context.Background()

	got, err := svc.Testimonies(ctx, QueryFilter{Tab: "Riziki"})
	assert.NoError(t, err)
	assert.Equal(t, []Testimony{repo.items[1]}, got)

	got, _ = svc.Testimonies(ctx, QueryFilter{Search: "neema"})
	assert.Equal(t, []Testimony{repo.items[0]}, got)

	counts, err := svc.React(ctx, 1, Reaction{Kind: " AMEN "})
	assert.NoError(t, err)
	assert.Equal(t, map[string]int{ReactionAmen: 3}, counts)

	_, err = svc.React(ctx, 1, Reaction{Kind: "like"})
	fields, ok := core.FieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fields, "reaction_type")
	assert.Equal(t, []string{ReactionAmen}, repo.reacted)

	_, err = svc.Create(ctx, NewTestimony{Name: "Neema"})
	assert.Error(t, err)
	created, err := svc.Create(ctx, NewTestimony{Name: " Neema ", Title: "T", Story: "S"})
	assert.NoError(t, err)
	assert.Equal(t, "Neema", created.Name)
	assert.Len(t, repo.created, 1)
}
