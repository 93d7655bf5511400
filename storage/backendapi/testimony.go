package backendapi

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"

	"github.com/FidelisKagashe26/godcares/core/testimony"
)

type testimonyRepository struct{ c *Client }

func NewTestimonyRepository(c *Client) testimony.Repository { return &testimonyRepository{c: c} }

func (repo *testimonyRepository) QueryTestimonies(ctx context.Context) ([]testimony.Testimony, error) {
	var items []testimony.Testimony
	if err := repo.c.getList(ctx, "/api/testimonies/", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Create posts JSON, or multipart/form-data when a video file is attached.
func (repo *testimonyRepository) Create(ctx context.Context, nt testimony.NewTestimony) (testimony.Testimony, error) {
	var t testimony.Testimony
	var err error
	if nt.Video.Empty() {
		err = repo.c.post(ctx, "/api/testimonies/", nt, &t)
	} else {
		video := *nt.Video
		video.Field = "video"
		err = repo.c.postMultipart(ctx, "/api/testimonies/", nt.Fields(), &video, &t)
	}
	if err != nil {
		return testimony.Testimony{}, err
	}
	return t, nil
}

// React accepts either the full testimony, {"reactions": {...}}, or a bare counts object.
func (repo *testimonyRepository) React(ctx context.Context, id int, kind string) (map[string]int, error) {
	path := fmt.Sprintf("/api/testimonies/%d/react/", id)
	var raw json.RawMessage
	if err := repo.c.post(ctx, path, testimony.Reaction{Kind: kind}, &raw); err != nil {
		return nil, err
	}

	var wrapped struct {
		Reactions map[string]int `json:"reactions"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Reactions != nil {
		return wrapped.Reactions, nil
	}
	var counts map[string]int
	if err := json.Unmarshal(raw, &counts); err != nil {
		return nil, errors.Wrapf(err, "decoding %s response", path)
	}
	return counts, nil
}
