// Package testimony serves user testimonies, their submission and reactions.
package testimony

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/FidelisKagashe26/godcares/core"
	"github.com/FidelisKagashe26/godcares/core/view"
)

// Reaction kinds.
const (
	ReactionAmen   = "amen"
	ReactionPray   = "pray"
	ReactionLove   = "love"
	ReactionPraise = "praise"
)

var Reactions = []string{ReactionAmen, ReactionPray, ReactionLove, ReactionPraise}

const (
	reactionTag  = "reaction"
	reactionText = "{0} must be one of amen, pray, love, praise"

	// MaxVideoSize caps uploaded testimony videos.
	MaxVideoSize = 50 << 20
)

func init() {
	_ = core.Validate.RegisterValidation(reactionTag, reactionValidation)
	core.RegisterCustomTranslation(core.Validate, core.Translator, reactionTag, reactionText)
}

func reactionValidation(fl validator.FieldLevel) bool {
	return IsReaction(fl.Field().String())
}

func IsReaction(kind string) bool {
	for _, r := range Reactions {
		if r == kind {
			return true
		}
	}
	return false
}

type Testimony struct {
	ID        int            `json:"id"`
	Name      string         `json:"name"`
	Location  string         `json:"location"`
	Title     string         `json:"title"`
	Story     string         `json:"story"`
	Category  string         `json:"category"`
	VideoURL  string         `json:"video_url,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	Reactions map[string]int `json:"reactions"`
}

// NewTestimony contains information needed to submit a testimony.
// Submitted testimonies are reviewed before they are published.
type NewTestimony struct {
	Name     string       `json:"name" validate:"required,notblank,max=120"`
	Email    string       `json:"email,omitempty" validate:"omitempty,email"`
	Location string       `json:"location,omitempty" validate:"max=120"`
	Title    string       `json:"title" validate:"required,notblank,max=200"`
	Story    string       `json:"story" validate:"required,notblank,max=10000"`
	Category string       `json:"category,omitempty" validate:"max=60"`
	VideoURL string       `json:"video_url,omitempty" validate:"omitempty,url"`
	Video    *core.Upload `json:"-"`
}

func (nt *NewTestimony) Validate() error {
	nt.Name = core.CleanString(nt.Name)
	nt.Email = core.CleanString(nt.Email, true /* lower */)
	nt.Location = core.CleanString(nt.Location)
	nt.Title = core.CleanString(nt.Title)
	nt.Story = core.CleanString(nt.Story)
	nt.Category = core.CleanString(nt.Category)
	nt.VideoURL = core.CleanString(nt.VideoURL)
	if err := core.Validate.Struct(nt); err != nil {
		return err
	}
	if nt.Video.Empty() {
		return nil
	}
	if len(nt.Video.Data) > MaxVideoSize {
		return core.NewValidationError(nil, core.FieldError{Field: "video", Error: "video is too large"})
	}
	if ct := nt.Video.ContentType; ct != "" && !strings.HasPrefix(ct, "video/") {
		return core.NewValidationError(nil, core.FieldError{Field: "video", Error: "video must be a video file"})
	}
	return nil
}

// Fields is the multipart form representation, without the file.
func (nt NewTestimony) Fields() map[string]string {
	fields := map[string]string{
		"name":  nt.Name,
		"title": nt.Title,
		"story": nt.Story,
	}
	for k, v := range map[string]string{
		"email":     nt.Email,
		"location":  nt.Location,
		"category":  nt.Category,
		"video_url": nt.VideoURL,
	} {
		if v != "" {
			fields[k] = v
		}
	}
	return fields
}

type Reaction struct {
	Kind string `json:"reaction_type" validate:"required,reaction"`
}

type QueryFilter struct {
	Tab    string `query:"tab"`
	Search string `query:"q"`
}

type (
	Repository interface {
		QueryTestimonies(ctx context.Context) ([]Testimony, error)
		Create(ctx context.Context, nt NewTestimony) (Testimony, error)
		// React increments one reaction counter and returns the server's counts for that testimony.
		React(ctx context.Context, id int, kind string) (map[string]int, error)
	}

	Service interface {
		Testimonies(ctx context.Context, filter QueryFilter) ([]Testimony, error)
		Create(ctx context.Context, nt NewTestimony) (Testimony, error)
		React(ctx context.Context, id int, r Reaction) (map[string]int, error)
	}

	service struct {
		repo Repository
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (svc *service) Testimonies(ctx context.Context, filter QueryFilter) ([]Testimony, error) {
	items, err := svc.repo.QueryTestimonies(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying testimonies")
	}
	return view.Filter(items, func(t Testimony) bool {
		return view.MatchesTab(filter.Tab, t.Category) && core.MatchAny(filter.Search, t.Title, t.Category, t.Name)
	}), nil
}

func (svc *service) Create(ctx context.Context, nt NewTestimony) (Testimony, error) {
	if err := nt.Validate(); err != nil {
		return Testimony{}, err
	}
	t, err := svc.repo.Create(ctx, nt)
	if err != nil {
		return Testimony{}, errors.Wrap(err, "creating testimony")
	}
	return t, nil
}

func (svc *service) React(ctx context.Context, id int, r Reaction) (map[string]int, error) {
	r.Kind = core.CleanString(r.Kind, true /* lower */)
	if err := core.Validate.Struct(r); err != nil {
		return nil, err
	}
	counts, err := svc.repo.React(ctx, id, r.Kind)
	if err != nil {
		return nil, errors.Wrapf(err, "reacting %s to testimony %d", r.Kind, id)
	}
	return counts, nil
}

// ApplyReaction returns a copy of items where only testimony id takes the server's counts.
// Every other entry is left untouched.
func ApplyReaction(items []Testimony, id int, counts map[string]int) []Testimony {
	out := make([]Testimony, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		merged := make(map[string]int, len(counts))
		for k, v := range counts {
			merged[k] = v
		}
		out[i].Reactions = merged
	}
	return out
}
