// Package prayer handles prayer requests: submission and the public and answered walls.
package prayer

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/FidelisKagashe26/godcares/core"
	"github.com/FidelisKagashe26/godcares/core/view"
)

type Request struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Request     string     `json:"request"`
	IsAnonymous bool       `json:"is_anonymous"`
	IsAnswered  bool       `json:"is_answered"`
	Testimony   string     `json:"testimony,omitempty"`
	PrayerCount int        `json:"prayer_count"`
	CreatedAt   time.Time  `json:"created_at"`
	AnsweredAt  *time.Time `json:"answered_at,omitempty"`
}

// DisplayName hides the name of anonymous requests.
func (r Request) DisplayName() string {
	if r.IsAnonymous || r.Name == "" {
		return "Asiyejulikana"
	}
	return r.Name
}

// NewRequest contains information needed to submit a prayer request.
type NewRequest struct {
	Name        string `json:"name" validate:"max=120"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       string `json:"phone,omitempty" validate:"omitempty,min=9,max=20"`
	Category    string `json:"category,omitempty" validate:"max=60"`
	Request     string `json:"request" validate:"required,notblank,max=2000"`
	IsAnonymous bool   `json:"is_anonymous"`
	IsPublic    bool   `json:"is_public"`
}

func (nr *NewRequest) Validate() error {
	nr.Name = core.CleanString(nr.Name)
	nr.Email = core.CleanString(nr.Email, true /* lower */)
	nr.Phone = core.CleanString(nr.Phone)
	nr.Category = core.CleanString(nr.Category)
	nr.Request = core.CleanString(nr.Request)
	if nr.IsAnonymous {
		nr.Name = ""
	}
	return core.Validate.Struct(nr)
}

// newRequestStructLevelValidation requires a name unless the request is anonymous.
func newRequestStructLevelValidation(sl validator.StructLevel) {
	nr := sl.Current().Interface().(NewRequest)
	if !nr.IsAnonymous && nr.Name == "" {
		sl.ReportError(nr.Name, "name", "Name", "required", "")
	}
}

func init() {
	core.Validate.RegisterStructValidation(newRequestStructLevelValidation, NewRequest{})
}

type QueryFilter struct {
	Tab    string `query:"tab"`
	Search string `query:"q"`
}

type (
	Repository interface {
		Create(ctx context.Context, nr NewRequest) (Request, error)
		QueryPublic(ctx context.Context) ([]Request, error)
		QueryAnswered(ctx context.Context) ([]Request, error)
	}

	Service interface {
		Create(ctx context.Context, nr NewRequest) (Request, error)
		Public(ctx context.Context, filter QueryFilter) ([]Request, error)
		Answered(ctx context.Context, filter QueryFilter) ([]Request, error)
	}

	service struct {
		repo Repository
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (svc *service) Create(ctx context.Context, nr NewRequest) (Request, error) {
	if err := nr.Validate(); err != nil {
		return Request{}, err
	}
	req, err := svc.repo.Create(ctx, nr)
	if err != nil {
		return Request{}, errors.Wrap(err, "creating prayer request")
	}
	return req, nil
}

func (svc *service) Public(ctx context.Context, filter QueryFilter) ([]Request, error) {
	reqs, err := svc.repo.QueryPublic(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying public prayers")
	}
	return filterRequests(reqs, filter), nil
}

func (svc *service) Answered(ctx context.Context, filter QueryFilter) ([]Request, error) {
	reqs, err := svc.repo.QueryAnswered(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying answered prayers")
	}
	return filterRequests(reqs, filter), nil
}

func filterRequests(reqs []Request, filter QueryFilter) []Request {
	return view.Filter(reqs, func(r Request) bool {
		return view.MatchesTab(filter.Tab, r.Category) && core.MatchAny(filter.Search, r.Request, r.Category, r.DisplayName())
	})
}
