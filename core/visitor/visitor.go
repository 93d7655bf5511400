// Package visitor tracks anonymous portal visitors and their "welcome popup seen" flag.
package visitor

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/FidelisKagashe26/godcares/core"
)

var NowFunc = time.Now // mockable

type Visitor struct {
	ID          string     `json:"id"`
	WelcomeSeen bool       `json:"welcome_seen"`
	SeenAt      *time.Time `json:"seen_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	LastSeenAt  time.Time  `json:"last_seen_at"`
}

type (
	Repository interface {
		CreateVisitor(ctx context.Context, v Visitor) (Visitor, error)
		// GetVisitor returns core.ErrNotFound for an unknown id.
		GetVisitor(ctx context.Context, id string) (Visitor, error)
		UpdateVisitor(ctx context.Context, v Visitor) (Visitor, error)
	}

	Service interface {
		New(ctx context.Context) (Visitor, error)
		Get(ctx context.Context, id string) (Visitor, error)
		// WelcomeSeen reads the flag, registering the visitor on first read.
		WelcomeSeen(ctx context.Context, id string) (bool, error)
		DismissWelcome(ctx context.Context, id string) (Visitor, error)
		ResetWelcome(ctx context.Context, id string) error
	}

	service struct {
		repo Repository
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func (svc *service) New(ctx context.Context) (Visitor, error) {
	now := NowFunc().UTC()
	v, err := svc.repo.CreateVisitor(ctx, Visitor{ID: uuid.New().String(), CreatedAt: now, LastSeenAt: now})
	if err != nil {
		return Visitor{}, errors.Wrap(err, "creating visitor")
	}
	return v, nil
}

func (svc *service) Get(ctx context.Context, id string) (Visitor, error) {
	if !ValidID(id) {
		return Visitor{}, core.ErrNotFound
	}
	return svc.repo.GetVisitor(ctx, id)
}

// getOrCreate registers ids minted by a previous process (the token outlives the store).
func (svc *service) getOrCreate(ctx context.Context, id string) (Visitor, error) {
	if !ValidID(id) {
		return Visitor{}, core.NewValidationError(nil, core.FieldError{Field: "visitor", Error: "invalid visitor id"})
	}
	v, err := svc.repo.GetVisitor(ctx, id)
	if err == nil {
		return v, nil
	}
	if errors.Cause(err) != core.ErrNotFound {
		return Visitor{}, errors.Wrap(err, "getting visitor")
	}
	now := NowFunc().UTC()
	v, err = svc.repo.CreateVisitor(ctx, Visitor{ID: id, CreatedAt: now, LastSeenAt: now})
	if err != nil {
		return Visitor{}, errors.Wrap(err, "creating visitor")
	}
	return v, nil
}

func (svc *service) WelcomeSeen(ctx context.Context, id string) (bool, error) {
	v, err := svc.getOrCreate(ctx, id)
	if err != nil {
		return false, err
	}
	return v.WelcomeSeen, nil
}

func (svc *service) DismissWelcome(ctx context.Context, id string) (Visitor, error) {
	v, err := svc.getOrCreate(ctx, id)
	if err != nil {
		return Visitor{}, err
	}
	now := NowFunc().UTC()
	v.LastSeenAt = now
	if !v.WelcomeSeen {
		v.WelcomeSeen = true
		v.SeenAt = &now
	}
	if v, err = svc.repo.UpdateVisitor(ctx, v); err != nil {
		return Visitor{}, errors.Wrap(err, "dismissing welcome")
	}
	return v, nil
}

func (svc *service) ResetWelcome(ctx context.Context, id string) error {
	v, err := svc.Get(ctx, id)
	if err != nil {
		return err
	}
	v.WelcomeSeen = false
	v.SeenAt = nil
	if _, err = svc.repo.UpdateVisitor(ctx, v); err != nil {
		return errors.Wrap(err, "resetting welcome")
	}
	return nil
}
