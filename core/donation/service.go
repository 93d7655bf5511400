package donation

import (
	"context"
	"net/mail"

	"github.com/pkg/errors"

	"github.com/FidelisKagashe26/godcares/core"
	"github.com/FidelisKagashe26/godcares/core/view"
)

type (
	Repository interface {
		QueryProjects(ctx context.Context) ([]Project, error)
		CreateDonation(ctx context.Context, nd NewDonation) (Donation, error)
	}

	Service interface {
		Projects(ctx context.Context, filter QueryFilter) ([]ProjectView, error)
		Donate(ctx context.Context, nd NewDonation) (Donation, error)
	}

	service struct {
		repo    Repository
		mailSvc core.EmailService
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository, mailSvc core.EmailService) Service {
	return &service{repo: repo, mailSvc: mailSvc}
}

func (svc *service) Projects(ctx context.Context, filter QueryFilter) ([]ProjectView, error) {
	projects, err := svc.repo.QueryProjects(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying donation projects")
	}
	projects = view.Filter(projects, func(p Project) bool {
		return view.MatchesTab(filter.Tab, p.Category) && core.MatchAny(filter.Search, p.Title, p.Category)
	})

	views := make([]ProjectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, ProjectView{Project: p, Progress: p.Progress()})
	}
	return views, nil
}

// Donate validates nd, submits it and mails a receipt to the donor.
func (svc *service) Donate(ctx context.Context, nd NewDonation) (Donation, error) {
	if err := nd.Validate(); err != nil {
		return Donation{}, err
	}

	var projectTitle string
	if nd.ProjectID != nil {
		projects, err := svc.repo.QueryProjects(ctx)
		if err != nil {
			return Donation{}, errors.Wrap(err, "querying donation projects")
		}
		found := false
		for _, p := range projects {
			if p.ID == *nd.ProjectID {
				projectTitle, found = p.Title, true
				break
			}
		}
		if !found {
			return Donation{}, core.NewValidationError(nil, core.FieldError{Field: "project_id", Error: "unknown project"})
		}
	}

	d, err := svc.repo.CreateDonation(ctx, nd)
	if err != nil {
		return Donation{}, errors.Wrap(err, "creating donation")
	}

	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:           []mail.Address{{Name: nd.Name, Address: nd.Email}},
		Subject:      "Asante kwa mchango wako",
		TemplateName: "donation_received",
		TemplateData: map[string]interface{}{
			"Name":         nd.Name,
			"Amount":       nd.Amount,
			"Currency":     nd.Currency,
			"ProjectTitle": projectTitle,
		},
	})
	return d, nil
}
