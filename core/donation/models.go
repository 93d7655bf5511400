package donation

import (
	"math"
	"time"

	"github.com/FidelisKagashe26/godcares/core"
)

// Payment methods accepted by the donations endpoint.
const (
	MethodMpesa    = "mpesa"
	MethodTigoPesa = "tigopesa"
	MethodAirtel   = "airtel"
	MethodCard     = "card"
	MethodBank     = "bank"
)

type Project struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
	Goal        float64 `json:"goal"`
	Raised      float64 `json:"raised"`
	Currency    string  `json:"currency"`
	IsActive    bool    `json:"is_active"`
}

// Progress is the share of the goal already raised, as a percentage capped at 100.
func (p Project) Progress() float64 {
	if p.Goal <= 0 || p.Raised <= 0 {
		return 0
	}
	pct := 100 * p.Raised / p.Goal
	if pct > 100 {
		return 100
	}
	return math.Round(pct*10) / 10
}

// ProjectView is a Project as the donations page shows it.
type ProjectView struct {
	Project
	Progress float64 `json:"progress"`
}

// NewDonation contains information needed to submit a donation.
type NewDonation struct {
	ProjectID     *int    `json:"project_id,omitempty"`
	Name          string  `json:"name" validate:"required,notblank,max=120"`
	Email         string  `json:"email" validate:"required,email"`
	Phone         string  `json:"phone,omitempty" validate:"omitempty,min=9,max=20"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Currency      string  `json:"currency" validate:"required,len=3"`
	PaymentMethod string  `json:"payment_method" validate:"required,oneof=mpesa tigopesa airtel card bank"`
	Message       string  `json:"message,omitempty" validate:"max=500"`
	Anonymous     bool    `json:"anonymous"`
}

func (nd *NewDonation) Validate() error {
	nd.Name = core.CleanString(nd.Name)
	nd.Email = core.CleanString(nd.Email, true /* lower */)
	nd.Phone = core.CleanString(nd.Phone)
	nd.Currency = core.CleanString(nd.Currency)
	if nd.Currency == "" {
		nd.Currency = "TZS"
	}
	nd.PaymentMethod = core.CleanString(nd.PaymentMethod, true /* lower */)
	nd.Message = core.CleanString(nd.Message)
	return core.Validate.Struct(nd)
}

type Donation struct {
	ID            int       `json:"id"`
	Reference     string    `json:"reference"`
	Status        string    `json:"status"`
	ProjectID     *int      `json:"project_id,omitempty"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	PaymentMethod string    `json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
}

type QueryFilter struct {
	Tab    string `query:"tab"`
	Search string `query:"q"`
}
