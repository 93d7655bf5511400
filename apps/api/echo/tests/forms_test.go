package tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FidelisKagashe26/godcares/core/donation"
	"github.com/FidelisKagashe26/godcares/core/prayer"
	"github.com/FidelisKagashe26/godcares/core/view"
	emailsvc "github.com/FidelisKagashe26/godcares/services/email"
)

func Test_donationApi(t *testing.T) {
	projects := []donation.Project{
		{ID: 1, Title: "Kisima cha maji", Category: "Jamii", Goal: 1000, Raised: 1500, IsActive: true},
		{ID: 2, Title: "Ujenzi wa kanisa", Category: "Ujenzi", Goal: 3000, Raised: 1000, IsActive: true},
	}

	t.Run("projects", func(t *testing.T) {
		app := setup(t)
		app.backend.Handle(http.MethodGet, "/api/donations/projects/", http.StatusOK, projects)
		tt := httpTest{
			method: http.MethodGet, path: "/v1/donations/projects", wantCode: http.StatusOK,
			wantData: marshalObj(t, view.Loaded([]donation.ProjectView{
				{Project: projects[0], Progress: 100},
				{Project: projects[1], Progress: 33.3},
			})),
		}
		checkCodeAndData(t, tt, app.do(tt))
	})

	tests := []struct {
		httpTest
		wantMails int
	}{
		{
			httpTest: httpTest{
				name: "donated", body: []byte(`{"project_id": 2, "name": "Neema", "email": "neema@example.com", "amount": 5000, "payment_method": "mpesa"}`),
				wantCode: http.StatusCreated,
				wantData: marshalObj(t, map[string]interface{}{
					"status": "success", "reset_after_ms": 10,
					"data": donation.Donation{ID: 3, Reference: "DN-3", Status: "pending", Amount: 5000, Currency: "TZS"},
				}),
			},
			wantMails: 1,
		},
		{
			httpTest: httpTest{
				name: "unknown project", body: []byte(`{"project_id": 8, "name": "Neema", "email": "neema@example.com", "amount": 5000, "payment_method": "mpesa"}`),
				wantCode: http.StatusBadRequest,
				wantData: []byte(`{"status": "error", "error": "` + view.InvalidFormMessage + `", "fields": {"project_id": "unknown project"}}`),
			},
		},
		{
			httpTest: httpTest{
				name: "missing amount", body: []byte(`{"name": "Neema", "email": "neema@example.com", "payment_method": "mpesa"}`),
				wantCode: http.StatusBadRequest,
				wantData: []byte(`{"status": "error", "error": "` + view.InvalidFormMessage + `", "fields": {"amount": "this field is required"}}`),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := setup(t)
			app.backend.Handle(http.MethodGet, "/api/donations/projects/", http.StatusOK, projects)
			app.backend.Handle(http.MethodPost, "/api/donations/", http.StatusCreated,
				`{"id": 3, "reference": "DN-3", "status": "pending", "amount": 5000, "currency": "TZS", "created_at": "0001-01-01T00:00:00Z"}`)

			tt.method, tt.path = http.MethodPost, "/v1/donations"
			checkCodeAndData(t, tt.httpTest, app.do(tt.httpTest))
			assert.Len(t, emailsvc.Sent(), tt.wantMails)
		})
	}
}

func Test_prayerApi(t *testing.T) {
	public := []prayer.Request{
		{ID: 1, Name: "Amani", Category: "Afya", Request: "Afya ya mama", PrayerCount: 12},
		{ID: 2, IsAnonymous: true, Category: "Kazi", Request: "Kazi mpya"},
	}
	answered := []prayer.Request{{ID: 3, Name: "Rehema", Category: "Familia", IsAnswered: true, Testimony: "Mungu amejibu"}}

	app := setup(t)
	app.backend.Handle(http.MethodGet, "/api/prayers/public/", http.StatusOK, public)
	app.backend.Handle(http.MethodGet, "/api/prayers/answered/", http.StatusOK, answered)
	app.backend.Handle(http.MethodPost, "/api/prayers/", http.StatusCreated, `{"id": 4, "request": "Safari salama", "is_anonymous": true}`)

	tests := []httpTest{
		{name: "public", method: http.MethodGet, path: "/v1/prayers/public", wantCode: http.StatusOK, wantData: marshalObj(t, view.Loaded(public))},
		{name: "public tab", method: http.MethodGet, path: "/v1/prayers/public?tab=Afya", wantCode: http.StatusOK, wantData: marshalObj(t, view.Loaded(public[:1]))},
		{name: "answered", method: http.MethodGet, path: "/v1/prayers/answered", wantCode: http.StatusOK, wantData: marshalObj(t, view.Loaded(answered))},
		{
			name: "named request without a name", method: http.MethodPost, path: "/v1/prayers", body: []byte(`{"request": "Safari salama"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"status": "error", "error": "` + view.InvalidFormMessage + `", "fields": {"name": "this field is required"}}`),
		},
		{
			name: "anonymous request", method: http.MethodPost, path: "/v1/prayers", body: []byte(`{"name": "Amani", "request": "Safari salama", "is_anonymous": true}`),
			wantCode: http.StatusCreated,
			wantData: marshalObj(t, map[string]interface{}{
				"status": "success", "reset_after_ms": 10,
				"data": prayer.Request{ID: 4, Request: "Safari salama", IsAnonymous: true},
			}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkCodeAndData(t, tt, app.do(tt))
		})
	}

	reqs := app.backend.Requests(http.MethodPost, "/api/prayers/")
	require.Len(t, reqs, 1)
	var sent prayer.NewRequest
	reqs[0].JSON(t, &sent)
	assert.Empty(t, sent.Name, "anonymous requests never carry the name")
}
