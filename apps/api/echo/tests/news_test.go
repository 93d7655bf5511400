package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FidelisKagashe26/godcares/core/news"
	"github.com/FidelisKagashe26/godcares/core/view"
)

var newsItems = []news.Item{
	{ID: 1, Title: "Mkutano wa injili Dodoma", Category: "Matukio", Views: 10},
	{ID: 2, Title: "Kambi ya vijana Morogoro", Category: "Vijana", Views: 4},
	{ID: 3, Title: "Semina ya familia", Category: "Matukio", Views: 0},
}

func Test_newsApi_queryNews(t *testing.T) {
	app := setup(t)
	app.backend.Handle(http.MethodGet, "/api/news/", http.StatusOK, newsItems)

	tests := []httpTest{
		{name: "all", method: http.MethodGet, path: "/v1/news", wantCode: http.StatusOK, wantData: marshalObj(t, view.Loaded(newsItems))},
		{
			name: "tab", method: http.MethodGet, path: "/v1/news?tab=Matukio",
			wantCode: http.StatusOK, wantData: marshalObj(t, view.Loaded([]news.Item{newsItems[0], newsItems[2]})),
		},
		{
			name: "tab and search", method: http.MethodGet, path: "/v1/news?tab=Matukio&q=DODOMA",
			wantCode: http.StatusOK, wantData: marshalObj(t, view.Loaded(newsItems[:1])),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkCodeAndData(t, tt, app.do(tt))
		})
	}
}

func Test_newsApi_recordView(t *testing.T) {
	app := setup(t)
	app.backend.Handle(http.MethodGet, "/api/news/", http.StatusOK, newsItems)
	app.backend.Handle(http.MethodPost, "/api/news/2/view/", http.StatusOK, `{"views": 5}`)

	rec := app.do(httpTest{method: http.MethodPost, path: "/v1/news/2/view"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res struct {
		ID    int                       `json:"id"`
		Views int                       `json:"views"`
		List  view.ListState[news.Item] `json:"list"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 2, res.ID)
	assert.Equal(t, 5, res.Views)

	want := []news.Item{newsItems[0], newsItems[1], newsItems[2]}
	want[1].Views = 5
	assert.Equal(t, want, res.List.Items, "only the viewed item changes")
	assert.Len(t, app.backend.Requests(http.MethodPost, "/api/news/2/view/"), 1)

	t.Run("filtered list", func(t *testing.T) {
		rec := app.do(httpTest{method: http.MethodPost, path: "/v1/news/2/view?tab=Vijana"})
		require.Equal(t, http.StatusOK, rec.Code)
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Len(t, res.List.Items, 1)
	})

	t.Run("unknown item", func(t *testing.T) {
		tt := httpTest{
			method: http.MethodPost, path: "/v1/news/9/view",
			wantCode: http.StatusBadGateway, wantData: marshalObj(t, httpErr{Error: "Not found."}),
		}
		checkCodeAndData(t, tt, app.do(tt))
	})
}

func Test_newsApi_subscribe(t *testing.T) {
	tests := []struct {
		httpTest
		status int
	}{
		{
			httpTest: httpTest{
				name: "subscribed", body: []byte(`{"email": " Juma@Example.com "}`),
				wantCode: http.StatusCreated, wantData: []byte(`{"status": "success", "reset_after_ms": 10}`),
			},
			status: http.StatusCreated,
		},
		{
			httpTest: httpTest{
				name: "invalid email", body: []byte(`{"email": "juma"}`),
				wantCode: http.StatusBadRequest,
				wantData: []byte(`{"status": "error", "error": "` + view.InvalidFormMessage + `", "fields": {"email": "email must be a valid email address"}}`),
			},
		},
		{
			httpTest: httpTest{
				name: "already subscribed", body: []byte(`{"email": "juma@example.com"}`),
				wantCode: http.StatusBadGateway, wantData: []byte(`{"status": "error", "error": "email: already subscribed"}`),
			},
			status: http.StatusBadRequest,
		},
		{
			httpTest: httpTest{
				name: "backend down", body: []byte(`{"email": "juma@example.com"}`),
				wantCode: http.StatusBadGateway, wantData: []byte(`{"status": "error", "error": "` + view.SubmitErrorMessage + `"}`),
			},
			status: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := setup(t)
			switch tt.status {
			case http.StatusBadRequest:
				app.backend.Handle(http.MethodPost, "/api/newsletter/", tt.status, map[string][]string{"email": {"already subscribed"}})
			case 0:
			default:
				app.backend.Handle(http.MethodPost, "/api/newsletter/", tt.status, "")
			}

			tt.method, tt.path = http.MethodPost, "/v1/newsletter"
			checkCodeAndData(t, tt.httpTest, app.do(tt.httpTest))

			if tt.wantCode == http.StatusCreated {
				reqs := app.backend.Requests(http.MethodPost, "/api/newsletter/")
				require.Len(t, reqs, 1)
				var sent news.Subscription
				reqs[0].JSON(t, &sent)
				assert.Equal(t, "juma@example.com", sent.Email)
			}
			if tt.wantCode == http.StatusBadRequest {
				assert.Empty(t, app.backend.Requests(http.MethodPost, "/api/newsletter/"))
			}
		})
	}
}
