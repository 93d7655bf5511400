package tests

import (
	"net/http"
	"testing"

	"github.com/FidelisKagashe26/godcares/core/about"
	"github.com/FidelisKagashe26/godcares/core/faith"
	"github.com/FidelisKagashe26/godcares/core/library"
	"github.com/FidelisKagashe26/godcares/core/view"
)

func Test_contentApi_home(t *testing.T) {
	app := setup(t)
	req, rec := newRequest(http.MethodGet, "/")
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Body.String() != "Karibu GodCares!" {
		t.Errorf("GET / = %d %q", rec.Code, rec.Body.String())
	}
}

func Test_contentApi_queryTeam(t *testing.T) {
	team := []about.TeamMember{
		{ID: 1, Name: "Mch. Daudi", Role: "Mchungaji", Order: 1},
		{ID: 2, Name: "Rehema", Role: "Mhariri", Order: 2},
	}

	tests := []struct {
		httpTest
		status int
		body   interface{}
	}{
		{
			httpTest: httpTest{name: "team", wantCode: http.StatusOK, wantData: marshalObj(t, view.Loaded(team))},
			status:   http.StatusOK, body: team,
		},
		{
			httpTest: httpTest{name: "paginated", wantCode: http.StatusOK, wantData: marshalObj(t, view.Loaded(team[:1]))},
			status:   http.StatusOK, body: map[string]interface{}{"count": 1, "results": team[:1]},
		},
		{
			httpTest: httpTest{name: "no data", wantCode: http.StatusOK, wantData: []byte(`{"loading":false,"items":[],"empty":true}`)},
			status:   http.StatusOK, body: []about.TeamMember{},
		},
		{
			httpTest: httpTest{name: "backend down", wantCode: http.StatusOK, wantData: marshalObj(t, view.ListState[about.TeamMember]{Items: []about.TeamMember{}, Error: view.GenericErrorMessage})},
			status:   http.StatusInternalServerError, body: "",
		},
		{
			httpTest: httpTest{name: "backend detail", wantCode: http.StatusOK, wantData: []byte(`{"loading":false,"items":[],"error":"Huduma imesimamishwa","empty":false}`)},
			status:   http.StatusServiceUnavailable, body: map[string]string{"detail": "Huduma imesimamishwa"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := setup(t)
			app.backend.Handle(http.MethodGet, "/api/about/team/", tt.status, tt.body)

			tt.method, tt.path = http.MethodGet, "/v1/team"
			checkCodeAndData(t, tt.httpTest, app.do(tt.httpTest))

			if tt.status != http.StatusOK && len(app.logger.Entries("warn")) == 0 {
				t.Error("a failed list fetch must be logged")
			}
		})
	}
}

func Test_contentApi_heroes(t *testing.T) {
	app := setup(t)
	heroes := []faith.Hero{
		{ID: 1, Name: "Musa", Title: "Mkombozi", Era: "Agano la Kale"},
		{ID: 2, Name: "Paulo", Title: "Mtume", Era: "Agano Jipya"},
		{ID: 3, Name: "Danieli", Title: "Nabii", Era: "Agano la Kale"},
	}
	app.backend.Handle(http.MethodGet, "/api/faith/heroes/", http.StatusOK, heroes)

	tests := []httpTest{
		{name: "all", method: http.MethodGet, path: "/v1/faith/heroes", wantCode: http.StatusOK, wantData: marshalObj(t, view.Loaded(heroes))},
		{name: "all tab", method: http.MethodGet, path: "/v1/faith/heroes?tab=Zote", wantCode: http.StatusOK, wantData: marshalObj(t, view.Loaded(heroes))},
		{
			name: "era tab", method: http.MethodGet, path: "/v1/faith/heroes?tab=Agano+la+Kale",
			wantCode: http.StatusOK, wantData: marshalObj(t, view.Loaded([]faith.Hero{heroes[0], heroes[2]})),
		},
		{
			name: "search", method: http.MethodGet, path: "/v1/faith/heroes?q=mtume",
			wantCode: http.StatusOK, wantData: marshalObj(t, view.Loaded(heroes[1:2])),
		},
		{
			name: "unknown tab", method: http.MethodGet, path: "/v1/faith/heroes?tab=Kesho",
			wantCode: http.StatusOK, wantData: []byte(`{"loading":false,"items":[],"empty":true}`),
		},
		{name: "detail", method: http.MethodGet, path: "/v1/faith/heroes/2", wantCode: http.StatusOK, wantData: marshalObj(t, heroes[1])},
		{name: "unknown hero", method: http.MethodGet, path: "/v1/faith/heroes/9", wantCode: http.StatusNotFound, wantData: marshalObj(t, httpErr{Error: "not found"})},
		{name: "bad id", method: http.MethodGet, path: "/v1/faith/heroes/musa", wantCode: http.StatusNotFound, wantData: marshalObj(t, httpErr{Error: "not found"})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkCodeAndData(t, tt, app.do(tt))
		})
	}
}

func Test_contentApi_library(t *testing.T) {
	app := setup(t)
	items := []library.Item{
		{ID: 1, Title: "Pambano Kuu", Type: library.TypeBook, Author: "E. G. White"},
		{ID: 2, Title: "Mahubiri ya Pasaka", Type: library.TypeAudio, Category: "Mahubiri"},
		{ID: 3, Title: "Historia ya Matengenezo", Type: library.TypeVideo},
	}
	playlists := []library.Playlist{
		{ID: 1, Title: "Unabii", Category: "Unabii", Videos: []library.Video{{ID: "a", Title: "Danieli 2"}}},
		{ID: 2, Title: "Familia", Category: "Familia"},
	}
	app.backend.Handle(http.MethodGet, "/api/library/", http.StatusOK, items)
	app.backend.Handle(http.MethodGet, "/api/media/playlists/", http.StatusOK, map[string]interface{}{"results": playlists})

	tests := []httpTest{
		{name: "type tab", method: http.MethodGet, path: "/v1/library?tab=audio", wantCode: http.StatusOK, wantData: marshalObj(t, view.Loaded(items[1:2]))},
		{name: "author search", method: http.MethodGet, path: "/v1/library?q=white", wantCode: http.StatusOK, wantData: marshalObj(t, view.Loaded(items[:1]))},
		{name: "playlists", method: http.MethodGet, path: "/v1/library/playlists", wantCode: http.StatusOK, wantData: marshalObj(t, view.Loaded(playlists))},
		{name: "playlists tab", method: http.MethodGet, path: "/v1/library/playlists/?tab=Familia", wantCode: http.StatusOK, wantData: marshalObj(t, view.Loaded(playlists[1:]))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkCodeAndData(t, tt, app.do(tt))
		})
	}
}
