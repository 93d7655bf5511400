package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/FidelisKagashe26/godcares/apps/api/echo"
	"github.com/FidelisKagashe26/godcares/core"
	"github.com/FidelisKagashe26/godcares/core/about"
	"github.com/FidelisKagashe26/godcares/core/donation"
	"github.com/FidelisKagashe26/godcares/core/faith"
	"github.com/FidelisKagashe26/godcares/core/lesson"
	"github.com/FidelisKagashe26/godcares/core/library"
	"github.com/FidelisKagashe26/godcares/core/news"
	"github.com/FidelisKagashe26/godcares/core/prayer"
	"github.com/FidelisKagashe26/godcares/core/shop"
	"github.com/FidelisKagashe26/godcares/core/testimony"
	"github.com/FidelisKagashe26/godcares/core/vault"
	"github.com/FidelisKagashe26/godcares/core/visitor"
	appfs "github.com/FidelisKagashe26/godcares/fs"
	emailsvc "github.com/FidelisKagashe26/godcares/services/email"
	"github.com/FidelisKagashe26/godcares/storage/backendapi"
	"github.com/FidelisKagashe26/godcares/storage/bundle"
	inmemdb "github.com/FidelisKagashe26/godcares/storage/database/inmem"
	"github.com/FidelisKagashe26/godcares/tests"
)

var conf = core.NewTestConfig("")

// testApp is a portal server wired to a fake content API.
type testApp struct {
	Server
	backend    *testutil.Backend
	logger     *testutil.Logger
	visitorSvc visitor.Service
	lessonSvc  lesson.Service
}

func setup(t *testing.T) *testApp {
	backend := testutil.NewBackend(t)
	logger := new(testutil.Logger)
	client := backendapi.NewClientWithHTTP(backend.URL, backend.Client(), logger)

	mailSvc := emailsvc.NewConsoleServiceMock(conf)
	emailsvc.ResetSentMessages()

	app := &testApp{
		backend:    backend,
		logger:     logger,
		visitorSvc: visitor.NewService(inmemdb.NewVisitorRepository()),
		lessonSvc:  lesson.NewService(bundle.NewLessonRepository(appfs.FS), lesson.NewProgress()),
	}
	app.Server = NewServer(ServerDeps{
		Conf:         conf,
		Logger:       logger,
		AboutSvc:     about.NewService(backendapi.NewAboutRepository(client)),
		DonationSvc:  donation.NewService(backendapi.NewDonationRepository(client), mailSvc),
		FaithSvc:     faith.NewService(backendapi.NewFaithRepository(client)),
		LibrarySvc:   library.NewService(backendapi.NewLibraryRepository(client)),
		NewsSvc:      news.NewService(backendapi.NewNewsRepository(client)),
		PrayerSvc:    prayer.NewService(backendapi.NewPrayerRepository(client)),
		ShopSvc:      shop.NewService(backendapi.NewShopRepository(client), mailSvc),
		TestimonySvc: testimony.NewService(backendapi.NewTestimonyRepository(client)),
		VaultSvc:     vault.NewService(backendapi.NewVaultRepository(client), logger),
		LessonSvc:    app.lessonSvc,
		VisitorSvc:   app.visitorSvc,
	})
	return app
}

// do serves one request and returns the recorder.
func (app *testApp) do(tt httpTest) *httptest.ResponseRecorder {
	req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
	app.ServeHTTP(rec, req)
	return rec
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

// getToken registers a new visitor and returns its id and token.
func getToken(t *testing.T, app *testApp) (string, string) {
	req, rec := newRequest(http.MethodPost, "/v1/visitor")
	app.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("getToken() failed: %d %s", rec.Code, rec.Body.String())
	}
	var res struct {
		ID    string `json:"id"`
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	return res.ID, res.Token
}

func marshalObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshalObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(t *testing.T, b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	if reflect.DeepEqual(j1, j2) {
		return true, nil
	}
	if j1 == nil || j2 == nil {
		return false, nil
	}
	if _, ok := j1.([]interface{}); !ok {
		return false, nil
	}
	return assert.ElementsMatch(t, j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(t, rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
