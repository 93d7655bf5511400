package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/FidelisKagashe26/godcares/apps/api/echo"
	"github.com/FidelisKagashe26/godcares/core/visitor"
)

func Test_visitorApi_newVisitor(t *testing.T) {
	app := setup(t)
	rec := app.do(httpTest{method: http.MethodPost, path: "/v1/visitor"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var res struct {
		ID          string `json:"id"`
		Token       string `json:"token"`
		WelcomeSeen bool   `json:"welcome_seen"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, visitor.ValidID(res.ID))
	assert.NotEmpty(t, res.Token)
	assert.False(t, res.WelcomeSeen)

	_, err := app.visitorSvc.Get(context.Background(), res.ID)
	assert.NoError(t, err, "the visitor is stored")
}

func Test_visitorApi_welcome(t *testing.T) {
	app := setup(t)
	_, token := getToken(t, app)

	claims := NewVisitorClaims(conf, uuid.New().String())
	claims.ExpiresAt = time.Now().Add(-time.Minute).Unix()
	expired, err := GenerateToken(conf, claims)
	require.NoError(t, err)

	malformed, err := GenerateToken(conf, NewVisitorClaims(conf, "not-a-uuid"))
	require.NoError(t, err)

	// a token minted before a restart, for an id the store has never seen
	unknown, err := GenerateToken(conf, NewVisitorClaims(conf, uuid.New().String()))
	require.NoError(t, err)

	tests := []httpTest{
		{name: "missing token", method: http.MethodGet, path: "/v1/visitor/welcome", wantCode: http.StatusUnauthorized, wantData: marshalObj(t, httpErr{Error: "missing or malformed jwt"})},
		{name: "expired token", method: http.MethodGet, path: "/v1/visitor/welcome", token: expired, wantCode: http.StatusUnauthorized},
		{name: "not seen yet", method: http.MethodGet, path: "/v1/visitor/welcome", token: token, wantCode: http.StatusOK, wantData: []byte(`{"welcome_seen": false}`)},
		{name: "dismiss", method: http.MethodPost, path: "/v1/visitor/welcome", token: token, wantCode: http.StatusOK, wantData: []byte(`{"welcome_seen": true}`)},
		{name: "seen", method: http.MethodGet, path: "/v1/visitor/welcome", token: token, wantCode: http.StatusOK, wantData: []byte(`{"welcome_seen": true}`)},
		{name: "dismiss again", method: http.MethodPost, path: "/v1/visitor/welcome", token: token, wantCode: http.StatusOK, wantData: []byte(`{"welcome_seen": true}`)},
		{name: "malformed visitor id", method: http.MethodGet, path: "/v1/visitor/welcome", token: malformed, wantCode: http.StatusBadRequest, wantData: []byte(`{"visitor": "invalid visitor id"}`)},
		{name: "unknown visitor", method: http.MethodGet, path: "/v1/visitor/welcome", token: unknown, wantCode: http.StatusOK, wantData: []byte(`{"welcome_seen": false}`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkCodeAndData(t, tt, app.do(tt))
		})
	}
}
