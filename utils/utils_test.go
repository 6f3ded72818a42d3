package utils

import (
	"cgpa-calculator/models"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	jwt, err := GenerateToken("ws-1", "secret", time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, jwt.Token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), jwt.ExpiresAt, 2*time.Second)

	id, err := ParseToken(jwt.Token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "ws-1", id)
}

func TestParseTokenRejects(t *testing.T) {
	jwt, err := GenerateToken("ws-1", "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(jwt.Token, "other")
	assert.Error(t, err)

	_, err = ParseToken("not-a-token", "secret")
	assert.Error(t, err)

	expired, err := GenerateToken("ws-1", "secret", -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(expired.Token, "secret")
	assert.ErrorIs(t, err, ErrTokenExpired)

	_, err = GenerateToken("", "secret", time.Hour)
	assert.Error(t, err)
	_, err = GenerateToken("ws-1", "", time.Hour)
	assert.Error(t, err)
}

func TestTokenFromRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/workspace", nil)
	_, err := TokenFromRequest(r)
	assert.ErrorIs(t, err, ErrTokenMissing)

	r.Header.Set("Authorization", "Bearer abc")
	token, err := TokenFromRequest(r)
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	r.Header.Set("Authorization", "Token abc")
	_, err = TokenFromRequest(r)
	assert.Error(t, err)

	r = httptest.NewRequest(http.MethodGet, "/workspace/live?token=xyz", nil)
	token, err = TokenFromRequest(r)
	require.NoError(t, err)
	assert.Equal(t, "xyz", token)
}

func TestDecodeAndValidate(t *testing.T) {
	var req models.CalculateRequest
	err := DecodeAndValidate(strings.NewReader(`{"semesters":[{"title":"S1","subjects":[{"grade":"A","credits":"4"}]}]}`), &req)
	require.NoError(t, err)
	assert.Len(t, req.Semesters, 1)

	err = DecodeAndValidate(strings.NewReader(`{"semesters":[]}`), &models.CalculateRequest{})
	assert.ErrorContains(t, err, "Semesters")

	err = DecodeAndValidate(strings.NewReader(`{"semesters":[{"title":"S1","subjects":[]}]}`), &models.CalculateRequest{})
	assert.ErrorContains(t, err, "Subjects")

	err = DecodeAndValidate(strings.NewReader(`{`), &models.CalculateRequest{})
	assert.ErrorContains(t, err, "Invalid request body")

	err = DecodeAndValidate(strings.NewReader(`{}`), &models.PercentageRequest{})
	assert.Error(t, err)
	assert.NoError(t, DecodeAndValidate(strings.NewReader(`{"enabled":false}`), &models.PercentageRequest{}))
}

func TestRespondWithError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithError(w, http.StatusConflict, models.Error{Message: "nope"})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"nope"}`, w.Body.String())
}

func TestResponseJSONStatus(t *testing.T) {
	w := httptest.NewRecorder()
	ResponseJSONStatus(w, http.StatusCreated, models.Message{Message: "ok"})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"message":"ok"}`, w.Body.String())

	w = httptest.NewRecorder()
	ResponseJSONStatus(w, http.StatusOK, map[string]float64{"cgpa": math.NaN()})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Failed to encode response"}`, w.Body.String())
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("debug", "json")
	require.NoError(t, err)
	assert.Equal(t, "debug", logger.GetLevel().String())

	_, err = NewLogger("loud", "text")
	assert.Error(t, err)
}
