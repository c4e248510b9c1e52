package config

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	os.Setenv("PORT", "8080")
	os.Setenv("AUTH_SECRET", "test-secret")
	conf := New()

	assert.NotEmpty(t, conf)
	assert.Equal(t, "8080", conf.Port)
	assert.Equal(t, "test-secret", conf.AuthSecret)
}

func TestNewDefaultsCacheSize(t *testing.T) {
	os.Unsetenv("CASE_CACHE_SIZE")
	conf := New()
	assert.Equal(t, 512, conf.CacheSize)

	os.Setenv("CASE_CACHE_SIZE", "not-a-number")
	conf = New()
	assert.Equal(t, 512, conf.CacheSize)

	os.Setenv("CASE_CACHE_SIZE", "64")
	conf = New()
	assert.Equal(t, 64, conf.CacheSize)
	os.Unsetenv("CASE_CACHE_SIZE")
}

func TestErrorStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	ErrorStatus("error it borked", http.StatusBadRequest, rr, errors.New("bad request"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var body map[string]map[string]string
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "error it borked", body["response"]["message"])
	assert.Equal(t, "bad request", body["response"]["error"])
}
