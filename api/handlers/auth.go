package handlers

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/kokualaw/expunge-api/config"
)

// Auth issues bearer tokens for the evaluation routes
type Auth struct {
	Config config.Config
}

// CreateToken exchanges basic auth credentials for a signed bearer
// token
func (a Auth) CreateToken(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	user, pass, ok := r.BasicAuth()
	if !ok || !credentialsMatch(user, a.Config.AuthUser) || !credentialsMatch(pass, a.Config.AuthPass) {
		http.Error(w, "basic auth failed", http.StatusUnauthorized)
		return
	}

	ttl := time.Duration(a.Config.TokenTTLHrs) * time.Hour
	claims := jwt.RegisteredClaims{
		Subject:   user,
		ID:        uuid.New().String(),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(a.Config.AuthSecret))
	if err != nil {
		config.ErrorStatus("failed to sign token", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(map[string]string{"token": token})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Write(b)
}

func credentialsMatch(given, want string) bool {
	g := sha256.Sum256([]byte(given))
	x := sha256.Sum256([]byte(want))
	return subtle.ConstantTimeCompare(g[:], x[:]) == 1
}
