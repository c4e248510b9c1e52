package config

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kokualaw/expunge-api/logging"
	"github.com/kokualaw/expunge-api/models"
)

// Config holds the project config values
type Config struct {
	Port        string
	BaseUrl     string
	AuthSecret  string
	AuthUser    string
	AuthPass    string
	CacheSize   int
	TokenTTLHrs int
}

// New sets up all config related services
func New() *Config {

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	//setup zap logger and replace default logger
	logger := logging.New()
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	return &Config{
		Port:        os.Getenv("PORT"),
		BaseUrl:     os.Getenv("BASE_URL"),
		AuthSecret:  os.Getenv("AUTH_SECRET"),
		AuthUser:    os.Getenv("AUTH_USER"),
		AuthPass:    os.Getenv("AUTH_PASS"),
		CacheSize:   intEnv("CASE_CACHE_SIZE", 512),
		TokenTTLHrs: intEnv("TOKEN_TTL_HOURS", 24),
	}

}

func intEnv(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		zap.S().Warnf("invalid %s=%q, using default of %v", key, v, fallback)
		return fallback
	}
	return n
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	w.WriteHeader(httpStatusCode)
	errText := ""
	if err != nil {
		errText = err.Error()
	}
	b, _ := json.Marshal(models.ErrorMessageResponse{
		Response: models.MessageError{Message: message, Error: errText},
	})
	w.Write(b)
}
