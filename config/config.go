package config

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/gencareclinic/gencare-api/models"
)

// Config holds the project config values
type Config struct {
	URL          string
	DatabaseName string
	BaseURL      string
	Port         string
	JWTSecret    string
}

// New sets up all config related services
func New() *Config {

	// local development reads a .env file, deployed pods rely on real env vars
	_ = godotenv.Load()

	//setup zap logger and replace default logger
	logger := zap.NewExample()
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	return &Config{
		URL:          os.Getenv("DB_URI"),
		DatabaseName: os.Getenv("DB_NAME"),
		BaseURL:      os.Getenv("BASE_URL"),
		Port:         os.Getenv("PORT"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
	}

}

// ErrorStatus is a useful function that will log, write http headers and the
// standard error envelope for a given message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	w.WriteHeader(httpStatusCode)
	resp := models.Response{Success: false, Message: message}
	if err != nil {
		resp.Errors = map[string]string{"error": err.Error()}
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// ValidationStatus writes a 400 with the field error map from a ValidationError
func ValidationStatus(w http.ResponseWriter, verr *models.ValidationError) {
	zap.S().Warnw("validation failed", "fields", verr.Fields)
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(models.Response{
		Success: false,
		Message: verr.Error(),
		Errors:  verr.Fields,
	})
}
