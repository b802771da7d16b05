package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"github.com/gencareclinic/gencare-api/config"
	"github.com/gencareclinic/gencare-api/models"
	templates "github.com/gencareclinic/gencare-api/templates/html"
)

// respond writes the standard success envelope
func respond(w http.ResponseWriter, status int, data interface{}) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.Response{Success: true, Data: data})
}

// respondMessage writes a success envelope carrying only a message
func respondMessage(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.Response{Success: true, Message: message})
}

// respondPaginated writes a success envelope with a pagination block
func respondPaginated(w http.ResponseWriter, data interface{}, pagination *models.Pagination) {
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(models.Response{Success: true, Data: data, Pagination: pagination})
}

// handleError maps the domain error kinds onto HTTP statuses
func handleError(w http.ResponseWriter, err error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		config.ValidationStatus(w, verr)
		return
	}
	var nfe *models.NotFoundError
	if errors.As(err, &nfe) {
		config.ErrorStatus(nfe.Error(), http.StatusNotFound, w, nil)
		return
	}
	var ue *models.UnauthorizedError
	if errors.As(err, &ue) {
		status := http.StatusUnauthorized
		if ue.Forbidden {
			status = http.StatusForbidden
		}
		config.ErrorStatus(ue.Error(), status, w, nil)
		return
	}
	config.ErrorStatus("internal server error", http.StatusInternalServerError, w, err)
}

// paginationParams reads limit and page query parameters with sane defaults
func paginationParams(r *http.Request) (limit, page int64) {
	limit = 20
	page = 1
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if v := r.URL.Query().Get("page"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed > 0 {
			page = parsed
		}
	}
	return limit, page
}

// sendEmail delivers one transactional email through sendgrid
func sendEmail(toEmail, toName, subject, htmlContent, plainText string) error {
	from := mail.NewEmail("GenCare Clinic", "no-reply@gencareclinic.vn")
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainText, htmlContent)
	client := sendgrid.NewSendClient(os.Getenv("SENDGRID_API_KEY"))
	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		zap.S().Errorw("sendgrid returned error status", "status", response.StatusCode, "body", response.Body)
	}
	return nil
}

// sendEmailAsync fires the email off on a goroutine, a slow mail provider
// must not hold the request open
func sendEmailAsync(toEmail, toName, subject, bodyText string) {
	go func() {
		htmlContent := templates.RenderGenericEmail(subject, bodyText)
		if err := sendEmail(toEmail, toName, subject, htmlContent, bodyText); err != nil {
			zap.S().Errorw("failed to send email", "error", err, "to", toEmail, "subject", subject)
		}
	}()
}
