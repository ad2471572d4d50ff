package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/profilecard/backend/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError is the terminal error responder: every handler failure funnels
// here. APIErrors keep their status and message; anything else becomes a
// 500 "Server Error" with the cause logged, never leaked.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *models.APIError
	if errors.As(err, &apiErr) {
		writeJSON(w, apiErr.Status, models.ErrorResponse{Message: apiErr.Message})
		return
	}

	logrus.WithError(err).WithFields(logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	}).Error("request failed")
	writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Message: "Server Error"})
}

// NotFound is mounted as the router's catch-all for unmatched routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, models.ErrorResponse{Message: "Not Found"})
}
