package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pricewatch/pricewatch-server/internal/model"
)

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, messageResponse{Message: message})
}

func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrAlreadyExists):
		writeMessage(w, http.StatusConflict, "User already exists.")
	case errors.Is(err, model.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "Not found.")
	case errors.Is(err, model.ErrInvalidCredentials):
		writeMessage(w, http.StatusUnauthorized, "Incorrect password.")
	default:
		writeMessage(w, http.StatusInternalServerError, "Internal server error.")
	}
}
