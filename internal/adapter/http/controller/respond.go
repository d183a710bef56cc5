package controller

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// statusForMessage maps the service response message to an HTTP status. The
// messages are the envelope messages the services emit; anything unrecognized
// is treated as an internal failure.
func statusForMessage(message string) int {
	switch message {
	case "validation failed", "invalid request body":
		return http.StatusBadRequest
	case "Session not found", "Beneficiary not found", "Card not found", "Favorite not found":
		return http.StatusNotFound
	case "Favorite already exists":
		return http.StatusConflict
	case "Insufficient balance", "Daily limit exceeded", "Card blocked", "Beneficiary blocked":
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
