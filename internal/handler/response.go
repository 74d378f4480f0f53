package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"fsanano/item-catalog/internal/schema"
)

type detailMessage struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps validation failures to 422 and everything else to 500.
func writeError(w http.ResponseWriter, err error) {
	var verr *schema.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusUnprocessableEntity, verr)
		return
	}
	writeJSON(w, http.StatusInternalServerError, detailMessage{Detail: "internal server error"})
}
