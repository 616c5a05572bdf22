package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"te-backend/weather-service/internal/apperrors"
)

func respondSuccess(w http.ResponseWriter, code int, data interface{}) {
	respondWithJSON(w, code, BaseResponse{
		Success: true,
		Data:    data,
		Message: apperrors.MsgSuccessfullyCompleted,
		Code:    code,
	})
}

func respondValidationError(w http.ResponseWriter, code int, errors map[string][]string, message string) {
	respondWithJSON(w, code, ErrorResponse{
		Success: false,
		Errors:  errors,
		Data:    map[string]interface{}{},
		Message: message,
		Code:    code,
	})
}

func respondInternalError(w http.ResponseWriter) {
	respondValidationError(
		w,
		http.StatusInternalServerError,
		map[string][]string{"Error": {apperrors.MsgSomethingWentWrong}},
		apperrors.MsgSomethingWentWrong,
	)
}

// respondNotFound mirrors the JSON 404 produced for unmapped routes.
func respondNotFound(w http.ResponseWriter, path string) {
	message := fmt.Sprintf("This url %s not found.", path)
	log.Error().Str("path", path).Msg(message)
	respondWithJSON(w, http.StatusNotFound, map[string]string{"Error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
