package responses

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"ytfetch/internal/utils/errs"
	"ytfetch/internal/utils/logger"

	"go.uber.org/zap"
)

type BadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func DoBadResponseAndLog(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := BadResponse{
		Success: false,
		Message: message,
	}

	jsonResponse, err := json.Marshal(response)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	_, err = w.Write(jsonResponse)
	if err != nil {
		logger.Error("failed to write response",
			zap.String("function", "DoBadResponseAndLog"),
			zap.Error(err),
		)
		return
	}

	logger.Warn("bad response",
		zap.Int("status", statusCode),
		zap.String("message", message),
	)
}

func DoJSONResponse(w http.ResponseWriter, responseData any, successStatusCode int) {
	body, err := json.Marshal(responseData)
	if err != nil {
		DoBadResponseAndLog(w, http.StatusInternalServerError, "internal error")
		logger.Error("failed to marshal response",
			zap.String("function", "DoJSONResponse"),
			zap.Error(err),
		)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(successStatusCode)

	if _, err := w.Write(body); err != nil {
		logger.Error("failed to write response",
			zap.String("function", "DoJSONResponse"),
			zap.Error(err),
		)
	}
}

func ResponseErrorAndLog(w http.ResponseWriter, err error, funcName string) {
	switch {
	case errors.Is(err, errs.ErrInvalidURL):
		DoBadResponseAndLog(w, http.StatusBadRequest, "Invalid URL given")

	case errors.Is(err, errs.ErrTaskNotFound), errors.Is(err, errs.ErrItemNotFound):
		DoBadResponseAndLog(w, http.StatusNotFound, "Not found")

	case errors.Is(err, errs.ErrMaxTasksReached):
		DoBadResponseAndLog(w, http.StatusTooManyRequests, "Maximum task count exceeded")

	case errors.Is(err, errs.ErrUserAlreadyExists):
		DoBadResponseAndLog(w, http.StatusConflict, "User already exists")

	case errors.Is(err, errs.ErrInvalidUsername), errors.Is(err, errs.ErrInvalidPassword):
		DoBadResponseAndLog(w, http.StatusBadRequest, "Invalid credentials given")

	case errors.Is(err, errs.ErrInvalidLogin), errors.Is(err, errs.ErrUnauthenticated):
		DoBadResponseAndLog(w, http.StatusUnauthorized, "Unauthorized")

	default:
		DoBadResponseAndLog(w, http.StatusInternalServerError, "Something went wrong")
		logger.Error(funcName,
			zap.String("error", err.Error()),
		)
		return
	}

	logger.Warn(funcName,
		zap.String("error", err.Error()),
	)
}
