package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/iudanet/marketsync/pkg/api"
)

// maxBodyBytes ограничивает размер тела запроса
const maxBodyBytes = 1 << 20

var errEmptyBody = errors.New("request body is empty")

// responder пишет ответы в конверте шлюза
type responder struct {
	logger *slog.Logger
}

// sendJSON отправляет успешный конверт с данными
func (h responder) sendJSON(w http.ResponseWriter, data any, statusCode int) {
	WriteEnvelope(w, h.logger, api.OK(data), statusCode)
}

// sendError отправляет конверт с ошибкой
func (h responder) sendError(w http.ResponseWriter, message string, statusCode int) {
	WriteEnvelope(w, h.logger, api.Fail(message), statusCode)
}

// internalError логирует err и отвечает 500 без подробностей
func (h responder) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.logger.ErrorContext(r.Context(), msg, slog.Any("error", err))
	h.sendError(w, "internal server error", http.StatusInternalServerError)
}

// decode читает JSON тело запроса в dst
func (h responder) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			err = errEmptyBody
		}
		h.logger.WarnContext(r.Context(), "failed to decode request", slog.String("path", r.URL.Path), slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

// userID достает id пользователя, проставленный auth middleware
func (h responder) userID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return "", false
	}
	return userID, true
}

// WriteEnvelope writes env as the JSON response body. Middleware uses it too,
// so every failure the gateway produces has the same shape.
func WriteEnvelope(w http.ResponseWriter, logger *slog.Logger, env api.Envelope, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(env); err != nil && logger != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// notFound формирует сообщение об отсутствующей записи
func notFound(what, id string) string {
	return fmt.Sprintf("%s %s not found", what, id)
}
