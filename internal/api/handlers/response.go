package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
)

const maxBodyBytes = 1 << 20

const (
	msgInternalError = "erro interno do servidor"
	msgUnavailable   = "serviço temporariamente indisponível, tente novamente"
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// RejectionResponse тело ответа 422 при отказе в записи
type RejectionResponse struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// DecodeJSON декодирует тело запроса. Тело больше 1 МБ и лишние данные после JSON считаются ошибкой.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	if dec.More() {
		return errors.New("unexpected data after json body")
	}
	return nil
}

// RespondJSON пишет JSON ответ. data == nil означает пустое тело.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	if data == nil {
		w.WriteHeader(status)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// RespondError пишет ошибку с произвольным статусом
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

func RespondUnavailable(w http.ResponseWriter) {
	RespondError(w, http.StatusServiceUnavailable, msgUnavailable)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// RespondRejection 422 с причиной отказа и текстом для пользователя
func RespondRejection(w http.ResponseWriter, rej *domain.RejectionError) {
	RespondJSON(w, http.StatusUnprocessableEntity, RejectionResponse{
		Reason:  string(rej.Reason),
		Message: rej.Reason.Message(),
	})
}

// ParseDate разбирает YYYY-MM-DD как календарную дату в часовом поясе бизнеса
func ParseDate(value string, location *time.Location) (time.Time, error) {
	if location == nil {
		location = time.Local
	}
	return time.ParseInLocation(domain.DateFormat, strings.TrimSpace(value), location)
}
