package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
	"github.com/m04kA/SMC-CourtScheduler/internal/schedule"
	"github.com/m04kA/SMC-CourtScheduler/pkg/types"
)

const (
	maxBodyBytes = 1 << 20

	msgInternalError = "внутренняя ошибка сервера"
	msgValidation    = "ошибка валидации"
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error  string              `json:"error"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

// DecodeJSON декодирует тело запроса, неизвестные поля считаются ошибкой
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

// RespondJSON пишет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// RespondError пишет ошибку с сообщением
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// RespondValidation возвращает 422 со списком ошибок по полям
func RespondValidation(w http.ResponseWriter, errs domain.ValidationErrors) {
	RespondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: msgValidation, Fields: errs})
}

// AsValidation извлекает ошибки валидации из цепочки
func AsValidation(err error) (domain.ValidationErrors, bool) {
	var errs domain.ValidationErrors
	if errors.As(err, &errs) {
		return errs, true
	}
	var fieldErr domain.FieldError
	if errors.As(err, &fieldErr) {
		return domain.ValidationErrors{fieldErr}, true
	}
	return nil, false
}

// PathInt64 извлекает положительный int64 из переменной маршрута
func PathInt64(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", name)
	}
	return id, nil
}

// ParseDate парсит дату YYYY-MM-DD в часовом поясе loc
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(domain.DateFormat, value, loc)
}

const (
	msgSessionExpired     = "сессия недействительна или истекла, войдите заново"
	msgBookingAPIDown     = "сервис бронирований недоступен, попробуйте позже"
	msgBookingAPIRejected = "сервис бронирований отклонил запрос"
	msgNotFound           = "не найдено"
	msgAccessDenied       = "доступ запрещен"
)

// RespondBookingAPIError обрабатывает общие ошибки API бронирований
// Возвращает false, если ошибка к ним не относится
func RespondBookingAPIError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, domain.ErrSession):
		RespondUnauthorized(w, msgSessionExpired)
	case errors.Is(err, domain.ErrTransport):
		RespondError(w, http.StatusBadGateway, msgBookingAPIDown)
	case errors.Is(err, domain.ErrConflict):
		RespondConflict(w, nil)
	case errors.Is(err, domain.ErrNotFound):
		RespondNotFound(w, msgNotFound)
	case errors.Is(err, domain.ErrAccessDenied):
		RespondForbidden(w, msgAccessDenied)
	case errors.Is(err, domain.ErrRejected):
		RespondError(w, http.StatusUnprocessableEntity, msgBookingAPIRejected)
	default:
		return false
	}
	return true
}

const (
	msgConflictWithAlternative = "выбранное время уже занято, но свободен другой корт"
	msgConflictNoAlternative   = "выбранное время уже занято, свободных кортов нет"
)

// ConflictResponse тело ответа 409
type ConflictResponse struct {
	Error       string               `json:"error"`
	Alternative *AlternativeResponse `json:"alternative,omitempty"`
}

// AlternativeResponse свободный корт на запрошенный интервал
type AlternativeResponse struct {
	ResourceID int64  `json:"resourceId"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
}

// NewAlternativeResponse конвертирует предложение в DTO
func NewAlternativeResponse(alt *schedule.Alternative) *AlternativeResponse {
	if alt == nil {
		return nil
	}
	return &AlternativeResponse{
		ResourceID: alt.ResourceID,
		Date:       alt.Start.Format(domain.DateFormat),
		StartTime:  types.NewTimeString(alt.Start).String(),
	}
}

// RespondConflict возвращает 409 с альтернативой, если она есть
func RespondConflict(w http.ResponseWriter, alt *schedule.Alternative) {
	msg := msgConflictNoAlternative
	if alt != nil {
		msg = msgConflictWithAlternative
	}
	RespondJSON(w, http.StatusConflict, ConflictResponse{Error: msg, Alternative: NewAlternativeResponse(alt)})
}
