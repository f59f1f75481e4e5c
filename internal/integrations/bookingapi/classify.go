package bookingapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
)

// Единственное место, где ответ API бронирований сопоставляется с таксономией ошибок domain.
// Структурированный code имеет приоритет, затем HTTP статус, затем текст сообщения.
// Ответ 5xx всегда сбой транспорта, даже если в тексте встречается "conflict".

// codeToError коды ошибок, которые отдают новые версии бэкенда
var codeToError = map[string]error{
	"booking_conflict": domain.ErrConflict,
	"conflict":         domain.ErrConflict,
	"overlap":          domain.ErrConflict,
	"unauthorized":     domain.ErrSession,
	"session_expired":  domain.ErrSession,
	"token_expired":    domain.ErrSession,
	"forbidden":        domain.ErrAccessDenied,
	"not_found":        domain.ErrNotFound,
}

// conflictMarkers подстроки текста ошибки старых версий бэкенда, означающие конфликт
var conflictMarkers = []string{"overlap", "conflict", "already booked"}

// classifyResponse превращает неуспешный ответ в обернутую ошибку domain
func classifyResponse(operation string, status int, body []byte) error {
	message := strings.TrimSpace(string(body))

	var payload ErrorResponse
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			message = payload.Message
		} else if payload.Error != "" {
			message = payload.Error
		}
		if sentinel, ok := codeToError[strings.ToLower(strings.TrimSpace(payload.Code))]; ok {
			return fmt.Errorf("%w: %s - status %d: %s", sentinel, operation, status, message)
		}
	}

	return fmt.Errorf("%w: %s - status %d: %s", sentinelForStatus(status, message), operation, status, message)
}

func sentinelForStatus(status int, message string) error {
	switch {
	case status == http.StatusUnauthorized:
		return domain.ErrSession
	case status >= http.StatusInternalServerError:
		return domain.ErrTransport
	case status == http.StatusConflict || hasConflictMarker(message):
		return domain.ErrConflict
	case status == http.StatusForbidden:
		return domain.ErrAccessDenied
	case status == http.StatusNotFound:
		return domain.ErrNotFound
	default:
		return domain.ErrRejected
	}
}

func hasConflictMarker(message string) bool {
	lower := strings.ToLower(message)
	for _, marker := range conflictMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// classifyTransport оборачивает сетевую ошибку; отмена контекста вызывающим не считается сбоем сети
func classifyTransport(operation string, err error) error {
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s - request cancelled: %w", operation, err)
	}
	return fmt.Errorf("%w: %s - failed to execute request: %v", domain.ErrTransport, operation, err)
}
