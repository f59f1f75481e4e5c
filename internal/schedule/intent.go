package schedule

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
)

// CanSubmit проверяет намерение бронирования перед отправкой
// Возвращает все нарушения сразу, по одному на поле
func CanSubmit(intent domain.BookingIntent, now time.Time) (bool, domain.ValidationErrors) {
	var errs domain.ValidationErrors

	if intent.ResourceID <= 0 {
		errs = append(errs, domain.FieldError{
			Field:   domain.FieldResource,
			Code:    domain.CodeRequired,
			Message: "court is required",
		})
	}

	switch {
	case intent.Start.IsZero():
		errs = append(errs, domain.FieldError{
			Field:   domain.FieldStart,
			Code:    domain.CodeRequired,
			Message: "start time is required",
		})
	case !intent.Start.After(now):
		errs = append(errs, domain.FieldError{
			Field:   domain.FieldStart,
			Code:    domain.CodeInPast,
			Message: "start time must be in the future",
		})
	}

	if !domain.IsValidDuration(intent.DurationMinutes) {
		errs = append(errs, domain.FieldError{
			Field: domain.FieldDuration,
			Code:  domain.CodeInvalid,
			Message: fmt.Sprintf("duration must be a multiple of %d minutes up to %d minutes",
				domain.SlotStepMinutes, domain.MaxDurationMinutes),
		})
	}

	if err, ok := checkParticipants(intent); !ok {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return false, errs
	}
	return true, nil
}

// AddParticipant добавляет игрока в намерение
// Четвертый участник (пятый игрок с учетом бронирующего) отклоняется ошибкой вместимости,
// список при этом не обрезается и намерение возвращается без изменений
func AddParticipant(intent domain.BookingIntent, bookerID, participantID int64) (domain.BookingIntent, error) {
	if participantID <= 0 {
		return intent, domain.FieldError{
			Field:   domain.FieldParticipants,
			Code:    domain.CodeInvalid,
			Message: "participant id must be positive",
		}
	}
	if participantID == bookerID {
		return intent, domain.FieldError{
			Field:   domain.FieldParticipants,
			Code:    domain.CodeDuplicate,
			Message: "the booker is already part of the party",
		}
	}
	for _, id := range intent.ParticipantIDs {
		if id == participantID {
			return intent, domain.FieldError{
				Field:   domain.FieldParticipants,
				Code:    domain.CodeDuplicate,
				Message: "participant is already added",
			}
		}
	}
	if len(intent.ParticipantIDs) >= domain.MaxParticipants {
		return intent, capacityError()
	}

	participants := make([]int64, len(intent.ParticipantIDs), len(intent.ParticipantIDs)+1)
	copy(participants, intent.ParticipantIDs)
	intent.ParticipantIDs = append(participants, participantID)
	return intent, nil
}

func checkParticipants(intent domain.BookingIntent) (domain.FieldError, bool) {
	ids := intent.ParticipantIDs
	if len(ids) < domain.MinParticipants {
		return domain.FieldError{
			Field:   domain.FieldParticipants,
			Code:    domain.CodeRequired,
			Message: "add at least one participant",
		}, false
	}
	if intent.PartySize() > domain.MaxPartySize {
		return capacityError(), false
	}

	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return domain.FieldError{
				Field:   domain.FieldParticipants,
				Code:    domain.CodeDuplicate,
				Message: "participants must be unique",
			}, false
		}
		seen[id] = struct{}{}
	}

	return domain.FieldError{}, true
}

func capacityError() domain.FieldError {
	return domain.FieldError{
		Field:   domain.FieldParticipants,
		Code:    domain.CodeCapacity,
		Message: fmt.Sprintf("a court takes at most %d players including the booker", domain.MaxPartySize),
	}
}
