package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-CourtScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-CourtScheduler/internal/domain"
)

// Заголовки сессии, которые мобильный клиент передает с каждым запросом
const (
	HeaderUserID        = "X-User-ID"
	HeaderUserRole      = "X-User-Role"
	HeaderClubID        = "X-Club-ID"
	HeaderAuthorization = "Authorization"
)

const (
	msgMissingUserID = "требуется заголовок X-User-ID"
	msgInvalidUserID = "некорректный X-User-ID"
	msgInvalidClubID = "некорректный X-Club-ID"
	msgInvalidRole   = "некорректная роль пользователя"
)

type actorKey struct{}

// WithActor кладет сессию пользователя в контекст
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext возвращает сессию пользователя, положенную Auth
func ActorFromContext(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(domain.Actor)
	return actor, ok
}

// Auth собирает domain.Actor из заголовков запроса
// Токен из Authorization пересылается в API бронирований без проверки
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(HeaderUserID)
		if userIDStr == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}
		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgInvalidUserID)
			return
		}

		var clubID int64
		if clubIDStr := r.Header.Get(HeaderClubID); clubIDStr != "" {
			clubID, err = strconv.ParseInt(clubIDStr, 10, 64)
			if err != nil || clubID <= 0 {
				handlers.RespondBadRequest(w, msgInvalidClubID)
				return
			}
		}

		role := domain.RoleMember
		switch domain.Role(strings.ToLower(r.Header.Get(HeaderUserRole))) {
		case "", domain.RoleMember:
		case domain.RoleAdmin:
			role = domain.RoleAdmin
		default:
			handlers.RespondBadRequest(w, msgInvalidRole)
			return
		}

		actor := domain.Actor{
			UserID: userID,
			ClubID: clubID,
			Role:   role,
			Token:  strings.TrimSpace(strings.TrimPrefix(r.Header.Get(HeaderAuthorization), "Bearer ")),
		}
		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
	})
}
