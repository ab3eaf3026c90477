package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-GymBookingService/internal/api/handlers"
)

const (
	// HeaderUserID заголовок с идентификатором пользователя.
	// Заполняется API-гейтвеем после проверки сессии.
	HeaderUserID = "X-User-ID"

	msgMissingUserID = "отсутствует заголовок X-User-ID"
	msgInvalidUserID = "некорректный заголовок X-User-ID"
)

type userIDKey struct{}

// UserID извлекает ID аутентифицированного пользователя из контекста запроса
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey{}).(int64)
	return id, ok
}

// Auth проверяет наличие и корректность заголовка X-User-ID
// и кладет ID пользователя в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderUserID)
		if raw == "" {
			handlers.RespondForbidden(w, msgMissingUserID)
			return
		}

		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			handlers.RespondForbidden(w, msgInvalidUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
