package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
)

// AdminTokenHeader заголовок с административным секретом
const AdminTokenHeader = "X-Admin-Token"

const (
	msgTokenMissing = "требуется заголовок X-Admin-Token"
	msgTokenInvalid = "неверный административный токен"
)

// AdminAuth проверяет общий административный секрет. Это грубая проверка
// полномочий уровня "пароль администратора", без сессий и ограничения
// частоты — не граница безопасности.
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(AdminTokenHeader)
			if got == "" {
				handlers.RespondError(w, http.StatusUnauthorized, msgTokenMissing)
				return
			}
			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				handlers.RespondError(w, http.StatusForbidden, msgTokenInvalid)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
