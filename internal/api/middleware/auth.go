package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-RoomReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomReservationService/internal/domain"
)

const (
	headerUserID   = "X-User-ID"
	headerUserName = "X-User-Name"
	headerUserRole = "X-User-Role"

	msgMissingIdentity = "не удалось определить пользователя: отсутствуют заголовки аутентификации"
	msgUnknownRole     = "неизвестная роль пользователя"
)

type sessionCtxKey struct{}

// Session идентичность аутентифицированного пользователя, извлечённая
// из заголовков шлюза и доступная обработчикам через контекст запроса.
type Session struct {
	UserID   string
	UserName string
	Role     domain.Role
}

// IsPrivileged проверяет привилегированность роли сессии
func (s Session) IsPrivileged() bool {
	return s.Role.IsPrivileged()
}

// Auth извлекает сессию пользователя из заголовков запроса.
// Запросы без валидной идентичности отклоняются с 401.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(headerUserID)
		userName := r.Header.Get(headerUserName)
		role := domain.Role(r.Header.Get(headerUserRole))

		if userID == "" || userName == "" {
			handlers.RespondUnauthorized(w, msgMissingIdentity)
			return
		}
		if !role.IsValid() {
			handlers.RespondUnauthorized(w, msgUnknownRole)
			return
		}

		session := Session{
			UserID:   userID,
			UserName: userName,
			Role:     role,
		}

		ctx := context.WithValue(r.Context(), sessionCtxKey{}, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionFromContext возвращает сессию пользователя из контекста запроса.
// Второе значение false, если запрос прошёл мимо middleware Auth.
func SessionFromContext(ctx context.Context) (Session, bool) {
	session, ok := ctx.Value(sessionCtxKey{}).(Session)
	return session, ok
}
