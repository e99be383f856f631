package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
)

// Recover перехватывает панику обработчика и отвечает 500
func Recover(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("%s %s - panic: %v\n%s", r.Method, r.URL.Path, rec, debug.Stack())
					handlers.RespondInternalError(w)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
