package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/cmlabs-hris/hrms-lite-go/internal/handler/http/response"
)

// Recoverer turns a panic into the generic 500 body.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			slog.ErrorContext(r.Context(), "Recovered from panic",
				"panic", rvr,
				"request_id", GetRequestID(r.Context()),
				"stack", string(debug.Stack()),
			)

			if r.Header.Get("Connection") != "Upgrade" {
				response.InternalServerError(w)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
