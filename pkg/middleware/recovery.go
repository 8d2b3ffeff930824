package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// PanicResponder writes the answer for a request whose handler panicked.
type PanicResponder func(w http.ResponseWriter, r *http.Request)

// Recovery turns a handler panic into a logged stack trace and a 500 answer
// written by respond. A nil respond writes a plain-text 500.
func Recovery(l *slog.Logger, respond PanicResponder) func(http.Handler) http.Handler {
	if respond == nil {
		respond = func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				l.ErrorContext(r.Context(), "handler panicked",
					slog.Any("panic", rec),
					slog.String("route", r.Method+" "+r.URL.Path),
					slog.String("stack", string(debug.Stack())),
				)
				respond(w, r)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
