package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// Logging пишет строку на каждый запрос. 5xx уходят в Error, 4xx в Warn.
func Logging(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			latency := time.Since(start)
			switch {
			case rec.status >= http.StatusInternalServerError:
				logger.Error("%s %s - status=%d latency=%s", r.Method, r.URL.Path, rec.status, latency)
			case rec.status >= http.StatusBadRequest:
				logger.Warn("%s %s - status=%d latency=%s", r.Method, r.URL.Path, rec.status, latency)
			default:
				logger.Info("%s %s - status=%d latency=%s", r.Method, r.URL.Path, rec.status, latency)
			}
		})
	}
}

// Recover превращает панику обработчика в 500 (handlers.RecoveryHandler).
// Стек не пишется: панику с методом и путем фиксирует Logging снаружи.
func Recover(logger Logger) mux.MiddlewareFunc {
	return mux.MiddlewareFunc(handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{logger: logger}),
		handlers.PrintRecoveryStack(false),
	))
}

// recoveryLogger адаптер Logger к handlers.RecoveryHandlerLogger
type recoveryLogger struct {
	logger Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.logger.Error("panic recovered: %s", fmt.Sprint(v...))
}
