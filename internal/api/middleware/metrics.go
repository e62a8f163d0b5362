package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// MetricsMiddleware считает запросы и их длительность по шаблону маршрута
func MetricsMiddleware(observer HTTPObserver) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			observer.ObserveHTTP(r.Method, routeTemplate(r), rec.status, time.Since(start))
		})
	}
}
