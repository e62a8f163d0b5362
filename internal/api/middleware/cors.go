package middleware

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// corsMaxAge gorilla/handlers ограничивает max-age 600 секундами
const corsMaxAge = 600

// CORS разрешает запросы из браузерной панели администратора и страницы записи.
// Preflight OPTIONS отвечает 204 и не доходит до роутера.
func CORS() mux.MiddlewareFunc {
	return mux.MiddlewareFunc(handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		}),
		handlers.AllowedHeaders([]string{"Content-Type", "Accept", "Origin"}),
		handlers.MaxAge(corsMaxAge),
		handlers.OptionStatusCode(http.StatusNoContent),
	))
}
