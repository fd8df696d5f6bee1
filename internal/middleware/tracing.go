package middleware

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Tracing wraps the handler chain with OpenTelemetry tracing.
func Tracing(next http.Handler) http.Handler {
	return otelhttp.NewHandler(next, "http-request")
}
