package logger

import (
	"fmt"
	"net/http"

	"multivendor-shop/internal/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// statusRecorder captures the response status for the access log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = uuid.New().String()
		}

		ctx := WithRequestID(r.Context(), reqID)
		w.Header().Set("X-Request-ID", reqID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

var (
	requestsServed  metrics.Counter
	responseClasses = metrics.NewCounterVec()
)

// RequestsServed reports how many requests LoggingMiddleware has completed.
func RequestsServed() uint64 {
	return requestsServed.Load()
}

// ResponseClasses breaks RequestsServed down by status class ("2xx", "3xx", ...).
func ResponseClasses() []metrics.Sample {
	return responseClasses.Snapshot()
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		timer := metrics.StartTimer()
		log := FromCtx(r.Context())

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		requestsServed.Inc()
		responseClasses.With(fmt.Sprintf("%dxx", rec.status/100)).Inc()

		log.Info("incoming request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.String("ip", r.RemoteAddr),
			zap.Duration("duration", timer.Duration()),
		)
	})
}
