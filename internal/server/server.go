package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/SmsAuto_Go/docs"
	"github.com/osse101/SmsAuto_Go/internal/handler"
	"github.com/osse101/SmsAuto_Go/internal/logger"
	"github.com/osse101/SmsAuto_Go/internal/metrics"
	"github.com/osse101/SmsAuto_Go/internal/sse"
)

// Deps are the collaborators behind the HTTP API. Receiver, History and DB
// are optional; leave them nil to disable ingest, history or the database
// readiness check.
type Deps struct {
	Port   int
	APIKey string

	ListenerEnabled bool
	State           handler.ConnectionState
	Receiver        handler.NotificationReceiver
	Records         handler.RecordReader
	Deleter         handler.RecordDeleter
	Logs            handler.LogSource
	History         handler.HistoryReader
	DB              handler.Pinger
	Hub             *sse.Hub
}

type Server struct {
	httpServer *http.Server
}

// NewServer builds the router and the underlying http.Server.
// Open event streams never go idle, so the hub is stopped as soon as
// shutdown begins; that ends every stream and lets Shutdown finish.
func NewServer(deps Deps) *Server {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", deps.Port),
		Handler:           NewRouter(deps),
		ReadHeaderTimeout: ReadHeaderTimeout,
		IdleTimeout:       IdleTimeout,
	}
	if deps.Hub != nil {
		srv.RegisterOnShutdown(deps.Hub.Stop)
	}
	return &Server{httpServer: srv}
}

// NewRouter wires every route and the middleware stack.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector(RateLimitPerWindow, RateWindow)

	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(AuthMiddleware(deps.APIKey, detector))
	r.Use(RateLimitMiddleware(detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.State, deps.DB))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if deps.Receiver != nil {
			r.Post("/notifications", handler.HandleIngestNotification(deps.Receiver))
		}

		r.Get("/status", handler.HandleStatus(deps.ListenerEnabled, deps.State))
		r.Get("/log", handler.HandleLog(deps.ListenerEnabled, deps.State, deps.Logs))

		r.Get("/record", handler.HandleGetRecord(deps.Records))
		r.Delete("/record", handler.HandleDeleteRecord(deps.Deleter))

		if deps.History != nil {
			r.Get("/history", handler.HandleHistory(deps.History))
		}

		if deps.Hub != nil {
			r.Get("/events", sse.Handler(deps.Hub))
		}
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush keeps the event stream working through the wrapper.
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func isQuietPath(path string) bool {
	for _, p := range quietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start serves until Stop is called. A graceful stop is not an error.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln until Stop is called.
func (s *Server) Serve(ln net.Listener) error {
	logger.Info(LogMsgServerStarting, "addr", ln.Addr().String())
	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logger.Info(LogMsgServerStopped)
	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
