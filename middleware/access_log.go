package middleware

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/blogem/enterprise-api/models"
	"github.com/blogem/enterprise-api/repositories"
)

// AccessLogOptions tunes the access log middleware
type AccessLogOptions struct {
	// WriteTimeout bounds a single sink write. Zero means no bound.
	WriteTimeout time.Duration
	// OnWriteError is called after a failed sink write
	OnWriteError func(error)
}

// AccessLogger records exactly one access log entry per request, including
// error responses. The entry is written before the handler chain returns to
// the server, so sink latency adds to request latency. A failed write is
// logged and otherwise ignored; it never changes the response.
//
// If a downstream handler panics the entry is still written, with status 500
// unless a status had already been sent, and the panic is propagated.
func AccessLogger(sink repositories.AccessLogRepository, logger zerolog.Logger, opts AccessLogOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				rec := recover()

				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
					if rec != nil {
						status = http.StatusInternalServerError
					}
				}

				entry := newAccessLogEntry(r, start, time.Since(start), status)
				writeAccessLog(r.Context(), sink, logger, opts, entry)

				if rec != nil {
					panic(rec)
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func writeAccessLog(parent context.Context, sink repositories.AccessLogRepository, logger zerolog.Logger, opts AccessLogOptions, entry *models.AccessLogEntry) {
	// The client may already be gone; the entry is still recorded.
	ctx := context.WithoutCancel(parent)
	if opts.WriteTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.WriteTimeout)
		defer cancel()
	}

	if err := sink.Create(ctx, entry); err != nil {
		logger.Error().
			Err(err).
			Str("request_id", chimw.GetReqID(parent)).
			Str("method", entry.Method).
			Str("route", entry.Route).
			Int("status", entry.ResponseCode).
			Msg("failed to write access log")
		if opts.OnWriteError != nil {
			opts.OnWriteError(err)
		}
	}
}

func newAccessLogEntry(r *http.Request, start time.Time, elapsed time.Duration, status int) *models.AccessLogEntry {
	return &models.AccessLogEntry{
		RequestType:  r.Method,
		Route:        requestURL(r),
		Datetime:     start.UTC(),
		Duration:     elapsed.Seconds(),
		ResponseCode: status,
		Method:       r.Method,
		IPAddress:    clientIP(r),
		UserAgent:    userAgent(r),
	}
}

// requestURL rebuilds the absolute URL the client asked for
func requestURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	u := url.URL{
		Scheme:   scheme,
		Host:     r.Host,
		Path:     r.URL.Path,
		RawPath:  r.URL.RawPath,
		RawQuery: r.URL.RawQuery,
	}
	return u.String()
}

// clientIP returns the peer host, or nil when the transport gave no address.
// With RealIP in front, RemoteAddr already holds the forwarded client IP.
func clientIP(r *http.Request) *string {
	if r.RemoteAddr == "" {
		return nil
	}

	ip := r.RemoteAddr
	if host, _, err := net.SplitHostPort(ip); err == nil {
		ip = host
	}
	return &ip
}

func userAgent(r *http.Request) *string {
	if _, ok := r.Header["User-Agent"]; !ok {
		return nil
	}
	ua := r.UserAgent()
	return &ua
}
