package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/anonymous-sherlock/shopify-api/internal/platform/config"
)

// CORS applies the configured cross-origin policy to every route, the same
// blanket treatment the upstream service gave its single endpoint.
type CORS struct {
	allowedOrigins string
	allowedMethods string
	allowedHeaders string
	maxAge         string
}

func NewCORS(cfg config.CORSConfig) *CORS {
	origins := "*"
	if len(cfg.AllowedOrigins) > 0 {
		origins = strings.Join(cfg.AllowedOrigins, ", ")
	}
	methods := "GET, POST, OPTIONS"
	if len(cfg.AllowedMethods) > 0 {
		methods = strings.Join(cfg.AllowedMethods, ", ")
	}
	headers := "Content-Type, X-Shopify-Hmac-Sha256"
	if len(cfg.AllowedHeaders) > 0 {
		headers = strings.Join(cfg.AllowedHeaders, ", ")
	}
	maxAge := "600"
	if cfg.MaxAge > 0 {
		maxAge = strconv.Itoa(cfg.MaxAge)
	}

	return &CORS{
		allowedOrigins: origins,
		allowedMethods: methods,
		allowedHeaders: headers,
		maxAge:         maxAge,
	}
}

func (c *CORS) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", c.allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", c.allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", c.allowedHeaders)
		w.Header().Set("Access-Control-Max-Age", c.maxAge)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next(w, r)
	}
}
