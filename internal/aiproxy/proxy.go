// Package aiproxy mounts the AI sub-application. The sub-application is an
// external service; requests under the mount prefix are forwarded to it as-is.
package aiproxy

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"

	"community-board/internal/transport/httpdto"
	"community-board/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	MountPrefix      = "/api/ai"
	MsgNotConfigured = "AI service not configured"
	MsgUnavailable   = "AI service unavailable"
)

// New returns the handler serving MountPrefix. With an empty upstream every
// request is answered with 503.
func New(upstream string, l *logger.Logger) (gin.HandlerFunc, error) {
	if l == nil {
		l = logger.NewNop()
	}
	if upstream == "" {
		return notConfigured, nil
	}

	target, err := url.Parse(upstream)
	if err != nil || target.Scheme == "" || target.Host == "" {
		return nil, fmt.Errorf("invalid AI service url %q", upstream)
	}

	proxy := httputil.NewSingleHostReverseProxy(target)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		l.WithContext(r.Context()).Errorf("ai proxy %s %s: %v", r.Method, r.URL.Path, err)
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(httpdto.NewErrorResponse(MsgUnavailable))
	}

	return func(c *gin.Context) {
		proxy.ServeHTTP(c.Writer, c.Request)
	}, nil
}

func notConfigured(c *gin.Context) {
	c.JSON(http.StatusServiceUnavailable, httpdto.NewErrorResponse(MsgNotConfigured))
}

// Mount registers h for every method under MountPrefix. A request for the
// bare prefix is redirected to the trailing-slash form by gin.
func Mount(r gin.IRouter, h gin.HandlerFunc) {
	r.Any(MountPrefix+"/*path", h)
}
