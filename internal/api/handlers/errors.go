package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/fystack/cardano-query/internal/resultstore"
	"github.com/fystack/cardano-query/internal/rpc"
	"github.com/fystack/cardano-query/pkg/common/logger"
	"github.com/gin-gonic/gin"
)

// statusFor maps a lookup error to the gateway response status.
func statusFor(err error) (int, string) {
	var perr *rpc.ProviderError
	var derr *rpc.DecodeError
	switch {
	case errors.Is(err, rpc.ErrConfiguration):
		return http.StatusBadRequest, "configuration"
	case errors.Is(err, rpc.ErrNotFound), errors.Is(err, resultstore.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, rpc.ErrAuth):
		return http.StatusBadGateway, "auth"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "transport"
	case errors.As(err, &perr):
		return http.StatusBadGateway, "provider"
	case errors.As(err, &derr):
		return http.StatusBadGateway, "decode"
	default:
		return http.StatusBadGateway, "transport"
	}
}

func writeError(c *gin.Context, err error) {
	status, kind := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error("Lookup failed", "path", c.Request.URL.Path, "error", err)
	}
	c.JSON(status, gin.H{"error": err.Error(), "kind": kind})
}
