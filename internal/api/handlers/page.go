package handlers

import (
	"strconv"

	"github.com/fystack/cardano-query/internal/rpc"
	"github.com/fystack/cardano-query/internal/rpc/blockfrost"
	"github.com/fystack/cardano-query/pkg/common/enum"
	"github.com/gin-gonic/gin"
)

// pageFromQuery reads count, page and order. Missing parameters keep the defaults.
func pageFromQuery(c *gin.Context) (blockfrost.Page, error) {
	var p blockfrost.Page
	if v := c.Query("count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return p, &rpc.ConfigurationError{Field: "count", Reason: "must be an integer"}
		}
		p.Count = n
	}
	if v := c.Query("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return p, &rpc.ConfigurationError{Field: "page", Reason: "must be an integer"}
		}
		p.Page = n
	}
	p.Order = enum.Order(c.Query("order"))
	return p, nil
}
