package handlers

import (
	"net/http"
	"strings"

	"github.com/fystack/cardano-query/internal/resultstore"
	"github.com/gin-gonic/gin"
)

// ResultHandler serves the latest stored result per query
type ResultHandler struct {
	store *resultstore.Store
}

func NewResultHandler(store *resultstore.Store) *ResultHandler {
	return &ResultHandler{store: store}
}

// List returns stored results, optionally filtered by provider
// GET /api/v1/results?provider=
func (h *ResultHandler) List(c *gin.Context) {
	entries, err := h.store.List(c.Query("provider"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if entries == nil {
		entries = []resultstore.Entry{}
	}
	c.JSON(http.StatusOK, entries)
}

// Get returns the latest result of one query
// GET /api/v1/results/:provider/:kind/*id
// Paged ids carry the page, e.g. /results/blockfrost/account-addresses/stake1.../10-2-asc
func (h *ResultHandler) Get(c *gin.Context) {
	id := strings.TrimPrefix(c.Param("id"), "/")
	entry, err := h.store.Get(c.Param("provider"), c.Param("kind"), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}
