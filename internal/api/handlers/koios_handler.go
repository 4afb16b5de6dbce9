package handlers

import (
	"net/http"

	"github.com/fystack/cardano-query/internal/resultstore"
	"github.com/fystack/cardano-query/internal/rpc/koios"
	"github.com/fystack/cardano-query/pkg/cardano"
	"github.com/fystack/cardano-query/pkg/common/logger"
	"github.com/gin-gonic/gin"
)

// KoiosHandler proxies typed Koios lookups
type KoiosHandler struct {
	client koios.KoiosAPI
	store  *resultstore.Store
}

// NewKoiosHandler creates a new KoiosHandler. store may be nil.
func NewKoiosHandler(client koios.KoiosAPI, store *resultstore.Store) *KoiosHandler {
	return &KoiosHandler{client: client, store: store}
}

func (h *KoiosHandler) respond(c *gin.Context, kind, id string, record any, err error) {
	if err != nil {
		writeError(c, err)
		return
	}
	if h.store != nil {
		if err := h.store.Put(string(h.client.GetProvider()), kind, id, record); err != nil {
			logger.Warn("Failed to store result", "kind", kind, "error", err)
		}
	}
	c.JSON(http.StatusOK, record)
}

// GET /api/v1/koios/accounts/:stake
func (h *KoiosHandler) GetAccount(c *gin.Context) {
	stake := c.Param("stake")
	account, err := h.client.GetAccount(c.Request.Context(), stake)
	h.respond(c, resultstore.KindAccount, stake, account, err)
}

// GET /api/v1/koios/addresses/:address
func (h *KoiosHandler) GetAddress(c *gin.Context) {
	address := c.Param("address")
	addr, err := h.client.GetAddress(c.Request.Context(), address)
	h.respond(c, resultstore.KindAddress, address, addr, err)
}

// GetAssetInfo returns a native asset. The hex asset name is optional.
// GET /api/v1/koios/assets/:policy?asset_name=
func (h *KoiosHandler) GetAssetInfo(c *gin.Context) {
	policy := c.Param("policy")
	name := c.Query("asset_name")
	asset, err := h.client.GetAssetInfo(c.Request.Context(), policy, name)
	h.respond(c, resultstore.KindAsset, cardano.AssetID(policy, name), asset, err)
}

// GET /api/v1/koios/txs/:hash
func (h *KoiosHandler) GetTransaction(c *gin.Context) {
	hash := c.Param("hash")
	tx, err := h.client.GetTransaction(c.Request.Context(), hash)
	h.respond(c, resultstore.KindTransaction, hash, tx, err)
}
