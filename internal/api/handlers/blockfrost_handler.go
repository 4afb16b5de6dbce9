package handlers

import (
	"net/http"

	"github.com/fystack/cardano-query/internal/resultstore"
	"github.com/fystack/cardano-query/internal/rpc/blockfrost"
	"github.com/fystack/cardano-query/pkg/common/logger"
	"github.com/gin-gonic/gin"
)

// BlockfrostHandler proxies typed Blockfrost lookups
type BlockfrostHandler struct {
	client blockfrost.BlockfrostAPI
	store  *resultstore.Store
}

// NewBlockfrostHandler creates a new BlockfrostHandler. store may be nil.
func NewBlockfrostHandler(client blockfrost.BlockfrostAPI, store *resultstore.Store) *BlockfrostHandler {
	return &BlockfrostHandler{client: client, store: store}
}

func (h *BlockfrostHandler) respond(c *gin.Context, kind, id string, record any, err error) {
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

// GetAccount returns a stake account
// GET /api/v1/blockfrost/accounts/:stake
func (h *BlockfrostHandler) GetAccount(c *gin.Context) {
	stake := c.Param("stake")
	account, err := h.client.GetAccount(c.Request.Context(), stake)
	h.respond(c, resultstore.KindAccount, stake, account, err)
}

// GetAccountAddresses returns the addresses of a stake account
// GET /api/v1/blockfrost/accounts/:stake/addresses
func (h *BlockfrostHandler) GetAccountAddresses(c *gin.Context) {
	page, err := pageFromQuery(c)
	if err != nil {
		writeError(c, err)
		return
	}
	stake := c.Param("stake")
	addrs, err := h.client.GetAccountAddresses(c.Request.Context(), stake, page)
	h.respond(c, resultstore.KindAccountAddresses, blockfrost.PageKey(stake, page), addrs, err)
}

// GetAccountAssets returns the assets held by a stake account
// GET /api/v1/blockfrost/accounts/:stake/assets
func (h *BlockfrostHandler) GetAccountAssets(c *gin.Context) {
	page, err := pageFromQuery(c)
	if err != nil {
		writeError(c, err)
		return
	}
	stake := c.Param("stake")
	assets, err := h.client.GetAccountAssets(c.Request.Context(), stake, page)
	h.respond(c, resultstore.KindAccountAssets, blockfrost.PageKey(stake, page), assets, err)
}

// GET /api/v1/blockfrost/addresses/:address
func (h *BlockfrostHandler) GetAddress(c *gin.Context) {
	address := c.Param("address")
	addr, err := h.client.GetAddress(c.Request.Context(), address)
	h.respond(c, resultstore.KindAddress, address, addr, err)
}

// GET /api/v1/blockfrost/assets
func (h *BlockfrostHandler) ListAssets(c *gin.Context) {
	page, err := pageFromQuery(c)
	if err != nil {
		writeError(c, err)
		return
	}
	assets, err := h.client.ListAssets(c.Request.Context(), page)
	h.respond(c, resultstore.KindAssets, page.String(), assets, err)
}

// GET /api/v1/blockfrost/assets/:asset
func (h *BlockfrostHandler) GetAsset(c *gin.Context) {
	assetID := c.Param("asset")
	asset, err := h.client.GetAsset(c.Request.Context(), assetID)
	h.respond(c, resultstore.KindAsset, assetID, asset, err)
}

// GET /api/v1/blockfrost/txs/:hash
func (h *BlockfrostHandler) GetTransaction(c *gin.Context) {
	hash := c.Param("hash")
	tx, err := h.client.GetTransaction(c.Request.Context(), hash)
	h.respond(c, resultstore.KindTransaction, hash, tx, err)
}
