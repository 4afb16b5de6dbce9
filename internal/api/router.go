package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fystack/cardano-query/internal/api/handlers"
	"github.com/fystack/cardano-query/internal/api/middleware"
	"github.com/fystack/cardano-query/internal/resultstore"
	"github.com/fystack/cardano-query/internal/rpc/blockfrost"
	"github.com/fystack/cardano-query/internal/rpc/koios"
)

// Router wraps the Gin router with handlers
type Router struct {
	engine            *gin.Engine
	blockfrostHandler *handlers.BlockfrostHandler
	koiosHandler      *handlers.KoiosHandler
	resultHandler     *handlers.ResultHandler
}

// NewRouter creates a new Router. store may be nil, which disables /api/v1/results.
func NewRouter(bf blockfrost.BlockfrostAPI, ko koios.KoiosAPI, store *resultstore.Store) *Router {
	gin.SetMode(gin.ReleaseMode)

	r := &Router{
		engine:            gin.New(),
		blockfrostHandler: handlers.NewBlockfrostHandler(bf, store),
		koiosHandler:      handlers.NewKoiosHandler(ko, store),
	}
	if store != nil {
		r.resultHandler = handlers.NewResultHandler(store)
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger())
	r.engine.Use(middleware.CORS())
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.engine.Group("/api/v1")

	bf := v1.Group("/blockfrost")
	{
		bf.GET("/accounts/:stake", r.blockfrostHandler.GetAccount)
		bf.GET("/accounts/:stake/addresses", r.blockfrostHandler.GetAccountAddresses)
		bf.GET("/accounts/:stake/assets", r.blockfrostHandler.GetAccountAssets)
		bf.GET("/addresses/:address", r.blockfrostHandler.GetAddress)
		bf.GET("/assets", r.blockfrostHandler.ListAssets)
		bf.GET("/assets/:asset", r.blockfrostHandler.GetAsset)
		bf.GET("/txs/:hash", r.blockfrostHandler.GetTransaction)
	}

	ko := v1.Group("/koios")
	{
		ko.GET("/accounts/:stake", r.koiosHandler.GetAccount)
		ko.GET("/addresses/:address", r.koiosHandler.GetAddress)
		ko.GET("/assets/:policy", r.koiosHandler.GetAssetInfo)
		ko.GET("/txs/:hash", r.koiosHandler.GetTransaction)
	}

	if r.resultHandler != nil {
		results := v1.Group("/results")
		{
			results.GET("", r.resultHandler.List)
			results.GET("/:provider/:kind/*id", r.resultHandler.Get)
		}
	}
}

// Engine returns the underlying Gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
