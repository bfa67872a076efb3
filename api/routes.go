package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	s.router.GET("/healthz", s.handleHealth)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.router.Group("/v1")
	{
		v1.GET("/quote", s.handleQuote)
		v1.GET("/governance", s.handleGetGovernance)
		v1.GET("/pools", s.handleGetPools)
		v1.GET("/pools/:asset_a/:asset_b", s.handleGetPool)
		v1.GET("/pools/:asset_a/:asset_b/spot", s.handleSpotPrice)
		v1.GET("/positions/:asset_a/:asset_b/:provider", s.handleGetPosition)
		v1.GET("/balances/:holder/:asset", s.handleGetBalance)
		v1.GET("/events", s.handleGetEvents)

		v1.POST("/liquidity/add", s.handleAddLiquidity)
		v1.POST("/liquidity/remove", s.handleRemoveLiquidity)
		v1.POST("/swap", s.handleSwap)
		v1.POST("/swap/simulate", s.handleSimulateSwap)

		admin := v1.Group("/admin")
		{
			admin.POST("/fee", s.handleUpdateFee)
			admin.POST("/pause", s.handlePause)
			admin.POST("/unpause", s.handleUnpause)
			admin.POST("/withdraw-fees", s.handleWithdrawFees)
		}
	}
}
