package api

import (
	"errors"
	"net/http"

	"cosmossdk.io/math"
	"github.com/gin-gonic/gin"

	"github.com/pi-chain/piswap/x/dex/keeper"
	"github.com/pi-chain/piswap/x/dex/types"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleQuote(c *gin.Context) {
	amountIn, ok := parseAmountQuery(c, "amount_in")
	if !ok {
		return
	}
	reserveIn, ok := parseAmountQuery(c, "reserve_in")
	if !ok {
		return
	}
	reserveOut, ok := parseAmountQuery(c, "reserve_out")
	if !ok {
		return
	}

	amountOut, err := keeper.Quote(amountIn, reserveIn, reserveOut)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, QuoteResponse{AmountOut: amountOut})
}

func (s *Server) handleGetGovernance(c *gin.Context) {
	gov, err := s.keeper.GetGovernance(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gov)
}

func (s *Server) handleGetPools(c *gin.Context) {
	pools, err := s.keeper.GetAllPools(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, PoolsResponse{Pools: pools})
}

func (s *Server) handleGetPool(c *gin.Context) {
	pool, err := s.keeper.GetPool(c.Request.Context(), c.Param("asset_a"), c.Param("asset_b"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pool)
}

func (s *Server) handleSpotPrice(c *gin.Context) {
	price, err := s.keeper.GetSpotPrice(c.Request.Context(), c.Param("asset_a"), c.Param("asset_b"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, SpotPriceResponse{Price: price.String()})
}

func (s *Server) handleGetPosition(c *gin.Context) {
	units, err := s.keeper.GetPosition(c.Request.Context(),
		c.Param("asset_a"), c.Param("asset_b"), c.Param("provider"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, PositionResponse{Units: units})
}

func (s *Server) handleGetBalance(c *gin.Context) {
	amount := s.ledger.BalanceOf(c.Request.Context(), c.Param("holder"), c.Param("asset"))
	c.JSON(http.StatusOK, BalanceResponse{
		Holder: c.Param("holder"),
		Asset:  c.Param("asset"),
		Amount: amount,
	})
}

func (s *Server) handleGetEvents(c *gin.Context) {
	if s.recent == nil {
		c.JSON(http.StatusOK, EventsResponse{})
		return
	}
	c.JSON(http.StatusOK, EventsResponse{Events: s.recent.Events()})
}

func (s *Server) handleAddLiquidity(c *gin.Context) {
	var msg types.MsgAddLiquidity
	if !bindAndValidate(c, &msg, s) {
		return
	}
	units, err := s.keeper.AddLiquidity(c.Request.Context(),
		msg.Provider, msg.AssetA, msg.AssetB, msg.AmountA, msg.AmountB)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, LiquidityResponse{Units: units})
}

func (s *Server) handleRemoveLiquidity(c *gin.Context) {
	var msg types.MsgRemoveLiquidity
	if !bindAndValidate(c, &msg, s) {
		return
	}
	err := s.keeper.RemoveLiquidity(c.Request.Context(),
		msg.Provider, msg.AssetA, msg.AssetB, msg.AmountA, msg.AmountB)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleSwap(c *gin.Context) {
	var msg types.MsgSwap
	if !bindAndValidate(c, &msg, s) {
		return
	}
	amountOut, err := s.keeper.Swap(c.Request.Context(),
		msg.Trader, msg.AssetIn, msg.AssetOut, msg.AmountIn)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, SwapResponse{AmountOut: amountOut})
}

func (s *Server) handleSimulateSwap(c *gin.Context) {
	var msg types.MsgSwap
	if err := c.ShouldBindJSON(&msg); err != nil {
		s.writeBadRequest(c, err)
		return
	}
	amountOut, err := s.keeper.SimulateSwap(c.Request.Context(),
		msg.AssetIn, msg.AssetOut, msg.AmountIn)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, SwapResponse{AmountOut: amountOut})
}

func (s *Server) handleUpdateFee(c *gin.Context) {
	var msg types.MsgUpdateFee
	if !bindAndValidate(c, &msg, s) {
		return
	}
	if err := s.keeper.UpdateFee(c.Request.Context(), msg.Caller, msg.FeeBps); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handlePause(c *gin.Context) {
	var msg AdminRequest
	if err := c.ShouldBindJSON(&msg); err != nil {
		s.writeBadRequest(c, err)
		return
	}
	if err := s.keeper.Pause(c.Request.Context(), msg.Caller); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleUnpause(c *gin.Context) {
	var msg AdminRequest
	if err := c.ShouldBindJSON(&msg); err != nil {
		s.writeBadRequest(c, err)
		return
	}
	if err := s.keeper.Unpause(c.Request.Context(), msg.Caller); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleWithdrawFees(c *gin.Context) {
	var msg types.MsgWithdrawFees
	if !bindAndValidate(c, &msg, s) {
		return
	}
	amount, err := s.keeper.WithdrawFees(c.Request.Context(), msg.Caller, msg.Asset)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, WithdrawFeesResponse{Asset: msg.Asset, Amount: amount})
}

type validator interface {
	ValidateBasic() error
}

func bindAndValidate(c *gin.Context, msg validator, s *Server) bool {
	if err := c.ShouldBindJSON(msg); err != nil {
		s.writeBadRequest(c, err)
		return false
	}
	if err := msg.ValidateBasic(); err != nil {
		s.writeError(c, err)
		return false
	}
	return true
}

func parseAmountQuery(c *gin.Context, name string) (math.Int, bool) {
	raw := c.Query(name)
	amount, ok := math.NewIntFromString(raw)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid " + name + ": " + raw,
		})
		return math.Int{}, false
	}
	return amount, true
}

func (s *Server) writeBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}

// writeError maps engine sentinel errors onto HTTP status codes.
func (s *Server) writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, types.ErrPoolNotFound):
		status = http.StatusNotFound
	case errors.Is(err, types.ErrUnauthorized):
		status = http.StatusForbidden
	case errors.Is(err, types.ErrPaused):
		status = http.StatusConflict
	case errors.Is(err, types.ErrAlreadyInitialized):
		status = http.StatusConflict
	case errors.Is(err, types.ErrNotInitialized):
		status = http.StatusServiceUnavailable
	case errors.Is(err, types.ErrInvalidAmount),
		errors.Is(err, types.ErrFeeTooHigh),
		errors.Is(err, types.ErrOverflow):
		status = http.StatusBadRequest
	case errors.Is(err, types.ErrInsufficientLiquidity),
		errors.Is(err, types.ErrInsufficientBalance):
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}
