package handler

import (
	"ecospot/internal/delivery/api/response"
	domainerrors "ecospot/internal/domain/errors"
	"ecospot/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RankingHandlerParams holds dependencies for RankingHandler, injected by Fx.
type RankingHandlerParams struct {
	fx.In

	RankingUC usecase.RankingUsecase
}

// RankingHandler serves the points leaderboard.
type RankingHandler struct {
	rankingUC usecase.RankingUsecase
}

// NewRankingHandler is the constructor for RankingHandler.
func NewRankingHandler(params RankingHandlerParams) *RankingHandler {
	return &RankingHandler{rankingUC: params.RankingUC}
}

// TopUsers returns the leaderboard. The optional limit query caps its length.
func (h *RankingHandler) TopUsers(c echo.Context) error {
	var limit int
	if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid limit")
	}

	ranked, err := h.rankingUC.TopUsers(c.Request().Context(), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, ranked)
}
