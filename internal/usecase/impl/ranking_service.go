package impl

import (
	"context"

	"ecospot/config"
	"ecospot/internal/domain/entity"
	"ecospot/internal/domain/repository"
	"ecospot/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type rankingService struct {
	userRepo     repository.UserRepository
	defaultLimit int
}

// RankingServiceParams holds dependencies for RankingService, injected by Fx.
type RankingServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Config   *config.Config
}

// NewRankingService creates a new ranking service.
func NewRankingService(params RankingServiceParams) usecase.RankingUsecase {
	return &rankingService{
		userRepo:     params.UserRepo,
		defaultLimit: params.Config.Ranking.Limit,
	}
}

// TopUsers returns the leaderboard. Out-of-range limits fall back to the configured size.
func (srv *rankingService) TopUsers(ctx context.Context, limit int) ([]*entity.RankedUser, error) {
	if limit <= 0 || limit > srv.defaultLimit {
		limit = srv.defaultLimit
	}

	users, err := srv.userRepo.ListTopByPoints(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list top users")
	}

	ranked := make([]*entity.RankedUser, len(users))
	for i, user := range users {
		ranked[i] = &entity.RankedUser{
			Rank:            i + 1,
			UserID:          user.ID,
			FullName:        user.DisplayName(),
			ProfileImageURL: user.ProfileImageURL,
			Points:          user.Points,
		}
	}

	return ranked, nil
}
