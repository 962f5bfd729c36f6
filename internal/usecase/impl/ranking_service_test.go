package impl

import (
	"context"
	"testing"

	"ecospot/internal/domain/entity"
	mockRepo "ecospot/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankingService_TopUsers_AssignsRanks(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	cfg := newTestConfig()
	svc := NewRankingService(RankingServiceParams{UserRepo: userRepo, Config: cfg})
	ctx := context.Background()

	users := []*entity.User{
		{ID: uuid.New(), FullName: "Ada", Points: 40},
		{ID: uuid.New(), Points: 25},
	}
	userRepo.EXPECT().ListTopByPoints(ctx, 10).Return(users, nil)

	ranked, err := svc.TopUsers(ctx, 10)

	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, "Ada", ranked[0].FullName)
	assert.Equal(t, 2, ranked[1].Rank)
	assert.Equal(t, entity.UnknownAuthorName, ranked[1].FullName)
}

func TestRankingService_TopUsers_ClampsLimit(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	cfg := newTestConfig()
	svc := NewRankingService(RankingServiceParams{UserRepo: userRepo, Config: cfg})
	ctx := context.Background()

	userRepo.EXPECT().ListTopByPoints(ctx, cfg.Ranking.Limit).Return(nil, nil).Twice()

	_, err := svc.TopUsers(ctx, 0)
	require.NoError(t, err)
	_, err = svc.TopUsers(ctx, cfg.Ranking.Limit+1)
	require.NoError(t, err)
}
