package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"ecospot/config"
	"ecospot/internal/domain/repository"
	mockRepo "ecospot/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	return cfg
}

// txRepos are the repositories handed to a transaction callback.
type txRepos struct {
	factory     *mockRepo.MockRepositoryFactory
	userRepo    *mockRepo.MockUserRepository
	authRepo    *mockRepo.MockAuthRepository
	spotRepo    *mockRepo.MockSpotRepository
	ratingRepo  *mockRepo.MockRatingRepository
	commentRepo *mockRepo.MockCommentRepository
}

func newTxRepos(t *testing.T) *txRepos {
	repos := &txRepos{
		factory:     mockRepo.NewMockRepositoryFactory(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		authRepo:    mockRepo.NewMockAuthRepository(t),
		spotRepo:    mockRepo.NewMockSpotRepository(t),
		ratingRepo:  mockRepo.NewMockRatingRepository(t),
		commentRepo: mockRepo.NewMockCommentRepository(t),
	}
	repos.factory.EXPECT().UserRepo().Return(repos.userRepo).Maybe()
	repos.factory.EXPECT().AuthRepo().Return(repos.authRepo).Maybe()
	repos.factory.EXPECT().SpotRepo().Return(repos.spotRepo).Maybe()
	repos.factory.EXPECT().RatingRepo().Return(repos.ratingRepo).Maybe()
	repos.factory.EXPECT().CommentRepo().Return(repos.commentRepo).Maybe()

	return repos
}

// expectTransaction runs the callback against repos and returns its error.
func expectTransaction(txManager *mockRepo.MockTransactionManager, repos *txRepos) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repos.factory)
		})
}
