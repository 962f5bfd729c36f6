package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "ecospot/internal/delivery/context"
	"ecospot/internal/domain/constants"
	"ecospot/internal/domain/entity"
	domainerrors "ecospot/internal/domain/errors"
	"ecospot/internal/domain/repository"
	"ecospot/internal/domain/service"
	"ecospot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxCommentLength = 1000

type commentService struct {
	txManager   repository.TransactionManager
	spotRepo    repository.SpotRepository
	commentRepo repository.CommentRepository
	bus         service.ChangeBus
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for CommentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	SpotRepo    repository.SpotRepository
	CommentRepo repository.CommentRepository
	ChangeBus   service.ChangeBus
	Logger      *slog.Logger
}

// NewCommentService creates a new comment service.
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		txManager:   params.TxManager,
		spotRepo:    params.SpotRepo,
		commentRepo: params.CommentRepo,
		bus:         params.ChangeBus,
		logger:      params.Logger,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddComment appends a comment to a spot and rewards its author.
func (srv *commentService) AddComment(ctx context.Context, userID, spotID uuid.UUID, text string) (*entity.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("comment text is required")
	}
	if utf8.RuneCountInString(text) > maxCommentLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("comment text is too long")
	}

	comment := &entity.Comment{SpotID: spotID, Text: text, AuthorID: userID}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.SpotRepo().FindByID(ctx, spotID); err != nil {
			if errors.Is(err, repository.ErrSpotNotFound) {
				return domainerrors.ErrSpotNotFound
			}

			return errors.Wrap(err, "failed to find spot")
		}

		author, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to load author")
		}
		comment.AuthorName = author.DisplayName()

		if err := repoFactory.CommentRepo().Create(ctx, comment); err != nil {
			return errors.Wrap(err, "failed to create comment")
		}

		if err := repoFactory.UserRepo().AddPoints(ctx, userID, entity.PointsAddComment); err != nil {
			return errors.Wrap(err, "failed to reward comment")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	publishChanges(ctx, srv.bus, srv.log(ctx), constants.SpotCommentsTopic(spotID.String()))

	return comment, nil
}

// ListComments returns the comments of an existing spot, oldest first.
func (srv *commentService) ListComments(ctx context.Context, spotID uuid.UUID) ([]*entity.Comment, error) {
	if _, err := srv.spotRepo.FindByID(ctx, spotID); err != nil {
		if errors.Is(err, repository.ErrSpotNotFound) {
			return nil, domainerrors.ErrSpotNotFound
		}

		return nil, errors.Wrap(err, "failed to find spot")
	}

	comments, err := srv.commentRepo.ListBySpot(ctx, spotID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	return comments, nil
}
