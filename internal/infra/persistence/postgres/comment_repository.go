package postgres

import (
	"context"

	"ecospot/internal/domain/entity"
	domainerrors "ecospot/internal/domain/errors"
	"ecospot/internal/domain/repository"
	"ecospot/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// commentRepository implements the domain.CommentRepository interface.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

// Create appends a comment to a spot.
func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentM := &model.CommentModel{
		ID:         comment.ID,
		SpotID:     comment.SpotID,
		Text:       comment.Text,
		AuthorID:   comment.AuthorID,
		AuthorName: comment.AuthorName,
		CreatedAt:  comment.CreatedAt,
	}
	if commentM.ID == uuid.Nil {
		commentM.ID = uuid.Must(uuid.NewV7())
	}

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrSpotNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt

	return nil
}

// ListBySpot returns a spot's comments, oldest first.
func (repo *commentRepository) ListBySpot(ctx context.Context, spotID uuid.UUID) ([]*entity.Comment, error) {
	var commentModels []*model.CommentModel
	err := repo.db.WithContext(ctx).
		Where("spot_id = ?", spotID).
		Order("created_at ASC").
		Find(&commentModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	comments := make([]*entity.Comment, 0, len(commentModels))
	for _, commentM := range commentModels {
		comments = append(comments, &entity.Comment{
			ID:         commentM.ID,
			SpotID:     commentM.SpotID,
			Text:       commentM.Text,
			AuthorID:   commentM.AuthorID,
			AuthorName: commentM.AuthorName,
			CreatedAt:  commentM.CreatedAt,
		})
	}

	return comments, nil
}
