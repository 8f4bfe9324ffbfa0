package services

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/russellpeiris/mocked/internal/apperr"
	"github.com/russellpeiris/mocked/internal/domain"
	"github.com/russellpeiris/mocked/internal/repos"
	"github.com/russellpeiris/mocked/internal/validate"
)

type FeedbackService struct {
	Feedback *repos.FeedbackRepo
}

func NewFeedbackService(fb *repos.FeedbackRepo) *FeedbackService {
	return &FeedbackService{Feedback: fb}
}

func (s *FeedbackService) Submit(email string, productID domain.ProductID, comment string, rating int) (*domain.Feedback, error) {
	if !validate.Rating(rating) {
		return nil, apperr.Validation("rating must be between 1 and 5")
	}
	f := &domain.Feedback{
		ID:        uuid.NewString(),
		Email:     email,
		ProductID: productID,
		Comment:   comment,
		Rating:    rating,
	}
	if err := s.Feedback.Create(f); err != nil {
		return nil, apperr.Internal(err)
	}
	return f, nil
}

func (s *FeedbackService) ForProductAndEmail(productID domain.ProductID, email string) (domain.Feedback, error) {
	f, err := s.Feedback.ByProductAndEmail(productID, email)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Feedback{}, apperr.NotFound("No feedback found for this product and email")
	}
	if err != nil {
		return domain.Feedback{}, apperr.Internal(err)
	}
	return f, nil
}
