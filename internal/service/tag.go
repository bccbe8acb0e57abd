package service

import (
	"errors"
	"fmt"
	"time"

	"bookmark-manager-backend/internal/database/models"
	apperrors "bookmark-manager-backend/internal/errors"
	"bookmark-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// TagService provides tag-related business logic
type TagService struct {
	tags      repository.TagRepositoryInterface
	validator *validator.Validate
}

// Ensure TagService implements TagServiceInterface
var _ TagServiceInterface = (*TagService)(nil)

// NewTagService creates a new TagService
func NewTagService(tags repository.TagRepositoryInterface, validator *validator.Validate) *TagService {
	return &TagService{
		tags:      tags,
		validator: validator,
	}
}

// CreateTagRequest represents the request to create a tag
type CreateTagRequest struct {
	Name      string `json:"name" validate:"required,max=60"`
	SortOrder int64  `json:"sort_order,omitempty"`
}

// UpdateTagRequest represents a partial tag update
type UpdateTagRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1,max=60"`
	SortOrder *int64  `json:"sort_order,omitempty"`
}

// TagResponse represents a single tag in API responses
type TagResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	SortOrder int64     `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// List retrieves all tags in the scope in display order
func (s *TagService) List(userID int64) ([]TagResponse, error) {
	tags, err := s.tags.List(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	responses := make([]TagResponse, len(tags))
	for i, t := range tags {
		responses[i] = s.toResponse(&t)
	}
	return responses, nil
}

// Create adds a new tag to the scope
func (s *TagService) Create(userID int64, req *CreateTagRequest) (*TagResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if _, err := s.tags.GetByName(req.Name, userID); err == nil {
		return nil, apperrors.ErrTagExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check tag name: %w", err)
	}

	tag := &models.Tag{
		UserID:    userID,
		Name:      req.Name,
		SortOrder: req.SortOrder,
	}
	if err := s.tags.Create(tag); err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	resp := s.toResponse(tag)
	return &resp, nil
}

// Update applies a partial update to a tag
func (s *TagService) Update(userID, id int64, req *UpdateTagRequest) (*TagResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		if other, err := s.tags.GetByName(*req.Name, userID); err == nil && other.ID != id {
			return nil, apperrors.ErrTagExists
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check tag name: %w", err)
		}
		fields["name"] = *req.Name
	}
	if req.SortOrder != nil {
		fields["sort_order"] = *req.SortOrder
	}

	if len(fields) > 0 {
		if err := s.tags.Update(id, userID, fields); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrTagNotFound
			}
			return nil, fmt.Errorf("failed to update tag: %w", err)
		}
	}

	tag, err := s.tags.GetByID(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}
	resp := s.toResponse(tag)
	return &resp, nil
}

// Delete removes a tag from the scope
func (s *TagService) Delete(userID, id int64) error {
	if err := s.tags.Delete(id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTagNotFound
		}
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	return nil
}

// toResponse converts a Tag model to API response
func (s *TagService) toResponse(tag *models.Tag) TagResponse {
	return TagResponse{
		ID:        tag.ID,
		Name:      tag.Name,
		SortOrder: tag.SortOrder,
		CreatedAt: tag.CreatedAt,
		UpdatedAt: tag.UpdatedAt,
	}
}
