package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bookmark-manager-backend/internal/database/models"
	apperrors "bookmark-manager-backend/internal/errors"
	"bookmark-manager-backend/internal/logger"
	"bookmark-manager-backend/internal/pinyin"
	"bookmark-manager-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	// DefaultPageSize is used when the caller does not specify a limit
	DefaultPageSize = 20
	// SearchResultCap bounds the quick-search endpoint
	SearchResultCap = 100
)

// allowedPageSizes is the closed set of page sizes the list endpoint accepts
var allowedPageSizes = map[int]bool{10: true, 20: true, 30: true, 50: true, 100: true}

// sorterColumns maps API sorter keys to ORDER BY expressions. "manual" is the
// hand-arranged order, the others sort by timestamp ("-" prefix = descending).
var sorterColumns = map[string]string{
	"manual":      "sort_order DESC, updated_at DESC",
	"+createTime": "created_at ASC",
	"-createTime": "created_at DESC",
	"+updateTime": "updated_at ASC",
	"-updateTime": "updated_at DESC",
	// bare keys accepted because "+" does not survive query-string encoding
	"createTime": "created_at ASC",
	"updateTime": "updated_at ASC",
}

// BookmarkService provides bookmark-related business logic. A single
// implementation serves both collections: userID 0 addresses the shared
// public rows, any other value the rows owned by that user.
type BookmarkService struct {
	bookmarks    repository.BookmarkRepositoryInterface
	bookmarkTags repository.BookmarkTagRepositoryInterface
	tags         repository.TagRepositoryInterface
	validator    *validator.Validate
}

// Ensure BookmarkService implements BookmarkServiceInterface
var _ BookmarkServiceInterface = (*BookmarkService)(nil)

// NewBookmarkService creates a new BookmarkService
func NewBookmarkService(
	bookmarks repository.BookmarkRepositoryInterface,
	bookmarkTags repository.BookmarkTagRepositoryInterface,
	tags repository.TagRepositoryInterface,
	validator *validator.Validate,
) *BookmarkService {
	return &BookmarkService{
		bookmarks:    bookmarks,
		bookmarkTags: bookmarkTags,
		tags:         tags,
		validator:    validator,
	}
}

// CreateBookmarkRequest represents the request to create a bookmark
type CreateBookmarkRequest struct {
	Name      string  `json:"name" validate:"required,max=200"`
	URL       string  `json:"url" validate:"required,max=2000"`
	Pinyin    string  `json:"pinyin,omitempty" validate:"max=400"`
	Icon      string  `json:"icon,omitempty" validate:"max=2000"`
	IsPinned  bool    `json:"is_pinned,omitempty"`
	SortOrder *int64  `json:"sort_order,omitempty"`
	TagIDs    []int64 `json:"tag_ids,omitempty"`
}

// UpdateBookmarkRequest represents a partial bookmark update. Nil pointer
// fields are left untouched. TagIDs follows the association policy: nil
// leaves the tag set alone, an empty slice clears it.
type UpdateBookmarkRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	URL       *string `json:"url,omitempty" validate:"omitempty,min=1,max=2000"`
	Pinyin    *string `json:"pinyin,omitempty" validate:"omitempty,max=400"`
	Icon      *string `json:"icon,omitempty" validate:"omitempty,max=2000"`
	IsPinned  *bool   `json:"is_pinned,omitempty"`
	SortOrder *int64  `json:"sort_order,omitempty"`
	TagIDs    []int64 `json:"tag_ids,omitempty"`
}

// BookmarkQuery represents the list query parameters
type BookmarkQuery struct {
	Page     int      `json:"page" form:"page"`
	Limit    int      `json:"limit" form:"limit"`
	Keyword  string   `json:"keyword" form:"keyword"`
	TagIDs   []int64  `json:"tag_ids" form:"tag_ids"`
	TagNames []string `json:"tag_names" form:"tag_names"`
	Sorter   string   `json:"sorter" form:"sorter"`
}

// BookmarkResponse represents a single bookmark in API responses
type BookmarkResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Pinyin    string    `json:"pinyin"`
	Icon      string    `json:"icon,omitempty"`
	IsPinned  bool      `json:"is_pinned"`
	SortOrder int64     `json:"sort_order"`
	TagIDs    []int64   `json:"tag_ids"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookmarkListResponse represents a paginated list of bookmarks
type BookmarkListResponse struct {
	List    []BookmarkResponse `json:"list"`
	Total   int64              `json:"total"`
	Page    int                `json:"page"`
	Limit   int                `json:"limit"`
	HasMore bool               `json:"has_more"`
}

// Insert creates a new bookmark in the given scope
func (s *BookmarkService) Insert(userID int64, req *CreateBookmarkRequest) (*BookmarkResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	// Duplicate name or URL within the scope is rejected
	if _, err := s.bookmarks.GetByName(req.Name, userID); err == nil {
		return nil, apperrors.ErrBookmarkExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check bookmark name: %w", err)
	}
	if _, err := s.bookmarks.GetByURL(req.URL, userID); err == nil {
		return nil, apperrors.ErrBookmarkExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check bookmark url: %w", err)
	}

	searchKey := req.Pinyin
	if searchKey == "" {
		searchKey = pinyin.Derive(req.Name)
	}

	bookmark := &models.Bookmark{
		UserID:   userID,
		Name:     req.Name,
		URL:      req.URL,
		Pinyin:   searchKey,
		Icon:     req.Icon,
		IsPinned: req.IsPinned,
	}
	if req.SortOrder != nil {
		bookmark.SortOrder = *req.SortOrder
	}

	if err := s.bookmarks.Create(bookmark); err != nil {
		return nil, fmt.Errorf("failed to create bookmark: %w", err)
	}

	// New bookmarks land on top of the manual order: when the caller left
	// the order unset, it defaults to the row ID, which only exists after
	// the insert.
	if req.SortOrder == nil {
		if err := s.bookmarks.UpdateSortOrder(bookmark.ID, userID, bookmark.ID); err != nil {
			return nil, fmt.Errorf("failed to default sort order: %w", err)
		}
		bookmark.SortOrder = bookmark.ID
	}

	if len(req.TagIDs) > 0 {
		owned, err := s.tags.FilterOwnedIDs(req.TagIDs, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve tags: %w", err)
		}
		if err := s.bookmarkTags.ReplaceSet(bookmark.ID, owned); err != nil {
			return nil, fmt.Errorf("failed to attach tags: %w", err)
		}
	}

	return s.Get(userID, bookmark.ID)
}

// Get retrieves a bookmark with its tag IDs
func (s *BookmarkService) Get(userID, id int64) (*BookmarkResponse, error) {
	bookmark, err := s.bookmarks.GetByID(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookmarkNotFound
		}
		return nil, fmt.Errorf("failed to get bookmark: %w", err)
	}

	tagIDs, err := s.bookmarkTags.ListTagIDs(id)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmark tags: %w", err)
	}

	resp := s.toResponse(bookmark)
	resp.TagIDs = tagIDs
	return &resp, nil
}

// Update applies a partial update to a bookmark. The scalar patch and the
// tag reconciliation are independent writes and run concurrently; the first
// error wins.
func (s *BookmarkService) Update(userID, id int64, req *UpdateBookmarkRequest) (*BookmarkResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	existing, err := s.bookmarks.GetByID(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBookmarkNotFound
		}
		return nil, fmt.Errorf("failed to get bookmark: %w", err)
	}

	fields := map[string]interface{}{}
	if req.Name != nil && *req.Name != existing.Name {
		if other, err := s.bookmarks.GetByName(*req.Name, userID); err == nil && other.ID != id {
			return nil, apperrors.ErrBookmarkExists
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check bookmark name: %w", err)
		}
		fields["name"] = *req.Name
		// A renamed bookmark gets a fresh search key unless the caller
		// supplied one explicitly.
		if req.Pinyin == nil {
			fields["pinyin"] = pinyin.Derive(*req.Name)
		}
	}
	if req.URL != nil && *req.URL != existing.URL {
		if other, err := s.bookmarks.GetByURL(*req.URL, userID); err == nil && other.ID != id {
			return nil, apperrors.ErrBookmarkExists
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check bookmark url: %w", err)
		}
		fields["url"] = *req.URL
	}
	if req.Pinyin != nil {
		fields["pinyin"] = *req.Pinyin
	}
	if req.Icon != nil {
		fields["icon"] = *req.Icon
	}
	if req.IsPinned != nil {
		fields["is_pinned"] = *req.IsPinned
	}
	if req.SortOrder != nil {
		fields["sort_order"] = *req.SortOrder
	}

	var g errgroup.Group
	if len(fields) > 0 {
		g.Go(func() error {
			if err := s.bookmarks.Updates(id, userID, fields); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.ErrBookmarkNotFound
				}
				return fmt.Errorf("failed to update bookmark: %w", err)
			}
			return nil
		})
	}
	if req.TagIDs != nil {
		g.Go(func() error {
			owned, err := s.tags.FilterOwnedIDs(req.TagIDs, userID)
			if err != nil {
				return fmt.Errorf("failed to resolve tags: %w", err)
			}
			if err := s.bookmarkTags.ReplaceSet(id, owned); err != nil {
				return fmt.Errorf("failed to reconcile tags: %w", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return s.Get(userID, id)
}

// Delete removes a bookmark and its tag associations
func (s *BookmarkService) Delete(userID, id int64) error {
	if err := s.bookmarks.Delete(id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBookmarkNotFound
		}
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}
	if err := s.bookmarkTags.DeleteByBookmarkIDs([]int64{id}); err != nil {
		return fmt.Errorf("failed to delete bookmark tags: %w", err)
	}
	return nil
}

// DeleteMany removes a batch of bookmarks and reports how many were deleted.
// An empty ID list is a no-op.
func (s *BookmarkService) DeleteMany(userID int64, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	deleted, err := s.bookmarks.DeleteMany(ids, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete bookmarks: %w", err)
	}
	if err := s.bookmarkTags.DeleteByBookmarkIDs(ids); err != nil {
		return deleted, fmt.Errorf("failed to delete bookmark tags: %w", err)
	}
	logger.New().WithFields(map[string]interface{}{
		"user_id":   userID,
		"requested": len(ids),
		"deleted":   deleted,
	}).Info("Batch deleted bookmarks")
	return deleted, nil
}

// Sort applies caller-supplied sort orders, one write per bookmark
func (s *BookmarkService) Sort(userID int64, orders []OrderUpdate) error {
	for _, order := range orders {
		if err := s.bookmarks.UpdateSortOrder(order.ID, userID, order.SortOrder); err != nil {
			return fmt.Errorf("failed to update sort order of bookmark %d: %w", order.ID, err)
		}
	}
	return nil
}

// ReconcileSort computes the sort orders that realize the displayed
// arrangement, persists the changed ones and returns them.
func (s *BookmarkService) ReconcileSort(userID int64, req *ReconcileSortRequest) ([]OrderUpdate, error) {
	var storeMax int64
	if !req.Filtered {
		max, err := s.bookmarks.MaxSortOrder(userID)
		if err != nil {
			return nil, fmt.Errorf("failed to read max sort order: %w", err)
		}
		storeMax = max
	}

	updates := ComputeSortOrders(req.Items, req.Filtered, storeMax)
	if err := s.Sort(userID, updates); err != nil {
		return nil, err
	}
	return updates, nil
}

// FindMany retrieves a filtered, ordered page of bookmarks
func (s *BookmarkService) FindMany(userID int64, query *BookmarkQuery) (*BookmarkListResponse, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit == 0 {
		limit = DefaultPageSize
	}
	if !allowedPageSizes[limit] {
		return nil, apperrors.ErrInvalidPageSize
	}

	sorter := query.Sorter
	if sorter == "" {
		sorter = "manual"
	}
	order, ok := sorterColumns[sorter]
	if !ok {
		return nil, apperrors.ErrInvalidSortKey
	}

	tagIDs, empty, err := s.resolveTagFilter(userID, query)
	if err != nil {
		return nil, err
	}
	if empty {
		return &BookmarkListResponse{
			List:  []BookmarkResponse{},
			Page:  page,
			Limit: limit,
		}, nil
	}

	filter := repository.BookmarkFilter{
		UserID:  userID,
		Keyword: query.Keyword,
		TagIDs:  tagIDs,
	}

	total, err := s.bookmarks.Count(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count bookmarks: %w", err)
	}
	bookmarks, err := s.bookmarks.FindMany(filter, limit, (page-1)*limit, order)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}

	list, err := s.toResponses(bookmarks)
	if err != nil {
		return nil, err
	}

	return &BookmarkListResponse{
		List:    list,
		Total:   total,
		Page:    page,
		Limit:   limit,
		HasMore: total > int64(page)*int64(limit),
	}, nil
}

// Random retrieves up to limit bookmarks in random order
func (s *BookmarkService) Random(userID int64, limit int) ([]BookmarkResponse, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	bookmarks, err := s.bookmarks.Random(userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to pick random bookmarks: %w", err)
	}
	return s.toResponses(bookmarks)
}

// Recent retrieves the most recently updated bookmarks
func (s *BookmarkService) Recent(userID int64, limit int) ([]BookmarkResponse, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	bookmarks, err := s.bookmarks.FindMany(
		repository.BookmarkFilter{UserID: userID}, limit, 0, sorterColumns["manual"])
	if err != nil {
		return nil, fmt.Errorf("failed to list recent bookmarks: %w", err)
	}
	return s.toResponses(bookmarks)
}

// Search performs a keyword lookup over name, URL and pinyin, capped at
// SearchResultCap results.
func (s *BookmarkService) Search(userID int64, keyword string, limit int) ([]BookmarkResponse, error) {
	if limit <= 0 || limit > SearchResultCap {
		limit = SearchResultCap
	}
	if strings.TrimSpace(keyword) == "" {
		return []BookmarkResponse{}, nil
	}

	bookmarks, err := s.bookmarks.FindMany(
		repository.BookmarkFilter{UserID: userID, Keyword: keyword},
		limit, 0, sorterColumns["manual"])
	if err != nil {
		return nil, fmt.Errorf("failed to search bookmarks: %w", err)
	}
	return s.toResponses(bookmarks)
}

// resolveTagFilter merges explicit tag IDs with IDs resolved from tag names.
// The second return value reports that a name filter was requested but no
// tag matched, which can never produce results.
func (s *BookmarkService) resolveTagFilter(userID int64, query *BookmarkQuery) ([]int64, bool, error) {
	ids := append([]int64{}, query.TagIDs...)
	if len(query.TagNames) > 0 {
		resolved, err := s.tags.ResolveNames(query.TagNames, userID)
		if err != nil {
			return nil, false, fmt.Errorf("failed to resolve tag names: %w", err)
		}
		if len(resolved) == 0 && len(ids) == 0 {
			return nil, true, nil
		}
		ids = append(ids, resolved...)
	}

	seen := make(map[int64]bool, len(ids))
	var deduped []int64
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			deduped = append(deduped, id)
		}
	}
	return deduped, false, nil
}

// toResponses converts models to responses, batch-loading tag IDs
func (s *BookmarkService) toResponses(bookmarks []models.Bookmark) ([]BookmarkResponse, error) {
	ids := make([]int64, len(bookmarks))
	for i, b := range bookmarks {
		ids[i] = b.ID
	}
	assocs, err := s.bookmarkTags.ListByBookmarkIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmark tags: %w", err)
	}
	tagsByBookmark := make(map[int64][]int64, len(bookmarks))
	for _, a := range assocs {
		tagsByBookmark[a.BookmarkID] = append(tagsByBookmark[a.BookmarkID], a.TagID)
	}

	responses := make([]BookmarkResponse, len(bookmarks))
	for i, b := range bookmarks {
		responses[i] = s.toResponse(&b)
		if tagIDs, ok := tagsByBookmark[b.ID]; ok {
			responses[i].TagIDs = tagIDs
		}
	}
	return responses, nil
}

// toResponse converts a Bookmark model to API response
func (s *BookmarkService) toResponse(bookmark *models.Bookmark) BookmarkResponse {
	return BookmarkResponse{
		ID:        bookmark.ID,
		Name:      bookmark.Name,
		URL:       bookmark.URL,
		Pinyin:    bookmark.Pinyin,
		Icon:      bookmark.Icon,
		IsPinned:  bookmark.IsPinned,
		SortOrder: bookmark.SortOrder,
		TagIDs:    []int64{},
		CreatedAt: bookmark.CreatedAt,
		UpdatedAt: bookmark.UpdatedAt,
	}
}
