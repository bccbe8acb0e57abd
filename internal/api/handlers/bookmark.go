package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"bookmark-manager-backend/internal/auth"
	apperrors "bookmark-manager-backend/internal/errors"
	"bookmark-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BookmarkHandler handles HTTP requests for one bookmark collection. The
// same handler serves the public collection (requireOwner false, every
// operation runs against user id 0) and the per-user collection
// (requireOwner true, user id taken from the authenticated context).
type BookmarkHandler struct {
	service      service.BookmarkServiceInterface
	export       service.ExportServiceInterface
	scope        string
	requireOwner bool
}

// NewBookmarkHandler creates a new bookmark handler
func NewBookmarkHandler(svc service.BookmarkServiceInterface, export service.ExportServiceInterface, scope string, requireOwner bool) *BookmarkHandler {
	return &BookmarkHandler{
		service:      svc,
		export:       export,
		scope:        scope,
		requireOwner: requireOwner,
	}
}

// userID resolves the scope owner for this request. The public handler
// always works as user 0; the owner handler requires an authenticated user.
func (h *BookmarkHandler) userID(c *gin.Context) (int64, bool) {
	if !h.requireOwner {
		return 0, true
	}
	uid, ok := auth.GetUserID(c)
	if !ok || uid <= 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrAuthRequired.Error()})
		return 0, false
	}
	return uid, true
}

// respondError maps service errors to HTTP statuses
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
	}
}

// ListBookmarks handles GET /bookmarks
// @Summary List bookmarks
// @Description Get a filtered, ordered page of bookmarks
// @Tags bookmarks
// @Accept json
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size (10, 20, 30, 50 or 100)"
// @Param keyword query string false "Substring match over name, url and pinyin"
// @Param tag_ids query []int false "Tag IDs, all of which must be present"
// @Param tag_names query []string false "Tag names, resolved and added to the tag filter"
// @Param sorter query string false "manual, +createTime, -createTime, +updateTime or -updateTime"
// @Success 200 {object} service.BookmarkListResponse "Page of bookmarks"
// @Failure 400 {object} map[string]interface{} "Invalid query"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /bookmarks [get]
func (h *BookmarkHandler) ListBookmarks(c *gin.Context) {
	uid, ok := h.userID(c)
	if !ok {
		return
	}

	var query service.BookmarkQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters", "details": err.Error()})
		return
	}

	response, err := h.service.FindMany(uid, &query)
	if err != nil {
		respondError(c, err, "Failed to list bookmarks")
		return
	}

	c.JSON(http.StatusOK, response)
}

// CreateBookmark handles POST /bookmarks
// @Summary Create a bookmark
// @Description Create a bookmark; name and url must be unique within the collection
// @Tags bookmarks
// @Accept json
// @Produce json
// @Param bookmark body service.CreateBookmarkRequest true "Bookmark data"
// @Success 201 {object} service.BookmarkResponse "Successfully created bookmark"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Bookmark already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /bookmarks [post]
func (h *BookmarkHandler) CreateBookmark(c *gin.Context) {
	uid, ok := h.userID(c)
	if !ok {
		return
	}

	var req service.CreateBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	bookmark, err := h.service.Insert(uid, &req)
	if err != nil {
		respondError(c, err, "Failed to create bookmark")
		return
	}

	c.JSON(http.StatusCreated, bookmark)
}

// GetBookmark handles GET /bookmarks/:id
// @Summary Get bookmark by ID
// @Tags bookmarks
// @Accept json
// @Produce json
// @Param id path int true "Bookmark ID"
// @Success 200 {object} service.BookmarkResponse "Successfully retrieved bookmark"
// @Failure 400 {object} map[string]interface{} "Invalid bookmark ID"
// @Failure 404 {object} map[string]interface{} "Bookmark not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /bookmarks/{id} [get]
func (h *BookmarkHandler) GetBookmark(c *gin.Context) {
	uid, ok := h.userID(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bookmark ID"})
		return
	}

	bookmark, err := h.service.Get(uid, id)
	if err != nil {
		respondError(c, err, "Failed to get bookmark")
		return
	}

	c.JSON(http.StatusOK, bookmark)
}

// UpdateBookmark handles PUT /bookmarks/:id
// @Summary Update a bookmark
// @Description Partially update a bookmark; absent fields are left untouched
// @Tags bookmarks
// @Accept json
// @Produce json
// @Param id path int true "Bookmark ID"
// @Param bookmark body service.UpdateBookmarkRequest true "Fields to update"
// @Success 200 {object} service.BookmarkResponse "Successfully updated bookmark"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Bookmark not found"
// @Failure 409 {object} map[string]interface{} "Name or url already taken"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /bookmarks/{id} [put]
func (h *BookmarkHandler) UpdateBookmark(c *gin.Context) {
	uid, ok := h.userID(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bookmark ID"})
		return
	}

	var req service.UpdateBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	bookmark, err := h.service.Update(uid, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update bookmark")
		return
	}

	c.JSON(http.StatusOK, bookmark)
}

// DeleteBookmark handles DELETE /bookmarks/:id
// @Summary Delete a bookmark
// @Tags bookmarks
// @Accept json
// @Produce json
// @Param id path int true "Bookmark ID"
// @Success 200 {object} map[string]interface{} "Successfully deleted bookmark"
// @Failure 400 {object} map[string]interface{} "Invalid bookmark ID"
// @Failure 404 {object} map[string]interface{} "Bookmark not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /bookmarks/{id} [delete]
func (h *BookmarkHandler) DeleteBookmark(c *gin.Context) {
	uid, ok := h.userID(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bookmark ID"})
		return
	}

	if err := h.service.Delete(uid, id); err != nil {
		respondError(c, err, "Failed to delete bookmark")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bookmark deleted successfully"})
}

// BatchDeleteRequest represents the request to delete several bookmarks
type BatchDeleteRequest struct {
	IDs []int64 `json:"ids"`
}

// BatchDeleteBookmarks handles POST /bookmarks/batch-delete
// @Summary Delete several bookmarks
// @Description Delete the given bookmark IDs; IDs outside the collection are skipped
// @Tags bookmarks
// @Accept json
// @Produce json
// @Param ids body BatchDeleteRequest true "Bookmark IDs"
// @Success 200 {object} map[string]interface{} "Number of deleted bookmarks"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /bookmarks/batch-delete [post]
func (h *BookmarkHandler) BatchDeleteBookmarks(c *gin.Context) {
	uid, ok := h.userID(c)
	if !ok {
		return
	}

	var req BatchDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	deleted, err := h.service.DeleteMany(uid, req.IDs)
	if err != nil {
		respondError(c, err, "Failed to delete bookmarks")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// SortRequest represents caller-supplied sort orders
type SortRequest struct {
	Orders []service.OrderUpdate `json:"orders"`
}

// SortBookmarks handles POST /bookmarks/sort
// @Summary Apply sort orders
// @Description Write the given (id, sort_order) pairs, one row each
// @Tags bookmarks
// @Accept json
// @Produce json
// @Param orders body SortRequest true "Sort orders"
// @Success 200 {object} map[string]interface{} "Orders applied"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /bookmarks/sort [post]
func (h *BookmarkHandler) SortBookmarks(c *gin.Context) {
	uid, ok := h.userID(c)
	if !ok {
		return
	}

	var req SortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.service.Sort(uid, req.Orders); err != nil {
		respondError(c, err, "Failed to sort bookmarks")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sort orders applied"})
}

// ReconcileSortBookmarks handles POST /bookmarks/sort/reconcile
// @Summary Persist a drag-and-drop arrangement
// @Description Compute the minimal sort-order writes for the displayed arrangement and apply them
// @Tags bookmarks
// @Accept json
// @Produce json
// @Param arrangement body service.ReconcileSortRequest true "Displayed items, top first"
// @Success 200 {object} map[string]interface{} "Applied order updates"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /bookmarks/sort/reconcile [post]
func (h *BookmarkHandler) ReconcileSortBookmarks(c *gin.Context) {
	uid, ok := h.userID(c)
	if !ok {
		return
	}

	var req service.ReconcileSortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	updates, err := h.service.ReconcileSort(uid, &req)
	if err != nil {
		respondError(c, err, "Failed to reconcile sort orders")
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": updates})
}

// RandomBookmarks handles GET /bookmarks/random
// @Summary Random bookmarks
// @Tags bookmarks
// @Accept json
// @Produce json
// @Param limit query int false "Maximum number of bookmarks"
// @Success 200 {array} service.BookmarkResponse "Bookmarks in random order"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /bookmarks/random [get]
func (h *BookmarkHandler) RandomBookmarks(c *gin.Context) {
	uid, ok := h.userID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	bookmarks, err := h.service.Random(uid, limit)
	if err != nil {
		respondError(c, err, "Failed to pick random bookmarks")
		return
	}

	c.JSON(http.StatusOK, bookmarks)
}

// RecentBookmarks handles GET /bookmarks/recent
// @Summary Recently arranged bookmarks
// @Tags bookmarks
// @Accept json
// @Produce json
// @Param limit query int false "Maximum number of bookmarks"
// @Success 200 {array} service.BookmarkResponse "Bookmarks in manual order"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /bookmarks/recent [get]
func (h *BookmarkHandler) RecentBookmarks(c *gin.Context) {
	uid, ok := h.userID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	bookmarks, err := h.service.Recent(uid, limit)
	if err != nil {
		respondError(c, err, "Failed to list recent bookmarks")
		return
	}

	c.JSON(http.StatusOK, bookmarks)
}

// SearchBookmarks handles GET /bookmarks/search
// @Summary Search bookmarks
// @Description Keyword lookup over name, url and pinyin, capped at 100 results
// @Tags bookmarks
// @Accept json
// @Produce json
// @Param keyword query string true "Search keyword"
// @Param limit query int false "Maximum number of results"
// @Success 200 {array} service.BookmarkResponse "Matching bookmarks"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /bookmarks/search [get]
func (h *BookmarkHandler) SearchBookmarks(c *gin.Context) {
	uid, ok := h.userID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	bookmarks, err := h.service.Search(uid, c.Query("keyword"), limit)
	if err != nil {
		respondError(c, err, "Failed to search bookmarks")
		return
	}

	c.JSON(http.StatusOK, bookmarks)
}

// ExportBookmarks handles GET /bookmarks/export
// @Summary Export bookmarks
// @Description Download the collection as a Netscape bookmark file
// @Tags bookmarks
// @Produce html
// @Success 200 {string} string "Bookmark file"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /bookmarks/export [get]
func (h *BookmarkHandler) ExportBookmarks(c *gin.Context) {
	uid, ok := h.userID(c)
	if !ok {
		return
	}

	document, err := h.export.ExportHTML(uid)
	if err != nil {
		respondError(c, err, "Failed to export bookmarks")
		return
	}

	stamp := strings.ReplaceAll(time.Now().Format("2006-01-02T15:04:05"), ":", "-")
	filename := fmt.Sprintf("%s-bookmarks-%s.html", h.scope, stamp)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/html;charset=utf-8", []byte(document))
}
