package handlers

import (
	"net/http"
	"strconv"

	"bookmark-manager-backend/internal/auth"
	apperrors "bookmark-manager-backend/internal/errors"
	"bookmark-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TagHandler handles HTTP requests for one tag collection, public or owned
type TagHandler struct {
	service      service.TagServiceInterface
	requireOwner bool
}

// NewTagHandler creates a new tag handler
func NewTagHandler(svc service.TagServiceInterface, requireOwner bool) *TagHandler {
	return &TagHandler{service: svc, requireOwner: requireOwner}
}

func (h *TagHandler) userID(c *gin.Context) (int64, bool) {
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

// ListTags handles GET /tags
// @Summary List tags
// @Description Get all tags of the collection in display order
// @Tags tags
// @Accept json
// @Produce json
// @Success 200 {array} service.TagResponse "Tags in display order"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /tags [get]
func (h *TagHandler) ListTags(c *gin.Context) {
	uid, ok := h.userID(c)
	if !ok {
		return
	}

	tags, err := h.service.List(uid)
	if err != nil {
		respondError(c, err, "Failed to list tags")
		return
	}

	c.JSON(http.StatusOK, tags)
}

// CreateTag handles POST /tags
// @Summary Create a tag
// @Tags tags
// @Accept json
// @Produce json
// @Param tag body service.CreateTagRequest true "Tag data"
// @Success 201 {object} service.TagResponse "Successfully created tag"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Tag already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /tags [post]
func (h *TagHandler) CreateTag(c *gin.Context) {
	uid, ok := h.userID(c)
	if !ok {
		return
	}

	var req service.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	tag, err := h.service.Create(uid, &req)
	if err != nil {
		respondError(c, err, "Failed to create tag")
		return
	}

	c.JSON(http.StatusCreated, tag)
}

// UpdateTag handles PUT /tags/:id
// @Summary Update a tag
// @Tags tags
// @Accept json
// @Produce json
// @Param id path int true "Tag ID"
// @Param tag body service.UpdateTagRequest true "Fields to update"
// @Success 200 {object} service.TagResponse "Successfully updated tag"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Tag not found"
// @Failure 409 {object} map[string]interface{} "Tag name already taken"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /tags/{id} [put]
func (h *TagHandler) UpdateTag(c *gin.Context) {
	uid, ok := h.userID(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tag ID"})
		return
	}

	var req service.UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	tag, err := h.service.Update(uid, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update tag")
		return
	}

	c.JSON(http.StatusOK, tag)
}

// DeleteTag handles DELETE /tags/:id
// @Summary Delete a tag
// @Tags tags
// @Accept json
// @Produce json
// @Param id path int true "Tag ID"
// @Success 200 {object} map[string]interface{} "Successfully deleted tag"
// @Failure 400 {object} map[string]interface{} "Invalid tag ID"
// @Failure 404 {object} map[string]interface{} "Tag not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /tags/{id} [delete]
func (h *TagHandler) DeleteTag(c *gin.Context) {
	uid, ok := h.userID(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tag ID"})
		return
	}

	if err := h.service.Delete(uid, id); err != nil {
		respondError(c, err, "Failed to delete tag")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tag deleted successfully"})
}
