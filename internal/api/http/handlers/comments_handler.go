package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/signaidy/nexus-standalone/internal/api/dto"
	"github.com/signaidy/nexus-standalone/internal/domain"
	"github.com/signaidy/nexus-standalone/internal/service"
	apperrors "github.com/signaidy/nexus-standalone/pkg/util/errorutil"
)

// CommentsHandler exposes customer feedback endpoints.
type CommentsHandler struct {
	comments *service.CommentService
}

// NewCommentsHandler constructs the handler.
func NewCommentsHandler(comments *service.CommentService) *CommentsHandler {
	return &CommentsHandler{comments: comments}
}

// List handles GET /comments.
func (h *CommentsHandler) List(c *fiber.Ctx) error {
	comments, err := h.comments.List(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewCommentResponses(comments))
}

// Get handles GET /comments/:id.
func (h *CommentsHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	comment, err := h.comments.Get(c.Context(), id)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewCommentResponse(comment))
}

// Create handles POST /comments.
func (h *CommentsHandler) Create(c *fiber.Ctx) error {
	var req dto.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Comment == "" {
		return fiber.NewError(http.StatusBadRequest, "comment required")
	}
	comment := &domain.Comment{
		UserID:  req.UserID,
		Comment: req.Comment,
		Rating:  req.Rating,
	}
	if err := h.comments.Create(c.Context(), comment); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(dto.NewCommentResponse(comment))
}

// Update handles PUT /comments/:id.
func (h *CommentsHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	comment := &domain.Comment{
		ID:      id,
		UserID:  req.UserID,
		Comment: req.Comment,
		Rating:  req.Rating,
	}
	if err := h.comments.Update(c.Context(), comment); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewCommentResponse(comment))
}

// Delete handles DELETE /comments/:id.
func (h *CommentsHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.comments.Delete(c.Context(), id); err != nil {
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}
