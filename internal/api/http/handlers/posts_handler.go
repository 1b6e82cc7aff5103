package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/socialdev/internal/api/dto"
	"github.com/spec-kit/socialdev/internal/service"
)

// PostsHandler serves post endpoints. Every route requires a caller.
type PostsHandler struct {
	posts *service.PostService
}

// NewPostsHandler constructs handler.
func NewPostsHandler(posts *service.PostService) *PostsHandler {
	return &PostsHandler{posts: posts}
}

// Create handles POST /api/posts.
func (h *PostsHandler) Create(c *fiber.Ctx) error {
	caller, err := callerOf(c)
	if err != nil {
		return err
	}
	var req dto.PostContentRequest
	if err := dto.Decode(c.Body(), &req); err != nil {
		return err
	}

	post, err := h.posts.Create(c.UserContext(), caller, req.Content)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewPostResponse(post))
}

// List handles GET /api/posts.
func (h *PostsHandler) List(c *fiber.Ctx) error {
	posts, err := h.posts.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPostResponses(posts))
}

// ListByUser handles GET /api/posts/user/:userId.
func (h *PostsHandler) ListByUser(c *fiber.Ctx) error {
	posts, err := h.posts.ListByUser(c.UserContext(), c.Params("userId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPostResponses(posts))
}

// Get handles GET /api/posts/:id.
func (h *PostsHandler) Get(c *fiber.Ctx) error {
	post, err := h.posts.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPostResponse(post))
}

// Update handles POST /api/posts/:id.
func (h *PostsHandler) Update(c *fiber.Ctx) error {
	caller, err := callerOf(c)
	if err != nil {
		return err
	}
	var req dto.PostContentRequest
	if err := dto.Decode(c.Body(), &req); err != nil {
		return err
	}

	post, err := h.posts.Update(c.UserContext(), caller, c.Params("id"), req.Content)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewPostResponse(post))
}

// Delete handles DELETE /api/posts/:id.
func (h *PostsHandler) Delete(c *fiber.Ctx) error {
	caller, err := callerOf(c)
	if err != nil {
		return err
	}
	if err := h.posts.Delete(c.UserContext(), caller, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: service.PostDeletedMessage})
}
