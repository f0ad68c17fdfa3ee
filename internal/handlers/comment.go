package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/taskdeck-dev/taskdeck/internal/authz"
	"github.com/taskdeck-dev/taskdeck/internal/models"
	"github.com/taskdeck-dev/taskdeck/internal/store"
	"github.com/taskdeck-dev/taskdeck/internal/types"
	"github.com/taskdeck-dev/taskdeck/internal/utils"
)

type CreateCommentRequest struct {
	CardID  uint   `json:"card_id" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type CommentHandler struct {
	Comments *store.CommentStore
	Cards    *store.CardStore
}

func NewCommentHandler(comments *store.CommentStore, cards *store.CardStore) *CommentHandler {
	return &CommentHandler{Comments: comments, Cards: cards}
}

func (h *CommentHandler) List(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	comments, err := h.Comments.ListByOwner(userID)

	if err != nil {
		log.Printf("Failed to list comments: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve comments"})
		return
	}

	response := make([]types.CommentResponse, 0, len(comments))

	for i := range comments {
		response = append(response, commentResponse(&comments[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *CommentHandler) Get(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	comment, ok := h.loadAuthorized(ctx, userID)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, commentResponse(comment))
}

// Create attaches a comment to a card. The caller must own the card being
// commented on, not just be logged in.
func (h *CommentHandler) Create(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateCommentRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	card, err := h.Cards.GetByID(req.CardID)

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		} else {
			log.Printf("Failed to retrieve card: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve card"})
		}
		return
	}

	if err := authz.Authorize(userID, card); err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	comment, err := h.Comments.Create(req.CardID, userID, req.Message)

	if err != nil {
		if errors.Is(err, store.ErrCardNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
			return
		}
		log.Printf("Failed to create comment: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	ctx.JSON(http.StatusCreated, commentResponse(comment))
}

// Delete removes a comment. Only the comment's author may delete it, even on
// a card owned by someone else.
func (h *CommentHandler) Delete(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	comment, ok := h.loadAuthorized(ctx, userID)
	if !ok {
		return
	}

	if err := h.Comments.Delete(comment); err != nil {
		log.Printf("Failed to delete comment: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete comment"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

func (h *CommentHandler) loadAuthorized(ctx *gin.Context, userID uint) (*models.Comment, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid comment ID"})
		return nil, false
	}

	comment, err := h.Comments.GetByID(uint(id))

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		} else {
			log.Printf("Failed to retrieve comment: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve comment"})
		}
		return nil, false
	}

	if err := authz.Authorize(userID, comment); err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}

	return comment, true
}

func commentResponse(comment *models.Comment) types.CommentResponse {
	return types.CommentResponse{
		ID:      comment.ID,
		Message: comment.Message,
		CardID:  comment.CardID,
		User: types.UserResponse{
			ID:      comment.User.ID,
			Name:    comment.User.Name,
			Email:   comment.User.Email,
			IsAdmin: comment.User.IsAdmin,
		},
	}
}
