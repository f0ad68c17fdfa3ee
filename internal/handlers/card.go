package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/taskdeck-dev/taskdeck/internal/authz"
	"github.com/taskdeck-dev/taskdeck/internal/models"
	"github.com/taskdeck-dev/taskdeck/internal/store"
	"github.com/taskdeck-dev/taskdeck/internal/types"
	"github.com/taskdeck-dev/taskdeck/internal/utils"
	"github.com/taskdeck-dev/taskdeck/internal/validation"
)

const dateLayout = "2006-01-02"

type CreateCardRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
}

type ReplaceCardRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	Date        string `json:"date"`
}

// PatchCardRequest distinguishes absent fields (nil) from fields explicitly
// set to an empty value, so a PATCH can clear description, status or priority
// without ever clearing fields it did not mention.
type PatchCardRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	Date        *string `json:"date"`
}

type CardHandler struct {
	Cards *store.CardStore
}

func NewCardHandler(cards *store.CardStore) *CardHandler {
	return &CardHandler{Cards: cards}
}

func (h *CardHandler) List(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	cards, err := h.Cards.ListByOwner(userID)

	if err != nil {
		log.Printf("Failed to list cards: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cards"})
		return
	}

	response := make([]types.CardResponse, 0, len(cards))

	for i := range cards {
		response = append(response, cardResponse(&cards[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *CardHandler) Get(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	card, ok := h.loadAuthorized(ctx, userID)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, cardResponse(card))
}

func (h *CardHandler) Create(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateCardRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if errs := validation.ValidateCard(&req.Title, &req.Status, &req.Priority); len(errs) > 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	// The date is always server-assigned on create; a client-supplied date
	// is only honored through PUT/PATCH.
	card, err := h.Cards.Create(userID, store.NewCard{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
	})

	if err != nil {
		log.Printf("Failed to create card: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create card"})
		return
	}

	ctx.JSON(http.StatusCreated, cardResponse(card))
}

func (h *CardHandler) Replace(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req ReplaceCardRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if errs := validation.ValidateCard(&req.Title, &req.Status, &req.Priority); len(errs) > 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	patch := store.CardPatch{
		Title:       &req.Title,
		Description: &req.Description,
		Status:      &req.Status,
		Priority:    &req.Priority,
	}

	if req.Date != "" {
		date, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"errors": []validation.FieldError{
				{Field: "date", Message: "must be a date in YYYY-MM-DD format"},
			}})
			return
		}
		patch.Date = &date
	}

	card, ok := h.loadAuthorized(ctx, userID)
	if !ok {
		return
	}

	if err := h.Cards.Update(card, patch); err != nil {
		log.Printf("Failed to update card: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update card"})
		return
	}

	ctx.JSON(http.StatusOK, cardResponse(card))
}

func (h *CardHandler) Patch(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req PatchCardRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if errs := validation.ValidateCard(req.Title, req.Status, req.Priority); len(errs) > 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	patch := store.CardPatch{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
	}

	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"errors": []validation.FieldError{
				{Field: "date", Message: "must be a date in YYYY-MM-DD format"},
			}})
			return
		}
		patch.Date = &date
	}

	card, ok := h.loadAuthorized(ctx, userID)
	if !ok {
		return
	}

	if err := h.Cards.Update(card, patch); err != nil {
		log.Printf("Failed to update card: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update card"})
		return
	}

	ctx.JSON(http.StatusOK, cardResponse(card))
}

func (h *CardHandler) Delete(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	card, ok := h.loadAuthorized(ctx, userID)
	if !ok {
		return
	}

	if err := h.Cards.Delete(card); err != nil {
		log.Printf("Failed to delete card: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete card"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Card %s deleted successfully", card.Title)})
}

// loadAuthorized fetches the card from the :id route param and runs the
// ownership check, writing the 400/404/401 response itself on failure.
func (h *CardHandler) loadAuthorized(ctx *gin.Context, userID uint) (*models.Card, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card ID"})
		return nil, false
	}

	card, err := h.Cards.GetByID(uint(id))

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		} else {
			log.Printf("Failed to retrieve card: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve card"})
		}
		return nil, false
	}

	if err := authz.Authorize(userID, card); err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}

	return card, true
}

func cardResponse(card *models.Card) types.CardResponse {
	return types.CardResponse{
		ID:          card.ID,
		Title:       card.Title,
		Description: card.Description,
		Status:      card.Status,
		Priority:    card.Priority,
		Date:        card.Date.Format(dateLayout),
		User: types.UserResponse{
			ID:      card.User.ID,
			Name:    card.User.Name,
			Email:   card.User.Email,
			IsAdmin: card.User.IsAdmin,
		},
	}
}
