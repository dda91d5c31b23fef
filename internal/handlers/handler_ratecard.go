package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LBaravalle/payroll_engine_app/internal/apperrors"
	portssvc "github.com/LBaravalle/payroll_engine_app/internal/core/ports/services"
	"github.com/LBaravalle/payroll_engine_app/internal/dto"
	"github.com/LBaravalle/payroll_engine_app/internal/middleware"
)

// rateCardHandler handles HTTP requests for collective-agreement rate cards.
type rateCardHandler struct {
	rateCardService portssvc.RateCardSvcFacade
}

func newRateCardHandler(rateCardService portssvc.RateCardSvcFacade) *rateCardHandler {
	return &rateCardHandler{rateCardService: rateCardService}
}

func registerRateCardRoutes(rg *gin.RouterGroup, rateCardService portssvc.RateCardSvcFacade) {
	h := newRateCardHandler(rateCardService)
	cards := rg.Group("/ratecards")
	{
		cards.POST("", h.createRateCard)
		cards.GET("", h.listRateCards)
		cards.GET("/:rateCardID", h.getRateCard)
		cards.DELETE("/:rateCardID", h.deactivateRateCard)
	}
}

// createRateCard godoc
// @Summary Create a rate card
// @Description Registers an hourly rate, standard hours and overtime multipliers
// @Tags ratecards
// @Accept json
// @Produce json
// @Param ratecard body dto.CreateRateCardRequest true "Rate card"
// @Success 201 {object} domain.RateCard
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /ratecards [post]
func (h *rateCardHandler) createRateCard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateRateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	card, err := h.rateCardService.CreateRateCard(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create rate card", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create rate card"})
		return
	}

	logger.Info("Rate card created", slog.String("rate_card_id", card.RateCardID))
	c.JSON(http.StatusCreated, card)
}

// listRateCards godoc
// @Summary List rate cards
// @Tags ratecards
// @Produce json
// @Success 200 {array} domain.RateCard
// @Failure 500 {object} ErrorResponse
// @Router /ratecards [get]
func (h *rateCardHandler) listRateCards(c *gin.Context) {
	cards, err := h.rateCardService.ListRateCards(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list rate cards", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list rate cards"})
		return
	}
	c.JSON(http.StatusOK, cards)
}

// getRateCard godoc
// @Summary Get a rate card
// @Tags ratecards
// @Produce json
// @Param rateCardID path string true "Rate card ID"
// @Success 200 {object} domain.RateCard
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /ratecards/{rateCardID} [get]
func (h *rateCardHandler) getRateCard(c *gin.Context) {
	rateCardID := c.Param("rateCardID")
	card, err := h.rateCardService.GetRateCardByID(c.Request.Context(), rateCardID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Rate card not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to get rate card", slog.String("error", err.Error()), slog.String("rate_card_id", rateCardID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve rate card"})
		return
	}
	c.JSON(http.StatusOK, card)
}

// deactivateRateCard godoc
// @Summary Deactivate a rate card
// @Tags ratecards
// @Produce json
// @Param rateCardID path string true "Rate card ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /ratecards/{rateCardID} [delete]
func (h *rateCardHandler) deactivateRateCard(c *gin.Context) {
	rateCardID := c.Param("rateCardID")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.rateCardService.DeactivateRateCard(c.Request.Context(), rateCardID, requestingUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Rate card not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to deactivate rate card", slog.String("error", err.Error()), slog.String("rate_card_id", rateCardID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to deactivate rate card"})
		return
	}
	c.Status(http.StatusNoContent)
}
