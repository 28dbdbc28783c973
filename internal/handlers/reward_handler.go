package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/tirasundara/lotto-reward/internal/domain"
	"github.com/tirasundara/lotto-reward/internal/report"
	"github.com/tirasundara/lotto-reward/internal/service"
)

// RewardRequest is the body of POST /api/v1/rewards
type RewardRequest struct {
	WinningNumbers []int   `json:"winning_numbers" binding:"required"`
	BonusNumber    int     `json:"bonus_number" binding:"required"`
	Tickets        [][]int `json:"tickets"`
}

// RewardHandler handles reward calculation requests
type RewardHandler struct {
	ticketPrice decimal.Decimal
	rows        report.RowFormatter
	logger      zerolog.Logger
}

// NewRewardHandler creates a new RewardHandler
func NewRewardHandler(ticketPrice decimal.Decimal, rows report.RowFormatter, logger zerolog.Logger) *RewardHandler {
	if rows == nil {
		rows = report.NewStatisticsFormatter(nil)
	}

	return &RewardHandler{
		ticketPrice: ticketPrice,
		rows:        rows,
		logger:      logger,
	}
}

// RegisterRoutes mounts the handler on router
func (h *RewardHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/health", h.Health)

	api := router.Group("/api/v1")
	api.POST("/rewards", h.CalculateRewards)
}

// Health handles GET /health
func (h *RewardHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// CalculateRewards handles POST /api/v1/rewards
func (h *RewardHandler) CalculateRewards(c *gin.Context) {
	var req RewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	draw, err := domain.NewDraw(req.WinningNumbers, req.BonusNumber)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tickets := make([]domain.Ticket, 0, len(req.Tickets))
	for i, numbers := range req.Tickets {
		ticket, err := domain.NewLotto(numbers)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("ticket %d: %v", i, err)})
			return
		}
		tickets = append(tickets, ticket)
	}

	calculator := service.NewRewardCalculator(draw,
		service.WithTicketPrice(h.ticketPrice),
		service.WithRowFormatter(h.rows),
		service.WithLogger(h.logger),
	)
	result := calculator.Calculate(tickets)

	h.logger.Info().
		Int("tickets", result.TicketCount).
		Str("rate_of_return", result.RateOfReturn.StringFixed(1)).
		Msg("reward calculated")

	c.JSON(http.StatusOK, report.NewSummary(result, h.rows))
}
