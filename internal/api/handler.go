package api

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rongwang/seabirds-server/internal/export"
	"github.com/rongwang/seabirds-server/internal/models"
	"github.com/rongwang/seabirds-server/internal/service"
	"github.com/rongwang/seabirds-server/internal/utils"
)

// Handler serves the HTTP API on top of the service
type Handler struct {
	svc    service.Service
	logger *utils.Logger
}

// NewHandler creates a new API handler
func NewHandler(svc service.Service, logger *utils.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger.WithComponent("api"),
	}
}

// SetupRoutes registers every endpoint on the router
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.GET("/health", h.Health)

	router.GET("/expenses", h.ListExpenses)
	router.POST("/expenses", h.CreateExpense)
	router.PUT("/expenses/:id", h.UpdateExpense)

	router.GET("/tournaments", h.ListTournaments)
	router.POST("/tournaments", h.CreateTournament)
	router.PUT("/tournaments/:id", h.UpdateTournament)

	router.GET("/players", h.ListPlayers)
	router.POST("/players", h.SavePlayer)
	router.PUT("/players/:id", h.UpdatePlayer)

	router.GET("/team-summary", h.TeamSummary)
	router.GET("/monthlycontribution", h.MonthlyContributions)
	router.GET("/monthlycontribution/export", h.ExportMonthlyContributions)
}

func (h *Handler) Health(c *gin.Context) {
	if err := h.svc.Ping(c.Request.Context()); err != nil {
		h.fail(c, err, http.StatusServiceUnavailable, "Database unavailable")
		return
	}
	c.JSON(http.StatusOK, models.HealthResponse{Status: "ok"})
}

// Expense handlers
func (h *Handler) ListExpenses(c *gin.Context) {
	entries, err := h.svc.ListExpenses(c.Request.Context())
	if err != nil {
		h.fail(c, err, http.StatusInternalServerError, "Error fetching expenses")
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *Handler) CreateExpense(c *gin.Context) {
	var req models.ExpenseRequest
	if !h.bind(c, &req, "Failed to add expense") {
		return
	}

	expense, err := h.svc.CreateExpense(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err, http.StatusInternalServerError, "Failed to add expense")
		return
	}
	c.JSON(http.StatusOK, expense)
}

func (h *Handler) UpdateExpense(c *gin.Context) {
	id, ok := h.pathID(c, "Failed to update expense")
	if !ok {
		return
	}

	var req models.ExpenseRequest
	if !h.bind(c, &req, "Failed to update expense") {
		return
	}

	expense, err := h.svc.UpdateExpense(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.fail(c, err, http.StatusNotFound, "Expense not found")
			return
		}
		h.fail(c, err, http.StatusInternalServerError, "Failed to update expense")
		return
	}
	c.JSON(http.StatusOK, expense)
}

// Tournament handlers
func (h *Handler) ListTournaments(c *gin.Context) {
	tournaments, err := h.svc.ListTournaments(c.Request.Context(), c.Query("isactive"))
	if err != nil {
		h.fail(c, err, http.StatusInternalServerError, "Error fetching tournaments")
		return
	}
	c.JSON(http.StatusOK, tournaments)
}

func (h *Handler) CreateTournament(c *gin.Context) {
	var req models.TournamentRequest
	if !h.bind(c, &req, "Failed to add tournament") {
		return
	}

	if err := h.svc.CreateTournament(c.Request.Context(), req); err != nil {
		h.fail(c, err, http.StatusInternalServerError, "Failed to add tournament")
		return
	}
	c.Status(http.StatusCreated)
}

func (h *Handler) UpdateTournament(c *gin.Context) {
	id, ok := h.pathID(c, "Failed to update tournament")
	if !ok {
		return
	}

	var req models.TournamentRequest
	if !h.bind(c, &req, "Failed to update tournament") {
		return
	}

	if err := h.svc.UpdateTournament(c.Request.Context(), id, req); err != nil {
		h.fail(c, err, http.StatusInternalServerError, "Failed to update tournament")
		return
	}
	c.Status(http.StatusOK)
}

// Player handlers
func (h *Handler) ListPlayers(c *gin.Context) {
	players, err := h.svc.ListPlayers(c.Request.Context())
	if err != nil {
		h.fail(c, err, http.StatusInternalServerError, "Error fetching players")
		return
	}
	c.JSON(http.StatusOK, players)
}

// SavePlayer inserts a player, or updates one when the body carries an id
func (h *Handler) SavePlayer(c *gin.Context) {
	var req models.PlayerRequest
	if !h.bind(c, &req, "Error saving player") {
		return
	}

	if err := h.svc.SavePlayer(c.Request.Context(), req); err != nil {
		h.fail(c, err, http.StatusInternalServerError, "Error saving player")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}

func (h *Handler) UpdatePlayer(c *gin.Context) {
	id, ok := h.pathID(c, "Error updating player")
	if !ok {
		return
	}

	var req models.PlayerRequest
	if !h.bind(c, &req, "Error updating player") {
		return
	}

	if err := h.svc.UpdatePlayer(c.Request.Context(), id, req); err != nil {
		h.fail(c, err, http.StatusInternalServerError, "Error updating player")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}

// Report handlers
func (h *Handler) TeamSummary(c *gin.Context) {
	summary, err := h.svc.TeamSummary(c.Request.Context())
	if err != nil {
		h.fail(c, err, http.StatusInternalServerError, "Error fetching summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *Handler) MonthlyContributions(c *gin.Context) {
	contributions, err := h.svc.MonthlyContributions(c.Request.Context())
	if err != nil {
		h.fail(c, err, http.StatusInternalServerError, "Error fetching monthly contribution")
		return
	}
	c.JSON(http.StatusOK, contributions)
}

func (h *Handler) ExportMonthlyContributions(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.svc.ExportMonthlyContributions(c.Request.Context(), &buf); err != nil {
		h.fail(c, err, http.StatusInternalServerError, "Error exporting monthly contribution")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="monthly-contribution.xlsx"`)
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}

// Helper methods

// bind decodes the JSON body into dst. A body that cannot be decoded is
// answered like the store error it would have caused, with message.
func (h *Handler) bind(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.fail(c, err, http.StatusInternalServerError, message)
		return false
	}
	return true
}

// pathID parses the :id path parameter as an integer literal. A value that
// is not one is answered like a failed store cast, with message.
func (h *Handler) pathID(c *gin.Context, message string) (int64, bool) {
	id, err := models.ParseInteger(c.Param("id"))
	if err != nil {
		h.fail(c, err, http.StatusInternalServerError, message)
		return 0, false
	}
	return id, true
}

// fail logs err and writes the uniform error body. Store details stay in the
// log and never reach the client.
func (h *Handler) fail(c *gin.Context, err error, status int, message string) {
	h.logger.Error(message,
		"request_id", c.GetString("requestId"),
		"path", c.Request.URL.Path,
		"status_code", status,
		"error", err,
	)
	c.AbortWithStatusJSON(status, models.ErrorResponse{Error: message})
}
