package handlers

import (
	"log"
	"net/http"

	"github.com/thais-adelino/projeto-skin-track/internal/quiz"
	"github.com/thais-adelino/projeto-skin-track/internal/services"
	"github.com/thais-adelino/projeto-skin-track/internal/ws"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *services.UserService
	hub         *ws.Hub
}

func NewUserHandler(userService *services.UserService, hub *ws.Hub) *UserHandler {
	return &UserHandler{userService: userService, hub: hub}
}

type CreateUserRequest struct {
	Name            string         `json:"name" example:"Ana"`
	SkinType        string         `json:"skinType" example:"oily"`
	Characteristics map[string]int `json:"characteristics"`
}

type CreateUserResponse struct {
	Success bool   `json:"success" example:"true"`
	UserID  uint   `json:"userId" example:"1"`
	Message string `json:"message" example:"User data saved successfully"`
}

// CreateUser godoc
// @Summary      Save a quiz result
// @Description  Store a user's name, classified skin type and weight breakdown
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body CreateUserRequest true "Quiz result"
// @Success      200 {object} CreateUserResponse
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Name, skin type, and characteristics are required"})
		return
	}

	if req.Name == "" || req.SkinType == "" || len(req.Characteristics) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Name, skin type, and characteristics are required"})
		return
	}

	weights := make(quiz.WeightVector, len(req.Characteristics))
	for k, v := range req.Characteristics {
		weights[quiz.SkinType(k)] = v
	}

	user, err := h.userService.SaveUser(req.Name, req.SkinType, weights)
	if err != nil {
		log.Printf("database error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to save user data"})
		return
	}

	broadcastStatistics(h.userService, h.hub)

	c.JSON(http.StatusOK, CreateUserResponse{
		Success: true,
		UserID:  user.ID,
		Message: "User data saved successfully",
	})
}

// GetStatistics godoc
// @Summary      Community skin-type statistics
// @Description  Counts and percentages per skin type over all stored results
// @Tags         users
// @Produce      json
// @Success      200 {object} services.Statistics
// @Failure      500 {object} ErrorResponse
// @Router       /api/statistics [get]
func (h *UserHandler) GetStatistics(c *gin.Context) {
	stats, err := h.userService.GetStatistics()
	if err != nil {
		log.Printf("database error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch statistics"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ListUsers godoc
// @Summary      List stored results
// @Description  All stored quiz results, newest first
// @Tags         users
// @Produce      json
// @Success      200 {array} services.UserSummary
// @Failure      500 {object} ErrorResponse
// @Router       /api/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		log.Printf("database error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// Health godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /api/health [get]
func (h *UserHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "Server is running"})
}
