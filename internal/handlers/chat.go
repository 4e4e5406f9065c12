package handlers

import (
	"errors"
	"net/http"

	"github.com/thais-adelino/projeto-skin-track/internal/quiz"

	"github.com/gin-gonic/gin"
)

var errSessionNotFound = errors.New("session not found")

type ChatHandler struct {
	catalog *quiz.Catalog
	sink    quiz.ResultSink
	store   *sessionStore
}

func NewChatHandler(catalog *quiz.Catalog, sink quiz.ResultSink) *ChatHandler {
	h := &ChatHandler{catalog: catalog, sink: sink}
	h.store = newSessionStore(h.state)
	return h
}

type CreateChatSessionRequest struct {
	Name string `json:"name" example:"Ana"`
}

type ChatSessionState struct {
	SessionID       string         `json:"session_id"`
	Messages        []quiz.Message `json:"messages"`
	CurrentQuestion *quiz.Question `json:"current_question,omitempty"`
	TotalQuestions  int            `json:"total_questions"`
	Finished        bool           `json:"finished"`
	Analysis        *quiz.Analysis `json:"analysis,omitempty"`
}

// state renders a response snapshot. Only called by the store with its lock
// held, so the session cannot advance mid-render.
func (h *ChatHandler) state(id string, s *quiz.Session) ChatSessionState {
	state := ChatSessionState{
		SessionID:      id,
		Messages:       s.Messages(),
		TotalQuestions: h.catalog.Len(),
		Finished:       s.IsFinished(),
	}
	if q, ok := s.CurrentQuestion(); ok {
		state.CurrentQuestion = &q
	}
	if s.IsFinished() {
		state.Analysis = s.Result()
	}
	return state
}

// CreateSession godoc
// @Summary      Start a chat quiz session
// @Description  Opens a conversational session at the first question
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        request body CreateChatSessionRequest true "User name"
// @Success      201 {object} ChatSessionState
// @Failure      400 {object} ErrorResponse
// @Router       /api/chat/sessions [post]
func (h *ChatHandler) CreateSession(c *gin.Context) {
	var req CreateChatSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	_, state := h.store.create(quiz.NewSession(h.catalog, req.Name, h.sink))

	c.JSON(http.StatusCreated, state)
}

// GetSession godoc
// @Summary      Get chat session state
// @Description  Transcript, current question and, once finished, the analysis
// @Tags         chat
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} ChatSessionState
// @Failure      404 {object} ErrorResponse
// @Router       /api/chat/sessions/{id} [get]
func (h *ChatHandler) GetSession(c *gin.Context) {
	state, ok := h.store.get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: errSessionNotFound.Error()})
		return
	}

	c.JSON(http.StatusOK, state)
}

type SubmitAnswerRequest struct {
	Answer string `json:"answer" binding:"required" example:"Muito oleosa em todo o rosto"`
}

// SubmitAnswer godoc
// @Summary      Answer the current question
// @Description  Accepts one of the current question's options and advances the session
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        request body SubmitAnswerRequest true "Selected option"
// @Success      200 {object} ChatSessionState
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/chat/sessions/{id}/answers [post]
func (h *ChatHandler) SubmitAnswer(c *gin.Context) {
	var req SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	state, err := h.store.submit(c.Param("id"), req.Answer)
	if err != nil {
		if errors.Is(err, errSessionNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, state)
}

// ResetSession godoc
// @Summary      Restart a chat session
// @Description  Replaces the session with a fresh one for the same user
// @Tags         chat
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} ChatSessionState
// @Failure      404 {object} ErrorResponse
// @Router       /api/chat/sessions/{id}/reset [post]
func (h *ChatHandler) ResetSession(c *gin.Context) {
	state, ok := h.store.reset(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: errSessionNotFound.Error()})
		return
	}

	c.JSON(http.StatusOK, state)
}
