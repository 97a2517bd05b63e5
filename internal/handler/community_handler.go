package handler

import (
	"net/http"

	"community-board/internal/services"
	"community-board/internal/transport/httpdto"
	"community-board/pkg/logger"

	"github.com/gin-gonic/gin"
)

// CommunityHandler handles the question board endpoints. Response shapes
// differ per endpoint and are kept that way for existing clients.
type CommunityHandler struct {
	service *services.CommunityService
	logger  *logger.Logger
}

func NewCommunityHandler(service *services.CommunityService, l *logger.Logger) *CommunityHandler {
	if l == nil {
		l = logger.NewNop()
	}
	return &CommunityHandler{service: service, logger: l}
}

// Create handles POST /community.
func (h *CommunityHandler) Create(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		h.logger.WithContext(c.Request.Context()).Errorf("Error saving question: %v", err)
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse(httpdto.MsgQuestionSaveError))
		return
	}

	questions, err := h.service.Create(c.Request.Context(), body)
	if err != nil {
		h.logger.WithContext(c.Request.Context()).Errorf("Error saving question: %v", err)
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse(httpdto.MsgQuestionSaveError))
		return
	}

	c.JSON(http.StatusOK, httpdto.QuestionsResponse{
		Success:   true,
		Message:   httpdto.MsgQuestionSaved,
		Questions: httpdto.QuestionList(questions),
	})
}

// List handles GET /community. The body is a bare array.
func (h *CommunityHandler) List(c *gin.Context) {
	questions, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.WithContext(c.Request.Context()).Errorf("Error fetching questions: %v", err)
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse(httpdto.MsgQuestionsFetchErr))
		return
	}
	c.JSON(http.StatusOK, httpdto.QuestionList(questions))
}

// Delete handles DELETE /community/:id. A missing id still succeeds.
func (h *CommunityHandler) Delete(c *gin.Context) {
	questions, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logger.WithContext(c.Request.Context()).Errorf("Error deleting question: %v", err)
		c.JSON(http.StatusInternalServerError, httpdto.Response{Success: false})
		return
	}

	c.JSON(http.StatusOK, httpdto.QuestionsResponse{
		Success:   true,
		Questions: httpdto.QuestionList(questions),
	})
}
