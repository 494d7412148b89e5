package handlers

import (
	"errors"
	"net/http"

	"medicore-ai/pkg/models"
	"medicore-ai/pkg/services"

	"github.com/gin-gonic/gin"
)

// InteractionHandler 薬物相互作用チェックのハンドラー
type InteractionHandler struct {
	service *services.InteractionService
}

// NewInteractionHandler 新しい相互作用ハンドラーを作成
func NewInteractionHandler(service *services.InteractionService) *InteractionHandler {
	return &InteractionHandler{service: service}
}

// CheckInteractions 入力された薬剤同士の相互作用を確認
func (h *InteractionHandler) CheckInteractions(c *gin.Context) {
	var request models.InteractionCheckRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	result, err := h.service.Check(request.Drugs)
	if errors.Is(err, services.ErrNoDrugs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "interaction check failed"})
		return
	}
	c.JSON(http.StatusOK, result)
}
