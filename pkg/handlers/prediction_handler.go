package handlers

import (
	"fmt"
	"net/http"

	"medicore-ai/pkg/models"
	"medicore-ai/pkg/services"

	"github.com/gin-gonic/gin"
)

// PredictionHandler 疾患予測・在庫予測・補充推奨のハンドラー
type PredictionHandler struct {
	diseaseService   *services.DiseasePredictionService
	inventoryService *services.InventoryForecastService
	restockService   *services.RestockService
	limits           ForecastLimits
}

// NewPredictionHandler 新しい予測ハンドラーを作成
func NewPredictionHandler(
	diseaseService *services.DiseasePredictionService,
	inventoryService *services.InventoryForecastService,
	restockService *services.RestockService,
	limits ForecastLimits,
) *PredictionHandler {
	return &PredictionHandler{
		diseaseService:   diseaseService,
		inventoryService: inventoryService,
		restockService:   restockService,
		limits:           limits,
	}
}

// PredictDisease 今後N日間の疾患トレンドを予測
func (h *PredictionHandler) PredictDisease(c *gin.Context) {
	var request models.DiseasePredictionRequest
	if err := bindOptionalJSON(c, &request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	days, err := h.limits.resolveDays(request.DaysAhead)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.diseaseService.Predict(h.limits.resolveRegion(request.Region), days)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "disease prediction failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, response)
}

// PredictInventory 今後N日間の医薬品需要を予測
func (h *PredictionHandler) PredictInventory(c *gin.Context) {
	var request models.InventoryForecastRequest
	if err := bindOptionalJSON(c, &request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	days, err := h.limits.resolveDays(request.DaysAhead)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.inventoryService.Forecast(request.MedicineID, days)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "inventory forecast failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, response)
}

// ExportInventory 在庫予測をExcelファイルとして出力
func (h *PredictionHandler) ExportInventory(c *gin.Context) {
	days, err := h.limits.resolveDaysQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	forecast, err := h.inventoryService.Forecast(nil, days)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "inventory forecast failed: " + err.Error()})
		return
	}

	workbook, err := services.BuildInventoryWorkbook(forecast.Forecasts)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "workbook generation failed"})
		return
	}
	defer workbook.Close()

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="inventory_forecast_%dd.xlsx"`, days))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Status(http.StatusOK)
	if err := workbook.Write(c.Writer); err != nil {
		_ = c.Error(err)
	}
}

// GetRestockRecommendations 補充推奨リストを取得
func (h *PredictionHandler) GetRestockRecommendations(c *gin.Context) {
	c.JSON(http.StatusOK, h.restockService.Recommendations())
}
