package services

import (
	"fmt"

	"medicore-ai/pkg/models"

	"github.com/xuri/excelize/v2"
)

// InventorySheetName 在庫予測ワークブックのシート名
const InventorySheetName = "Inventory Forecast"

var inventoryHeader = []interface{}{
	"Medicine", "Category", "Current Stock", "Daily Usage", "Predicted Demand",
	"Days Remaining", "Recommended Stock", "Reorder Needed", "Urgency", "Confidence",
}

// BuildInventoryWorkbook 在庫予測をExcelワークブックに変換
// 呼び出し側でClose()すること
func BuildInventoryWorkbook(forecasts []models.InventoryForecast) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", InventorySheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("シート名の設定に失敗: %w", err)
	}

	if err := f.SetSheetRow(InventorySheetName, "A1", &inventoryHeader); err != nil {
		f.Close()
		return nil, fmt.Errorf("ヘッダー行の書き込みに失敗: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("ヘッダースタイルの作成に失敗: %w", err)
	}
	if err := f.SetCellStyle(InventorySheetName, "A1", "J1", headerStyle); err != nil {
		f.Close()
		return nil, fmt.Errorf("ヘッダースタイルの適用に失敗: %w", err)
	}
	if err := f.SetColWidth(InventorySheetName, "A", "A", 24); err != nil {
		f.Close()
		return nil, fmt.Errorf("列幅の設定に失敗: %w", err)
	}

	for i, fc := range forecasts {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		row := []interface{}{
			fc.MedicineName, fc.Category, fc.CurrentStock, fc.DailyUsageAvg, fc.PredictedDemand30d,
			fc.DaysRemaining, fc.RecommendedStock, fc.ReorderNeeded, string(fc.Urgency), fc.Confidence,
		}
		if err := f.SetSheetRow(InventorySheetName, cell, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("%d行目の書き込みに失敗: %w", i+2, err)
		}
	}
	return f, nil
}
