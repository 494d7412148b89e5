package handlers

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ForecastLimits 予測日数のデフォルトと上限
type ForecastLimits struct {
	DefaultRegion string
	DefaultDays   int
	MaxDays       int
}

// bindOptionalJSON はボディをバインドする。空のボディはすべてデフォルト値として扱う
func bindOptionalJSON(c *gin.Context, obj interface{}) error {
	if c.Request.Body == nil {
		return nil
	}
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// resolveDays 予測日数を検証する。未指定ならデフォルト値
func (l ForecastLimits) resolveDays(daysAhead *int) (int, error) {
	if daysAhead == nil {
		return l.DefaultDays, nil
	}
	days := *daysAhead
	if days < 1 {
		return 0, fmt.Errorf("days_ahead must be a positive integer, got %d", days)
	}
	if l.MaxDays > 0 && days > l.MaxDays {
		return 0, fmt.Errorf("days_ahead must not exceed %d, got %d", l.MaxDays, days)
	}
	return days, nil
}

// resolveDaysQuery クエリパラメータdays_aheadを検証する
func (l ForecastLimits) resolveDaysQuery(c *gin.Context) (int, error) {
	raw, ok := c.GetQuery("days_ahead")
	if !ok || raw == "" {
		return l.DefaultDays, nil
	}
	days, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("days_ahead must be an integer, got %q", raw)
	}
	return l.resolveDays(&days)
}

// resolveRegion 未指定の場合のみデフォルト地域を使う（空文字は空文字のまま）
func (l ForecastLimits) resolveRegion(region *string) string {
	if region == nil {
		return l.DefaultRegion
	}
	return *region
}
