package forecastquery

import (
	"time"
)

type ForecastQuery struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	APIVersion    string    `json:"api_version" gorm:"column:api_version;index:idx_api_version;index:idx_api_version_created_at"`
	ForecastCount int       `json:"forecast_count" gorm:"column:forecast_count"`
	RequestID     string    `json:"request_id" gorm:"column:request_id"`
	CreatedAt     time.Time `json:"created_at" gorm:"index:idx_created_at;index:idx_api_version_created_at"`
}

func (ForecastQuery) TableName() string {
	return "forecast_queries"
}
