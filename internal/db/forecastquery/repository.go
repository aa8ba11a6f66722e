package forecastquery

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Repository records which API version served each forecast request.
// Forecast records themselves are never stored.
type Repository interface {
	LogForecastQuery(ctx context.Context, apiVersion string, forecastCount int, requestID string) error
	GetRecentForecastQuery(ctx context.Context, apiVersion string) (*ForecastQuery, error)
}

type ForecastSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &ForecastSQLRepository{db: db}
}

func (r *ForecastSQLRepository) LogForecastQuery(ctx context.Context, apiVersion string, forecastCount int, requestID string) error {
	query := ForecastQuery{
		APIVersion:    apiVersion,
		ForecastCount: forecastCount,
		RequestID:     requestID,
		CreatedAt:     time.Now(),
	}

	return r.db.WithContext(ctx).Create(&query).Error
}

func (r *ForecastSQLRepository) GetRecentForecastQuery(ctx context.Context, apiVersion string) (*ForecastQuery, error) {
	var query ForecastQuery
	err := r.db.WithContext(ctx).Where("api_version = ?", apiVersion).Order("created_at DESC").First(&query).Error
	if err != nil {
		return nil, err
	}
	return &query, nil
}
