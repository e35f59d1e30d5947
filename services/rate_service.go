package services

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/DC-NERI/innWise-sub001/constants"
	"github.com/DC-NERI/innWise-sub001/dto"
	"github.com/DC-NERI/innWise-sub001/errors"
	"github.com/DC-NERI/innWise-sub001/models"
	"github.com/DC-NERI/innWise-sub001/services/logger"
)

const rateListCacheTTL = 10 * time.Minute

// RateService manages the rate catalog. Rates are reference data for the
// lifecycle: archived instead of deleted so closed transactions keep their
// pricing history.
type RateService struct {
	db     *gorm.DB
	rdb    *redis.Client
	logger logger.Logger
}

func NewRateService(db *gorm.DB, rdb *redis.Client, log logger.Logger) *RateService {
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &RateService{db: db, rdb: rdb, logger: log}
}

// ListActive returns the active rates for a branch, cached.
func (s *RateService) ListActive(ctx context.Context, tenantID, branchID uint) ([]models.HotelRate, error) {
	cacheKey := RateListCacheKey(tenantID, branchID)

	var rates []models.HotelRate
	if s.rdb != nil {
		if err := GetFromRedis(ctx, s.rdb, cacheKey, &rates); err == nil && len(rates) > 0 {
			return rates, nil
		}
	}

	err := s.db.Where("tenant_id = ? AND branch_id = ? AND status = ?", tenantID, branchID, constants.RateActive).
		Order("name").
		Find(&rates).Error
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if err := SetToRedis(ctx, s.rdb, cacheKey, rates, rateListCacheTTL); err != nil {
			s.logger.Error("failed to cache rate list: %v", err)
		}
	}
	return rates, nil
}

func (s *RateService) Get(tenantID, branchID, rateID uint) (*models.HotelRate, error) {
	var rate models.HotelRate
	err := s.db.Where("tenant_id = ? AND branch_id = ?", tenantID, branchID).
		First(&rate, rateID).Error
	if err != nil {
		return nil, err
	}
	return &rate, nil
}

func (s *RateService) Create(req dto.CreateRateRequest) (*models.HotelRate, error) {
	rate := models.HotelRate{
		TenantID:        req.TenantID,
		BranchID:        req.BranchID,
		Name:            req.Name,
		Price:           req.Price,
		Hours:           req.Hours,
		ExcessHourPrice: req.ExcessHourPrice,
		Status:          constants.RateActive,
	}
	if err := s.db.Create(&rate).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to create rate", err)
	}
	s.invalidate(req.TenantID, req.BranchID)
	return &rate, nil
}

func (s *RateService) Update(req dto.UpdateRateRequest) (*models.HotelRate, error) {
	var rate models.HotelRate
	err := s.db.Where("tenant_id = ? AND branch_id = ?", req.TenantID, req.BranchID).
		First(&rate, req.RateID).Error
	if err == gorm.ErrRecordNotFound {
		return nil, errors.NewAppError(errors.ErrCodeRateNotFound, "rate not found", nil)
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load rate", err)
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Hours != nil {
		updates["hours"] = *req.Hours
	}
	if req.ExcessHourPrice != nil {
		updates["excess_hour_price"] = *req.ExcessHourPrice
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if len(updates) > 0 {
		if err := s.db.Model(&rate).Updates(updates).Error; err != nil {
			return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to update rate", err)
		}
	}
	s.invalidate(req.TenantID, req.BranchID)
	return &rate, nil
}

func (s *RateService) invalidate(tenantID, branchID uint) {
	if s.rdb == nil {
		return
	}
	if err := DeleteFromRedis(context.Background(), s.rdb, RateListCacheKey(tenantID, branchID)); err != nil {
		s.logger.Error("failed to invalidate rate cache: %v", err)
	}
}
