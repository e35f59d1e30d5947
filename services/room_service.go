package services

import (
	"context"
	"time"

	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/DC-NERI/innWise-sub001/constants"
	"github.com/DC-NERI/innWise-sub001/dto"
	"github.com/DC-NERI/innWise-sub001/errors"
	"github.com/DC-NERI/innWise-sub001/models"
	"github.com/DC-NERI/innWise-sub001/services/logger"
)

const roomBoardCacheTTL = 2 * time.Minute

// RoomService manages the room catalog and the per-branch status board.
type RoomService struct {
	db     *gorm.DB
	rdb    *redis.Client
	logger logger.Logger
}

func NewRoomService(db *gorm.DB, rdb *redis.Client, log logger.Logger) *RoomService {
	if log == nil {
		log = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &RoomService{db: db, rdb: rdb, logger: log}
}

// Create adds a room to a branch catalog.
func (s *RoomService) Create(req dto.CreateRoomRequest) (*models.Room, error) {
	room := models.Room{
		TenantID:       req.TenantID,
		BranchID:       req.BranchID,
		RoomCode:       req.RoomCode,
		RoomName:       req.RoomName,
		Floor:          req.Floor,
		IsAvailable:    constants.RoomAvailable,
		CleaningStatus: constants.CleaningClean,
		RateIDs:        pq.Int64Array(req.RateIDs),
		Avatar:         req.Avatar,
		Status:         1,
	}
	if err := s.db.Create(&room).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, errors.NewAppError(errors.ErrCodeDBDuplicate,
				"a room with this code already exists in the branch", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to create room", err)
	}
	s.invalidateBoard(req.TenantID, req.BranchID)
	return &room, nil
}

// Update edits catalog fields. Availability and cleaning status are owned by
// the lifecycle and housekeeping services and are not touched here.
func (s *RoomService) Update(req dto.UpdateRoomRequest) (*models.Room, error) {
	var room models.Room
	err := s.db.Where("tenant_id = ? AND branch_id = ?", req.TenantID, req.BranchID).
		First(&room, req.RoomID).Error
	if err == gorm.ErrRecordNotFound {
		return nil, errors.NewAppError(errors.ErrCodeRoomNotFound, "room not found", nil)
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load room", err)
	}

	updates := map[string]interface{}{}
	if req.RoomName != "" {
		updates["room_name"] = req.RoomName
	}
	if req.Floor != "" {
		updates["floor"] = req.Floor
	}
	if req.RateIDs != nil {
		updates["rate_ids"] = pq.Int64Array(req.RateIDs)
	}
	if req.Avatar != "" {
		updates["avatar"] = req.Avatar
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if len(updates) > 0 {
		if err := s.db.Model(&room).Updates(updates).Error; err != nil {
			return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to update room", err)
		}
	}
	s.invalidateBoard(req.TenantID, req.BranchID)
	return &room, nil
}

// Board returns the room status board for one branch: availability, cleaning
// state and the occupying guest per room. Served from the Redis cache when
// fresh; listing is the hot read on the front desk dashboard.
func (s *RoomService) Board(ctx context.Context, tenantID, branchID uint) ([]dto.RoomBoardEntry, error) {
	cacheKey := RoomBoardCacheKey(tenantID, branchID)

	var entries []dto.RoomBoardEntry
	if s.rdb != nil {
		if err := GetFromRedis(ctx, s.rdb, cacheKey, &entries); err == nil && len(entries) > 0 {
			return entries, nil
		}
	}

	var rooms []models.Room
	err := s.db.Preload("Transaction").Preload("Transaction.HotelRate").
		Where("tenant_id = ? AND branch_id = ? AND status = 1", tenantID, branchID).
		Order("room_code").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}

	entries = make([]dto.RoomBoardEntry, 0, len(rooms))
	for _, room := range rooms {
		entry := dto.RoomBoardEntry{
			RoomID:         room.ID,
			RoomCode:       room.RoomCode,
			RoomName:       room.RoomName,
			Floor:          room.Floor,
			IsAvailable:    room.IsAvailable,
			Availability:   constants.RoomAvailabilityText[room.IsAvailable],
			CleaningStatus: room.CleaningStatus,
			Cleaning:       constants.CleaningStatusLabel(room.CleaningStatus),
			TransactionID:  room.TransactionID,
		}
		if room.Transaction != nil {
			entry.ClientName = room.Transaction.ClientName
			if room.Transaction.HotelRate != nil {
				entry.RateName = room.Transaction.HotelRate.Name
			}
		}
		entries = append(entries, entry)
	}

	if s.rdb != nil {
		if err := SetToRedis(ctx, s.rdb, cacheKey, entries, roomBoardCacheTTL); err != nil {
			s.logger.Error("failed to cache room board: %v", err)
		}
	}
	return entries, nil
}

// Get loads one room.
func (s *RoomService) Get(tenantID, branchID, roomID uint) (*models.Room, error) {
	var room models.Room
	err := s.db.Preload("Transaction").
		Where("tenant_id = ? AND branch_id = ?", tenantID, branchID).
		First(&room, roomID).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *RoomService) invalidateBoard(tenantID, branchID uint) {
	if s.rdb == nil {
		return
	}
	if err := DeleteFromRedis(context.Background(), s.rdb, RoomBoardCacheKey(tenantID, branchID)); err != nil {
		s.logger.Error("failed to invalidate room board cache: %v", err)
	}
}
