// Package reskinrepo persists asset reskin requests.
package reskinrepo

import (
	"context"
	"encoding/json"
	"errors"

	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/core/domain/model/reskin"
	"rentops/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequestDTO represents the database structure for reskin requests. The
// completion photo references are serialized to JSON.
type RequestDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID `gorm:"type:uuid;index"`
	SourceAssetID    uuid.UUID `gorm:"type:uuid"`
	Status           int       `gorm:"index"`
	NewAssetName     string
	CompletionPhotos string
	CancelReason     string
}

// TableName specifies the database table name for reskin requests.
func (RequestDTO) TableName() string {
	return "reskin_requests"
}

func fromDomain(request *reskin.Request) (RequestDTO, error) {
	photos := ""
	if len(request.CompletionPhotos()) > 0 {
		raw, err := json.Marshal(request.CompletionPhotos())
		if err != nil {
			return RequestDTO{}, err
		}
		photos = string(raw)
	}

	return RequestDTO{
		ID:               request.ID().Bytes(),
		OrderID:          request.OrderID().Bytes(),
		SourceAssetID:    request.SourceAssetID().Bytes(),
		Status:           int(request.Status()),
		NewAssetName:     request.NewAssetName(),
		CompletionPhotos: photos,
		CancelReason:     request.CancelReason(),
	}, nil
}

func toDomain(dto RequestDTO) (*reskin.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	sourceAssetID, err := kernel.UUIDFromBytes(dto.SourceAssetID[:])
	if err != nil {
		return nil, err
	}

	var photos []string
	if dto.CompletionPhotos != "" {
		if err = json.Unmarshal([]byte(dto.CompletionPhotos), &photos); err != nil {
			return nil, err
		}
	}

	return reskin.RestoreRequest(
		id, orderID, sourceAssetID,
		reskin.Status(dto.Status), dto.NewAssetName, photos, dto.CancelReason,
	)
}

// GormReskinRepository implements ReskinRequestRepository using GORM.
type GormReskinRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormReskinRepository creates a new GORM reskin request repository.
func NewGormReskinRepository(db *gorm.DB, tracker aggregateTracker) *GormReskinRepository {
	return &GormReskinRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new reskin request to the database.
func (r *GormReskinRepository) Add(ctx context.Context, aggregate *reskin.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the resolution of an existing request.
func (r *GormReskinRepository) Update(ctx context.Context, aggregate *reskin.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&RequestDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("reskinRequest", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a reskin request by ID.
func (r *GormReskinRepository) Get(ctx context.Context, id kernel.UUID) (*reskin.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("reskinRequest", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPending retrieves all unresolved requests for an order.
func (r *GormReskinRepository) GetAllPending(ctx context.Context, orderID kernel.UUID) ([]*reskin.Request, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RequestDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "order_id = ? AND status = ?", orderID.Bytes(), int(reskin.Pending)).Error
	if err != nil {
		return nil, err
	}

	requests := make([]*reskin.Request, 0, len(dtos))
	for _, dto := range dtos {
		request, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	return requests, nil
}
