// Package requestrepo persists customer line item requests.
package requestrepo

import (
	"context"
	"errors"

	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/core/domain/model/lineitem"
	"rentops/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequestDTO represents the database structure for line item requests.
type RequestDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	Description string
	Status      int `gorm:"index"`
	AdminNote   string
}

// TableName specifies the database table name for line item requests.
func (RequestDTO) TableName() string {
	return "line_item_requests"
}

func fromDomain(request *lineitem.Request) RequestDTO {
	return RequestDTO{
		ID:          request.ID().Bytes(),
		OrderID:     request.OrderID().Bytes(),
		Description: request.Description(),
		Status:      int(request.Status()),
		AdminNote:   request.AdminNote(),
	}
}

func toDomain(dto RequestDTO) (*lineitem.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return lineitem.RestoreRequest(id, orderID, dto.Description, lineitem.RequestStatus(dto.Status), dto.AdminNote)
}

// GormRequestRepository implements LineItemRequestRepository using GORM.
type GormRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRequestRepository creates a new GORM line item request repository.
func NewGormRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormRequestRepository {
	return &GormRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new line item request to the database.
func (r *GormRequestRepository) Add(ctx context.Context, aggregate *lineitem.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the resolution of an existing request.
func (r *GormRequestRepository) Update(ctx context.Context, aggregate *lineitem.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RequestDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("lineItemRequest", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a line item request by ID.
func (r *GormRequestRepository) Get(ctx context.Context, id kernel.UUID) (*lineitem.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("lineItemRequest", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllRequested retrieves all unresolved requests for an order.
func (r *GormRequestRepository) GetAllRequested(ctx context.Context, orderID kernel.UUID) ([]*lineitem.Request, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RequestDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "order_id = ? AND status = ?", orderID.Bytes(), int(lineitem.Requested)).Error
	if err != nil {
		return nil, err
	}

	requests := make([]*lineitem.Request, 0, len(dtos))
	for _, dto := range dtos {
		request, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	return requests, nil
}
