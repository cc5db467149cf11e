package orderrepo

import (
	"context"
	"errors"
	"time"

	"rentops/internal/core/domain/model/kernel"
	"rentops/internal/core/domain/model/order"
	"rentops/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its history and line items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update saves an existing order. The write is guarded by an optimistic
// version check: when the stored version no longer matches the version the
// aggregate was loaded with, the order was changed by someone else and the
// update fails with a ConcurrentModification error. On success the
// aggregate's version is advanced to the stored one.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	expected := dto.Version
	dto.Version = expected + 1

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, expected).
		Select("*").Omit("id", "created_at", "History", "LineItems").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var stored OrderDTO
		findErr := r.db.WithContext(ctx).Select("id", "version").First(&stored, "id = ?", dto.ID).Error
		if errors.Is(findErr, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		if findErr != nil {
			return findErr
		}
		return errs.NewConcurrentModificationError("order", expected, stored.Version)
	}

	// History and line items are replaced wholesale. Both collections are
	// small and owned exclusively by the order.
	if err = r.db.WithContext(ctx).Where("order_id = ?", dto.ID).Delete(&HistoryDTO{}).Error; err != nil {
		return err
	}
	if len(dto.History) > 0 {
		if err = r.db.WithContext(ctx).Create(&dto.History).Error; err != nil {
			return err
		}
	}

	if err = r.db.WithContext(ctx).Where("order_id = ?", dto.ID).Delete(&LineItemDTO{}).Error; err != nil {
		return err
	}
	if len(dto.LineItems) > 0 {
		if err = r.db.WithContext(ctx).Create(&dto.LineItems).Error; err != nil {
			return err
		}
	}

	aggregate.BumpVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its history and line items.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.preloaded(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInStatus retrieves all orders currently in the given status.
func (r *GormOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.preloaded(ctx).Order("created_at").Find(&dtos, "status = ?", int(status)).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllInvoicedUnpaid retrieves all orders invoiced but not yet paid.
func (r *GormOrderRepository) GetAllInvoicedUnpaid(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.preloaded(ctx).Order("invoiced_at").
		Find(&dtos, "financial_status = ?", int(order.Invoiced)).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllWithPickupBefore retrieves orders still out in the field whose
// pickup window opens before the deadline.
func (r *GormOrderRepository) GetAllWithPickupBefore(ctx context.Context, deadline time.Time) ([]*order.Order, error) {
	outStatuses := []int{int(order.Delivered), int(order.InUse), int(order.AwaitingReturn)}

	var dtos []OrderDTO
	err := r.preloaded(ctx).Order("pickup_start").
		Find(&dtos, "status IN ? AND pickup_start IS NOT NULL AND pickup_start < ?", outStatuses, deadline).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func (r *GormOrderRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("History", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		Preload("LineItems")
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
