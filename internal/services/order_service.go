package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/repository"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/validation"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderService struct {
	orders    *repository.OrderRepository
	customers *repository.CustomerRepository
	now       func() time.Time
}

func NewOrderService(orders *repository.OrderRepository, customers *repository.CustomerRepository) *OrderService {
	return &OrderService{orders: orders, customers: customers, now: time.Now}
}

func (s *OrderService) Create(ctx context.Context, creatorID uuid.UUID, req *dto.CreateOrderRequest) (*models.Order, error) {
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, validation.Field("customerId", "must be a valid UUID")
	}
	if _, err := s.customers.FindByID(ctx, customerID); err != nil {
		return nil, customerLookupError(err)
	}

	order := &models.Order{
		CustomerID:    customerID,
		OrderDate:     s.now().UTC(),
		Status:        models.StatusOpen,
		GarmentType:   req.GarmentType,
		FabricDetails: req.FabricDetails,
		Price:         req.Price.Decimal,
		AdvancePaid:   decimal.Zero,
		Notes:         req.Notes,
		CreatedByID:   creatorID,
	}
	if req.AdvancePaid != nil {
		order.AdvancePaid = req.AdvancePaid.Decimal
	}
	if req.Status != nil {
		order.Status = models.OrderStatus(*req.Status)
	}
	if err := applyDates(order, req.OrderDate, req.DeliveryDate); err != nil {
		return nil, err
	}
	if req.Measurements != nil {
		order.SetMeasurements(toMeasurements(req.Measurements))
	}
	order.RecomputeBalance()

	if err := s.orders.Create(ctx, order); err != nil {
		if errors.Is(err, repository.ErrReference) {
			return nil, ErrReferenceNotFound
		}
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return s.Get(ctx, order.ID)
}

func (s *OrderService) List(ctx context.Context, status string) ([]models.Order, error) {
	orders, err := s.orders.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]models.Order, error) {
	if _, err := s.customers.FindByID(ctx, customerID); err != nil {
		return nil, customerLookupError(err)
	}
	orders, err := s.orders.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list customer orders: %w", err)
	}
	return orders, nil
}

func (s *OrderService) Get(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, orderLookupError(err)
	}
	return order, nil
}

// Update applies the supplied fields; balance is re-derived from the
// resulting price and advance.
func (s *OrderService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateOrderRequest) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, orderLookupError(err)
	}

	if req.GarmentType != nil {
		order.GarmentType = *req.GarmentType
	}
	if req.Price != nil {
		order.Price = req.Price.Decimal
	}
	if req.AdvancePaid != nil {
		order.AdvancePaid = req.AdvancePaid.Decimal
	}
	if req.Status != nil {
		order.Status = models.OrderStatus(*req.Status)
	}
	if req.FabricDetails != nil {
		order.FabricDetails = req.FabricDetails
	}
	if req.Notes != nil {
		order.Notes = req.Notes
	}
	if req.Measurements != nil {
		order.SetMeasurements(toMeasurements(req.Measurements))
	}
	if err := applyDates(order, req.OrderDate, req.DeliveryDate); err != nil {
		return nil, err
	}
	order.RecomputeBalance()

	if err := s.orders.Update(ctx, order); err != nil {
		return nil, orderWriteError(err)
	}
	return s.Get(ctx, id)
}

// UpdateStatus allows any transition between the three statuses.
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, orderLookupError(err)
	}
	order.Status = status
	if err := s.orders.Update(ctx, order); err != nil {
		return nil, orderWriteError(err)
	}
	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.orders.Delete(ctx, id); err != nil {
		return orderWriteError(err)
	}
	return nil
}

func applyDates(order *models.Order, orderDate, deliveryDate *string) error {
	if orderDate != nil {
		t, err := time.Parse(time.RFC3339, *orderDate)
		if err != nil {
			return validation.Field("orderDate", "must be an ISO-8601 datetime")
		}
		order.OrderDate = t.UTC()
	}
	if deliveryDate != nil {
		t, err := time.Parse(time.RFC3339, *deliveryDate)
		if err != nil {
			return validation.Field("deliveryDate", "must be an ISO-8601 datetime")
		}
		t = t.UTC()
		order.DeliveryDate = &t
	}
	return nil
}

func toMeasurements(in *dto.MeasurementsInput) *models.Measurements {
	return &models.Measurements{
		Chest:        in.Chest,
		Waist:        in.Waist,
		Hip:          in.Hip,
		Shoulder:     in.Shoulder,
		SleeveLength: in.SleeveLength,
		ShirtLength:  in.ShirtLength,
		PantLength:   in.PantLength,
		Inseam:       in.Inseam,
		Thigh:        in.Thigh,
	}
}

func orderLookupError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrOrderNotFound
	}
	return fmt.Errorf("failed to load order: %w", err)
}

func orderWriteError(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrOrderNotFound
	case errors.Is(err, repository.ErrReference):
		return ErrReferenceNotFound
	}
	return fmt.Errorf("failed to write order: %w", err)
}
