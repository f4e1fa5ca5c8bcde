package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/tailor-backend/internal/repository"
	"github.com/google/uuid"
)

type CustomerService struct {
	customers *repository.CustomerRepository
	orders    *repository.OrderRepository
}

func NewCustomerService(customers *repository.CustomerRepository, orders *repository.OrderRepository) *CustomerService {
	return &CustomerService{customers: customers, orders: orders}
}

func (s *CustomerService) Create(ctx context.Context, creatorID uuid.UUID, req *dto.CreateCustomerRequest) (*models.Customer, error) {
	taken, err := s.customers.PhoneTaken(ctx, req.Phone, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check phone uniqueness: %w", err)
	}
	if taken {
		return nil, ErrCustomerExists
	}

	customer := &models.Customer{
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		CreatedByID: creatorID,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrCustomerExists
		}
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return customer, nil
}

func (s *CustomerService) List(ctx context.Context) ([]models.Customer, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

// Get returns the customer with its orders, newest first.
func (s *CustomerService) Get(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	customer, err := s.customers.FindByIDWithOrders(ctx, id)
	if err != nil {
		return nil, customerLookupError(err)
	}
	return customer, nil
}

func (s *CustomerService) SearchByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	customer, err := s.customers.FindByPhoneWithOrders(ctx, phone)
	if err != nil {
		return nil, customerLookupError(err)
	}
	return customer, nil
}

func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCustomerRequest) (*models.Customer, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, customerLookupError(err)
	}

	if req.Phone != nil && *req.Phone != customer.Phone {
		taken, err := s.customers.PhoneTaken(ctx, *req.Phone, customer.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check phone uniqueness: %w", err)
		}
		if taken {
			return nil, ErrPhoneInUse
		}
		customer.Phone = *req.Phone
	}
	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Email != nil {
		customer.Email = req.Email
	}
	if req.Address != nil {
		customer.Address = req.Address
	}

	if err := s.customers.Update(ctx, customer); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrPhoneInUse
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return customer, nil
}

// Delete refuses to remove a customer that still has orders.
func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.customers.FindByID(ctx, id); err != nil {
		return customerLookupError(err)
	}

	count, err := s.orders.CountByCustomer(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count customer orders: %w", err)
	}
	if count > 0 {
		return &DependentsError{Resource: "customer", Count: count}
	}

	if err := s.customers.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return ErrCustomerNotFound
		case errors.Is(err, repository.ErrReference):
			// An order was added between the count and the delete.
			count, _ := s.orders.CountByCustomer(ctx, id)
			return &DependentsError{Resource: "customer", Count: count}
		}
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return nil
}

func customerLookupError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrCustomerNotFound
	}
	return fmt.Errorf("failed to load customer: %w", err)
}
