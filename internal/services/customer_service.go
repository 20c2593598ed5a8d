package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"banking_customer_backend/internal/models"
	"banking_customer_backend/internal/repositories"
)

// --- Custom Service Errors for Customer ---
var (
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrCustomerValidation = errors.New("customer data validation error")
	ErrDateFormat         = errors.New("invalid date format, please use YYYY-MM-DD")
)

// --- Customer DTOs ---

// CreateCustomerRequest carries a fully-populated customer. Every field is
// required and validated at the boundary before the service runs.
type CreateCustomerRequest struct {
	Name      string `json:"name" binding:"required"`
	Lastname  string `json:"lastname" binding:"required"`
	Datebirth string `json:"datebirth" binding:"required"` // Format YYYY-MM-DD
	Gender    string `json:"gender" binding:"required,oneof=M F"`
	Country   string `json:"country" binding:"required"`
}

// UpdateCustomerRequest carries an optional value per field. Fields are never
// validated here, only conditionally applied: a nil or blank field leaves the
// stored value unchanged.
type UpdateCustomerRequest struct {
	Name      *string `json:"name"`
	Lastname  *string `json:"lastname"`
	Datebirth *string `json:"datebirth"` // Format YYYY-MM-DD
	Gender    *string `json:"gender"`
	Country   *string `json:"country"`
}

// CustomerResponse is the transport representation of a customer record.
type CustomerResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Lastname  string `json:"lastname"`
	Datebirth string `json:"datebirth"`
	Gender    string `json:"gender"`
	Country   string `json:"country"`
}

// --- CustomerService Interface ---
type CustomerService interface {
	CreateCustomer(req CreateCustomerRequest) (*CustomerResponse, error)
	GetCustomers() ([]CustomerResponse, error)
	GetCustomerByID(customerID int64) (*CustomerResponse, error)
	UpdateCustomer(customerID int64, req UpdateCustomerRequest) (*CustomerResponse, error)
	DeleteCustomer(customerID int64) error
}

// --- customerService Implementation ---
type customerService struct {
	customerRepo repositories.CustomerRepository
	db           *sql.DB
}

// NewCustomerService creates a new instance of CustomerService.
func NewCustomerService(repo repositories.CustomerRepository, db *sql.DB) CustomerService {
	return &customerService{
		customerRepo: repo,
		db:           db,
	}
}

func (s *customerService) parseDatebirth(value string) (time.Time, error) {
	dob, err := time.Parse(models.DateLayout, value)
	if err != nil {
		return time.Time{}, ErrDateFormat
	}
	if dob.After(time.Now()) {
		return time.Time{}, fmt.Errorf("%w: date of birth cannot be in the future", ErrCustomerValidation)
	}
	return dob, nil
}

func (s *customerService) CreateCustomer(req CreateCustomerRequest) (*CustomerResponse, error) {
	dob, err := s.parseDatebirth(req.Datebirth)
	if err != nil {
		return nil, err
	}

	customer := newCustomerFromCreateRequest(req, dob)
	id, err := s.customerRepo.CreateCustomer(s.db, customer)
	if err != nil {
		return nil, fmt.Errorf("failed to create customer in repository: %w", err)
	}

	created, err := s.customerRepo.GetCustomerByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to read back created customer: %w", err)
	}
	return toCustomerResponse(created), nil
}

func (s *customerService) GetCustomers() ([]CustomerResponse, error) {
	customers, err := s.customerRepo.GetCustomers()
	if err != nil {
		return nil, fmt.Errorf("failed to get customers: %w", err)
	}
	return toCustomerResponses(customers), nil
}

func (s *customerService) GetCustomerByID(customerID int64) (*CustomerResponse, error) {
	customer, err := s.customerRepo.GetCustomerByID(customerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer by ID: %w", err)
	}
	return toCustomerResponse(customer), nil
}

// UpdateCustomer applies a field-level merge: each field of the request is
// applied only when non-nil and, for string fields, non-blank after trimming.
// Everything else keeps its stored value. The merged record is persisted as a
// whole even when no field changed, so a blank request is a write-through
// no-op that still returns the unchanged record.
func (s *customerService) UpdateCustomer(customerID int64, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.GetCustomerByID(customerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to find customer for update: %w", err)
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		customer.Name = *req.Name
	}
	if req.Lastname != nil && strings.TrimSpace(*req.Lastname) != "" {
		customer.Lastname = *req.Lastname
	}
	if req.Gender != nil && strings.TrimSpace(*req.Gender) != "" {
		customer.Gender = *req.Gender
	}
	if req.Datebirth != nil {
		dob, parseErr := time.Parse(models.DateLayout, *req.Datebirth)
		if parseErr != nil {
			return nil, ErrDateFormat
		}
		customer.Datebirth = dob
	}
	if req.Country != nil && strings.TrimSpace(*req.Country) != "" {
		customer.Country = *req.Country
	}

	if err := s.customerRepo.UpdateCustomer(s.db, customer); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to update customer in repository: %w", err)
	}
	return toCustomerResponse(customer), nil
}

// DeleteCustomer removes a customer after an existence check. Deleting an
// already-deleted id reports ErrCustomerNotFound, so repeated deletes are
// distinguishable from the first successful one.
func (s *customerService) DeleteCustomer(customerID int64) error {
	if _, err := s.customerRepo.GetCustomerByID(customerID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCustomerNotFound
		}
		return fmt.Errorf("failed to find customer for deletion: %w", err)
	}

	if err := s.customerRepo.DeleteCustomer(s.db, customerID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCustomerNotFound
		}
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return nil
}
