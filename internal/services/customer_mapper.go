package services

import (
	"time"

	"banking_customer_backend/internal/models"
)

// newCustomerFromCreateRequest assembles a storage entity from a validated
// create request. The id is left zero; the store assigns it.
func newCustomerFromCreateRequest(req CreateCustomerRequest, dob time.Time) *models.Customer {
	return &models.Customer{
		Name:      req.Name,
		Lastname:  req.Lastname,
		Datebirth: dob,
		Gender:    req.Gender,
		Country:   req.Country,
	}
}

// toCustomerResponse converts a stored customer into its transport representation.
func toCustomerResponse(customer *models.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:        customer.ID,
		Name:      customer.Name,
		Lastname:  customer.Lastname,
		Datebirth: customer.Datebirth.Format(models.DateLayout),
		Gender:    customer.Gender,
		Country:   customer.Country,
	}
}

func toCustomerResponses(customers []models.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, 0, len(customers))
	for i := range customers {
		responses = append(responses, *toCustomerResponse(&customers[i]))
	}
	return responses
}
