package services

import (
	"sort"
	"testing"
	"time"

	"banking_customer_backend/internal/models"
	"banking_customer_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCustomerRepo is an in-memory CustomerRepository.
type fakeCustomerRepo struct {
	records     map[int64]models.Customer
	nextID      int64
	updateCalls int
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{records: map[int64]models.Customer{}, nextID: 1}
}

func (f *fakeCustomerRepo) CreateCustomer(_ repositories.SQLExecutor, customer *models.Customer) (int64, error) {
	customer.ID = f.nextID
	f.nextID++
	f.records[customer.ID] = *customer
	return customer.ID, nil
}

func (f *fakeCustomerRepo) GetCustomerByID(id int64) (*models.Customer, error) {
	record, ok := f.records[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &record, nil
}

func (f *fakeCustomerRepo) GetCustomers() ([]models.Customer, error) {
	ids := make([]int64, 0, len(f.records))
	for id := range f.records {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	customers := make([]models.Customer, 0, len(ids))
	for _, id := range ids {
		customers = append(customers, f.records[id])
	}
	return customers, nil
}

func (f *fakeCustomerRepo) UpdateCustomer(_ repositories.SQLExecutor, customer *models.Customer) error {
	f.updateCalls++
	if _, ok := f.records[customer.ID]; !ok {
		return repositories.ErrNotFound
	}
	f.records[customer.ID] = *customer
	return nil
}

func (f *fakeCustomerRepo) DeleteCustomer(_ repositories.SQLExecutor, id int64) error {
	if _, ok := f.records[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.records, id)
	return nil
}

func strPtr(s string) *string { return &s }

func newServiceWithCustomer(t *testing.T) (CustomerService, *fakeCustomerRepo, int64) {
	t.Helper()
	repo := newFakeCustomerRepo()
	service := NewCustomerService(repo, nil)

	created, err := service.CreateCustomer(CreateCustomerRequest{
		Name:      "Juan",
		Lastname:  "Perez",
		Datebirth: "1989-10-08",
		Gender:    "M",
		Country:   "NI",
	})
	require.NoError(t, err)
	return service, repo, created.ID
}

func TestCreateCustomer(t *testing.T) {
	repo := newFakeCustomerRepo()
	service := NewCustomerService(repo, nil)

	created, err := service.CreateCustomer(CreateCustomerRequest{
		Name:      "Juan",
		Lastname:  "Perez",
		Datebirth: "1989-10-08",
		Gender:    "M",
		Country:   "NI",
	})

	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Juan", created.Name)
	assert.Equal(t, "Perez", created.Lastname)
	assert.Equal(t, "1989-10-08", created.Datebirth)
	assert.Equal(t, "M", created.Gender)
	assert.Equal(t, "NI", created.Country)
}

func TestCreateCustomer_InvalidDate(t *testing.T) {
	repo := newFakeCustomerRepo()
	service := NewCustomerService(repo, nil)

	_, err := service.CreateCustomer(CreateCustomerRequest{
		Name:      "Juan",
		Lastname:  "Perez",
		Datebirth: "08/10/1989",
		Gender:    "M",
		Country:   "NI",
	})

	assert.ErrorIs(t, err, ErrDateFormat)
}

func TestCreateCustomer_FutureDate(t *testing.T) {
	repo := newFakeCustomerRepo()
	service := NewCustomerService(repo, nil)

	future := time.Now().AddDate(1, 0, 0).Format(models.DateLayout)
	_, err := service.CreateCustomer(CreateCustomerRequest{
		Name:      "Juan",
		Lastname:  "Perez",
		Datebirth: future,
		Gender:    "M",
		Country:   "NI",
	})

	assert.ErrorIs(t, err, ErrCustomerValidation)
}

func TestGetCustomerByID_NotFound(t *testing.T) {
	service := NewCustomerService(newFakeCustomerRepo(), nil)

	_, err := service.GetCustomerByID(999)

	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestGetCustomers_Idempotent(t *testing.T) {
	service, _, _ := newServiceWithCustomer(t)

	first, err := service.GetCustomers()
	require.NoError(t, err)
	second, err := service.GetCustomers()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 1)
}

func TestUpdateCustomer_MergesOnlyProvidedFields(t *testing.T) {
	service, _, id := newServiceWithCustomer(t)

	updated, err := service.UpdateCustomer(id, UpdateCustomerRequest{
		Name:      strPtr("Carlos"),
		Lastname:  nil,
		Datebirth: strPtr("2000-05-05"),
		Gender:    strPtr("F"),
		Country:   strPtr("PE"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Carlos", updated.Name)
	assert.Equal(t, "Perez", updated.Lastname) // preserved
	assert.Equal(t, "2000-05-05", updated.Datebirth)
	assert.Equal(t, "F", updated.Gender)
	assert.Equal(t, "PE", updated.Country)
}

func TestUpdateCustomer_BlankStringsLeaveFieldsUnchanged(t *testing.T) {
	service, _, id := newServiceWithCustomer(t)

	updated, err := service.UpdateCustomer(id, UpdateCustomerRequest{
		Name:     strPtr(""),
		Lastname: strPtr("   "),
		Gender:   strPtr("\t"),
		Country:  strPtr(""),
	})

	require.NoError(t, err)
	assert.Equal(t, "Juan", updated.Name)
	assert.Equal(t, "Perez", updated.Lastname)
	assert.Equal(t, "M", updated.Gender)
	assert.Equal(t, "NI", updated.Country)
}

func TestUpdateCustomer_AllNilIsWriteThroughNoOp(t *testing.T) {
	service, repo, id := newServiceWithCustomer(t)

	updated, err := service.UpdateCustomer(id, UpdateCustomerRequest{})

	require.NoError(t, err)
	assert.Equal(t, "Juan", updated.Name)
	assert.Equal(t, "Perez", updated.Lastname)
	assert.Equal(t, "1989-10-08", updated.Datebirth)
	// The unchanged record is still written through.
	assert.Equal(t, 1, repo.updateCalls)
}

func TestUpdateCustomer_InvalidDate(t *testing.T) {
	service, _, id := newServiceWithCustomer(t)

	_, err := service.UpdateCustomer(id, UpdateCustomerRequest{
		Datebirth: strPtr("not-a-date"),
	})

	assert.ErrorIs(t, err, ErrDateFormat)
}

func TestUpdateCustomer_NotFound(t *testing.T) {
	service := NewCustomerService(newFakeCustomerRepo(), nil)

	_, err := service.UpdateCustomer(999, UpdateCustomerRequest{Name: strPtr("Carlos")})

	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestDeleteCustomer_OneShot(t *testing.T) {
	service, _, id := newServiceWithCustomer(t)

	require.NoError(t, service.DeleteCustomer(id))

	err := service.DeleteCustomer(id)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}
