package employee

import (
	"context"
	"testing"
	"time"

	"github.com/lumina-hotels/hris-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== FAKES =====

type fakeEmployeeRepo struct {
	employees []employee.Employee
	listErr   error
}

func (f *fakeEmployeeRepo) GetIDs(ctx context.Context) (map[int64]struct{}, error) {
	ids := make(map[int64]struct{}, len(f.employees))
	for _, e := range f.employees {
		ids[e.EmpID] = struct{}{}
	}
	return ids, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, empID int64) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.EmpID == empID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.employees, nil
}

// ===== TESTS =====

func TestList_MapsEmployeesToResponses(t *testing.T) {
	rate := decimal.NewFromInt(100)
	position := "Front Desk"
	repo := &fakeEmployeeRepo{employees: []employee.Employee{
		{
			EmpID:      1001,
			FirstName:  "Maria",
			LastName:   "Santos",
			Position:   &position,
			HourlyRate: &rate,
			HireDate:   time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			EmpID:     1002,
			FirstName: "Jose",
			LastName:  "Reyes",
			HireDate:  time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC),
		},
	}}
	svc := NewEmployeeService(repo)

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, int64(1001), result[0].EmpID)
	require.NotNil(t, result[0].HourlyRate)
	assert.Equal(t, "100.00", *result[0].HourlyRate)
	assert.Equal(t, "2023-03-15", result[0].HireDate)
	assert.Nil(t, result[1].HourlyRate)
}

func TestGetByID_Found(t *testing.T) {
	repo := &fakeEmployeeRepo{employees: []employee.Employee{
		{EmpID: 1001, FirstName: "Maria", LastName: "Santos"},
	}}
	svc := NewEmployeeService(repo)

	result, err := svc.GetByID(context.Background(), 1001)

	require.NoError(t, err)
	assert.Equal(t, "Maria", result.FirstName)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewEmployeeService(&fakeEmployeeRepo{})

	_, err := svc.GetByID(context.Background(), 9999)

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
