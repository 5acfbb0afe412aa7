package admin_test

import (
	"context"
	"sync"

	"github.com/employee-management/internal/client"
	"github.com/employee-management/internal/dto"
)

// fakeBackend - REST API в памяти. err, если задан, возвращается из всех вызовов.
type fakeBackend struct {
	mu          sync.Mutex
	employees   []dto.EmployeeResponse
	departments []dto.DepartmentResponse
	nextID      int64

	err      error
	countErr error
	calls    int
}

func newFakeBackend() *fakeBackend {
	eng := dto.DepartmentResponse{DepartmentID: 1, ShortName: "ENG", DepartmentName: "Engineering"}
	sales := dto.DepartmentResponse{DepartmentID: 2, ShortName: "SAL", DepartmentName: "Sales"}
	return &fakeBackend{
		departments: []dto.DepartmentResponse{eng, sales},
		employees: []dto.EmployeeResponse{
			{EmployeeID: 1, FirstName: "Ada", LastName: "Lovelace", Department: &eng},
			{EmployeeID: 2, FirstName: "Alan", LastName: "Turing", Department: &sales},
			{EmployeeID: 3, FirstName: "Grace", LastName: "Hopper"},
		},
		nextID: 10,
	}
}

func (f *fakeBackend) call() error {
	f.calls++
	return f.err
}

func (f *fakeBackend) department(id *int64) *dto.DepartmentResponse {
	if id == nil {
		return nil
	}
	for _, d := range f.departments {
		if d.DepartmentID == *id {
			d := d
			return &d
		}
	}
	return nil
}

func (f *fakeBackend) ListEmployees(ctx context.Context) ([]dto.EmployeeResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.call(); err != nil {
		return nil, err
	}
	return append([]dto.EmployeeResponse(nil), f.employees...), nil
}

func (f *fakeBackend) GetEmployee(ctx context.Context, id int64) (*dto.EmployeeResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.call(); err != nil {
		return nil, err
	}
	for _, e := range f.employees {
		if e.EmployeeID == id {
			return &e, nil
		}
	}
	return nil, &client.APIError{StatusCode: 404, Message: "employee not found"}
}

func (f *fakeBackend) CreateEmployee(ctx context.Context, req dto.EmployeeRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.call(); err != nil {
		return err
	}
	f.employees = append(f.employees, dto.EmployeeResponse{
		EmployeeID: f.nextID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Department: f.department(req.DepartmentID),
	})
	f.nextID++
	return nil
}

func (f *fakeBackend) UpdateEmployee(ctx context.Context, id int64, req dto.EmployeeRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.call(); err != nil {
		return err
	}
	for i, e := range f.employees {
		if e.EmployeeID == id {
			f.employees[i] = dto.EmployeeResponse{
				EmployeeID: id,
				FirstName:  req.FirstName,
				LastName:   req.LastName,
				Department: f.department(req.DepartmentID),
			}
			return nil
		}
	}
	return &client.APIError{StatusCode: 404, Message: "employee not found"}
}

func (f *fakeBackend) DeleteEmployee(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.call(); err != nil {
		return err
	}
	for i, e := range f.employees {
		if e.EmployeeID == id {
			f.employees = append(f.employees[:i], f.employees[i+1:]...)
			return nil
		}
	}
	return &client.APIError{StatusCode: 404, Message: "employee not found"}
}

func (f *fakeBackend) CountEmployees(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.countErr != nil {
		return 0, f.countErr
	}
	return int64(len(f.employees)), f.call()
}

func (f *fakeBackend) ListDepartments(ctx context.Context) ([]dto.DepartmentResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.call(); err != nil {
		return nil, err
	}
	return append([]dto.DepartmentResponse(nil), f.departments...), nil
}

func (f *fakeBackend) GetDepartment(ctx context.Context, id int64) (*dto.DepartmentResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.call(); err != nil {
		return nil, err
	}
	if d := f.department(&id); d != nil {
		return d, nil
	}
	return nil, &client.APIError{StatusCode: 404, Message: "department not found"}
}

func (f *fakeBackend) CreateDepartment(ctx context.Context, req dto.DepartmentRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.call(); err != nil {
		return err
	}
	f.departments = append(f.departments, dto.DepartmentResponse{
		DepartmentID:   f.nextID,
		ShortName:      req.ShortName,
		DepartmentName: req.DepartmentName,
	})
	f.nextID++
	return nil
}

func (f *fakeBackend) UpdateDepartment(ctx context.Context, id int64, req dto.DepartmentRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.call(); err != nil {
		return err
	}
	for i, d := range f.departments {
		if d.DepartmentID == id {
			f.departments[i] = dto.DepartmentResponse{DepartmentID: id, ShortName: req.ShortName, DepartmentName: req.DepartmentName}
			return nil
		}
	}
	return &client.APIError{StatusCode: 404, Message: "department not found"}
}

func (f *fakeBackend) DeleteDepartment(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.call(); err != nil {
		return err
	}
	for i, d := range f.departments {
		if d.DepartmentID == id {
			f.departments = append(f.departments[:i], f.departments[i+1:]...)
			for j, e := range f.employees {
				if e.Department != nil && e.Department.DepartmentID == id {
					f.employees[j].Department = nil
				}
			}
			return nil
		}
	}
	return &client.APIError{StatusCode: 404, Message: "department not found"}
}

func (f *fakeBackend) CountDepartments(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.call(); err != nil {
		return 0, err
	}
	return int64(len(f.departments)), nil
}
