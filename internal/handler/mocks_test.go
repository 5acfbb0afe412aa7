package handler_test

import (
	"context"
	"sort"

	"github.com/employee-management/internal/domain"
)

type mockDepartmentRepo struct {
	departments map[int64]*domain.Department
	empRepo     *mockEmployeeRepo
	nextID      int64
}

func newMockDepartmentRepo() *mockDepartmentRepo {
	return &mockDepartmentRepo{
		departments: make(map[int64]*domain.Department),
		nextID:      1,
	}
}

func (m *mockDepartmentRepo) List(ctx context.Context) ([]domain.Department, error) {
	result := []domain.Department{}
	for _, dept := range m.departments {
		result = append(result, *dept)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockDepartmentRepo) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	if dept, ok := m.departments[id]; ok {
		cp := *dept
		return &cp, nil
	}
	return nil, domain.ErrDepartmentNotFound
}

func (m *mockDepartmentRepo) Create(ctx context.Context, dept *domain.Department) error {
	dept.ID = m.nextID
	m.nextID++
	m.departments[dept.ID] = dept
	return nil
}

func (m *mockDepartmentRepo) Update(ctx context.Context, dept *domain.Department) error {
	m.departments[dept.ID] = dept
	return nil
}

func (m *mockDepartmentRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.departments[id]; !ok {
		return domain.ErrDepartmentNotFound
	}
	if m.empRepo != nil {
		for _, emp := range m.empRepo.employees {
			if emp.DeptID != nil && *emp.DeptID == id {
				emp.SetDepartment(nil)
			}
		}
	}
	delete(m.departments, id)
	return nil
}

func (m *mockDepartmentRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.departments)), nil
}

type mockEmployeeRepo struct {
	employees map[int64]*domain.Employee
	deptRepo  *mockDepartmentRepo
	nextID    int64
}

func newMockEmployeeRepo(deptRepo *mockDepartmentRepo) *mockEmployeeRepo {
	return &mockEmployeeRepo{
		employees: make(map[int64]*domain.Employee),
		deptRepo:  deptRepo,
		nextID:    1,
	}
}

// withDepartment возвращает копию сотрудника с подгруженным подразделением
func (m *mockEmployeeRepo) withDepartment(emp *domain.Employee) domain.Employee {
	cp := *emp
	cp.Department = nil
	if cp.DeptID != nil {
		if dept, ok := m.deptRepo.departments[*cp.DeptID]; ok {
			d := *dept
			cp.Department = &d
		}
	}
	return cp
}

func (m *mockEmployeeRepo) List(ctx context.Context) ([]domain.Employee, error) {
	result := []domain.Employee{}
	for _, emp := range m.employees {
		result = append(result, m.withDepartment(emp))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockEmployeeRepo) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	if emp, ok := m.employees[id]; ok {
		cp := m.withDepartment(emp)
		return &cp, nil
	}
	return nil, domain.ErrEmployeeNotFound
}

func (m *mockEmployeeRepo) Create(ctx context.Context, emp *domain.Employee) error {
	emp.ID = m.nextID
	m.nextID++
	m.employees[emp.ID] = emp
	return nil
}

func (m *mockEmployeeRepo) Update(ctx context.Context, emp *domain.Employee) error {
	m.employees[emp.ID] = emp
	return nil
}

func (m *mockEmployeeRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := m.employees[id]; !ok {
		return domain.ErrEmployeeNotFound
	}
	delete(m.employees, id)
	return nil
}

func (m *mockEmployeeRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.employees)), nil
}
