package client_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/employee-management/internal/client"
	"github.com/employee-management/internal/config"
	"github.com/employee-management/internal/database"
	"github.com/employee-management/internal/dto"
	"github.com/employee-management/internal/handler"
	"github.com/employee-management/internal/repository"
	"github.com/employee-management/internal/service"
)

// newBackend поднимает настоящий API поверх SQLite в памяти
func newBackend(t *testing.T) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := config.DatabaseConfig{Driver: config.DriverSQLite, Path: ":memory:"}
	db, err := database.Open(cfg)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := database.Migrate(db, cfg.Driver); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	deptRepo := repository.NewDepartmentRepository(db)
	empRepo := repository.NewEmployeeRepository(db)

	router := handler.NewRouter(
		handler.NewEmployeeHandler(service.NewEmployeeService(empRepo, deptRepo), logger),
		handler.NewDepartmentHandler(service.NewDepartmentService(deptRepo), logger),
		"",
		logger,
	)

	srv := httptest.NewServer(router.Setup())
	t.Cleanup(func() {
		srv.Close()
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return srv
}

func newClient(url string) *client.Client {
	return client.New(url, 5*time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_DepartmentLifecycle(t *testing.T) {
	ctx := context.Background()
	c := newClient(newBackend(t).URL)

	if err := c.CreateDepartment(ctx, dto.DepartmentRequest{DepartmentName: "Engineering", ShortName: "ENG"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	departments, err := c.ListDepartments(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(departments) != 1 || departments[0].ShortName != "ENG" {
		t.Fatalf("unexpected departments %+v", departments)
	}
	id := departments[0].DepartmentID

	if err := c.UpdateDepartment(ctx, id, dto.DepartmentRequest{DepartmentName: "R&D", ShortName: "RND"}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	dept, err := c.GetDepartment(ctx, id)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if dept.DepartmentName != "R&D" {
		t.Errorf("expected updated name, got %q", dept.DepartmentName)
	}

	count, err := c.CountDepartments(ctx)
	if err != nil || count != 1 {
		t.Errorf("expected count 1, got %d (%v)", count, err)
	}

	if err := c.DeleteDepartment(ctx, id); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := c.GetDepartment(ctx, id); !client.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestClient_EmployeeLifecycle(t *testing.T) {
	ctx := context.Background()
	c := newClient(newBackend(t).URL)

	if err := c.CreateDepartment(ctx, dto.DepartmentRequest{DepartmentName: "Sales", ShortName: "SAL"}); err != nil {
		t.Fatalf("create department failed: %v", err)
	}
	deptID := int64(1)

	if err := c.CreateEmployee(ctx, dto.EmployeeRequest{FirstName: "Ada", LastName: "Lovelace", DepartmentID: &deptID}); err != nil {
		t.Fatalf("create employee failed: %v", err)
	}
	if err := c.CreateEmployee(ctx, dto.EmployeeRequest{FirstName: "Alan", LastName: "Turing"}); err != nil {
		t.Fatalf("create employee failed: %v", err)
	}

	employees, err := c.ListEmployees(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(employees) != 2 {
		t.Fatalf("expected 2 employees, got %d", len(employees))
	}
	if employees[0].Department == nil || employees[0].Department.ShortName != "SAL" {
		t.Errorf("expected embedded department, got %+v", employees[0].Department)
	}
	if employees[1].Department != nil {
		t.Errorf("expected no department, got %+v", employees[1].Department)
	}

	if err := c.UpdateEmployee(ctx, employees[1].EmployeeID, dto.EmployeeRequest{FirstName: "Alan", LastName: "Turing", DepartmentID: &deptID}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	emp, err := c.GetEmployee(ctx, employees[1].EmployeeID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if emp.Department == nil || emp.Department.DepartmentID != deptID {
		t.Errorf("expected department %d, got %+v", deptID, emp.Department)
	}

	if err := c.DeleteEmployee(ctx, emp.EmployeeID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	count, err := c.CountEmployees(ctx)
	if err != nil || count != 1 {
		t.Errorf("expected count 1, got %d (%v)", count, err)
	}
}

func TestClient_APIErrorCarriesMessage(t *testing.T) {
	ctx := context.Background()
	c := newClient(newBackend(t).URL)

	err := c.CreateDepartment(ctx, dto.DepartmentRequest{DepartmentName: "Engineering"})

	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", apiErr.StatusCode)
	}
	if apiErr.Message == "" {
		t.Error("expected error message from server")
	}
}

func TestClient_PlainTextError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "department name is taken", http.StatusConflict)
	}))
	defer srv.Close()

	err := newClient(srv.URL).CreateDepartment(context.Background(), dto.DepartmentRequest{})

	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Message != "department name is taken" {
		t.Errorf("unexpected message %q", apiErr.Message)
	}
}

func TestClient_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newClient(url).ListEmployees(context.Background())
	if !errors.Is(err, client.ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}
