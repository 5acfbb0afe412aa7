// Package client реализует HTTP клиент к REST API сотрудников и подразделений.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/employee-management/internal/dto"
)

// ErrUnavailable возвращается, когда сервер недоступен
var ErrUnavailable = errors.New("backend is unavailable")

// APIError - ответ сервера со статусом вне диапазона 2xx
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.StatusCode)
}

// IsNotFound сообщает, что сервер ответил 404
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Client - клиент REST API. Повторов и кэширования нет: каждый вызов идёт на сервер.
type Client struct {
	http    *http.Client
	baseURL string
	logger  *slog.Logger
}

// New создаёт клиент для сервера по адресу baseURL
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// BaseURL возвращает адрес сервера
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) ListEmployees(ctx context.Context) ([]dto.EmployeeResponse, error) {
	var employees []dto.EmployeeResponse
	if err := c.do(ctx, http.MethodGet, "/employees", nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (c *Client) GetEmployee(ctx context.Context, id int64) (*dto.EmployeeResponse, error) {
	var emp dto.EmployeeResponse
	if err := c.do(ctx, http.MethodGet, "/employees/"+strconv.FormatInt(id, 10), nil, &emp); err != nil {
		return nil, err
	}
	return &emp, nil
}

func (c *Client) CreateEmployee(ctx context.Context, req dto.EmployeeRequest) error {
	return c.do(ctx, http.MethodPost, "/employees", req, nil)
}

func (c *Client) UpdateEmployee(ctx context.Context, id int64, req dto.EmployeeRequest) error {
	return c.do(ctx, http.MethodPut, "/employees/"+strconv.FormatInt(id, 10), req, nil)
}

func (c *Client) DeleteEmployee(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/employees/"+strconv.FormatInt(id, 10), nil, nil)
}

func (c *Client) CountEmployees(ctx context.Context) (int64, error) {
	var count int64
	err := c.do(ctx, http.MethodGet, "/employees/count", nil, &count)
	return count, err
}

func (c *Client) ListDepartments(ctx context.Context) ([]dto.DepartmentResponse, error) {
	var departments []dto.DepartmentResponse
	if err := c.do(ctx, http.MethodGet, "/departments", nil, &departments); err != nil {
		return nil, err
	}
	return departments, nil
}

func (c *Client) GetDepartment(ctx context.Context, id int64) (*dto.DepartmentResponse, error) {
	var dept dto.DepartmentResponse
	if err := c.do(ctx, http.MethodGet, "/departments/"+strconv.FormatInt(id, 10), nil, &dept); err != nil {
		return nil, err
	}
	return &dept, nil
}

func (c *Client) CreateDepartment(ctx context.Context, req dto.DepartmentRequest) error {
	return c.do(ctx, http.MethodPost, "/departments", req, nil)
}

func (c *Client) UpdateDepartment(ctx context.Context, id int64, req dto.DepartmentRequest) error {
	return c.do(ctx, http.MethodPut, "/departments/"+strconv.FormatInt(id, 10), req, nil)
}

func (c *Client) DeleteDepartment(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/departments/"+strconv.FormatInt(id, 10), nil, nil)
}

func (c *Client) CountDepartments(ctx context.Context) (int64, error) {
	var count int64
	err := c.do(ctx, http.MethodGet, "/departments/count", nil, &count)
	return count, err
}

// do выполняет запрос и декодирует JSON ответа в result, если он не nil
func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("sending request", slog.String("method", method), slog.String("url", req.URL.String()))

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(data)}
	}

	if result != nil {
		if err := json.Unmarshal(data, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// errorMessage достаёт текст ошибки: поле error из JSON или тело целиком
func errorMessage(body []byte) string {
	var errResp dto.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		if errResp.Message != "" {
			return errResp.Error + ": " + errResp.Message
		}
		return errResp.Error
	}
	return strings.TrimSpace(string(body))
}
