package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	clientdomain "salestrack/internal/domain/client"
	orderdomain "salestrack/internal/domain/order"
	"salestrack/internal/domain/salesperson"
	visitdomain "salestrack/internal/domain/visit"
	clientuc "salestrack/internal/usecase/client"
	orderuc "salestrack/internal/usecase/order"
	salespersonuc "salestrack/internal/usecase/salesperson"
	visituc "salestrack/internal/usecase/visit"
)

// StatusError is a non-2xx response from the API, carrying the server's
// message so callers can log something actionable.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("remote store returned %d: %s", e.Code, e.Message)
}

// envelope mirrors the API response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client is the HTTP implementation of Store.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", path, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &StatusError{Code: resp.StatusCode, Message: "unparsable response body"}
	}

	if resp.StatusCode >= http.StatusBadRequest || !env.Success {
		return &StatusError{Code: resp.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response from %s: %w", path, err)
		}
	}
	return nil
}

func (c *Client) ListSalespeople(ctx context.Context) ([]salesperson.Salesperson, error) {
	var people []salesperson.Salesperson
	if err := c.do(ctx, http.MethodGet, "/api/salespeople", nil, &people); err != nil {
		return nil, err
	}
	return people, nil
}

func (c *Client) CreateSalesperson(ctx context.Context, req *salespersonuc.CreateSalespersonRequest) (*salesperson.Salesperson, error) {
	var created salesperson.Salesperson
	if err := c.do(ctx, http.MethodPost, "/api/salespeople", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateSalesperson(ctx context.Context, id uint, req *salespersonuc.UpdateSalespersonRequest) (*salesperson.Salesperson, error) {
	var updated salesperson.Salesperson
	if err := c.do(ctx, http.MethodPut, "/api/salespeople/"+formatID(id), req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) UpdateSalespersonLocation(ctx context.Context, id uint, latitude, longitude float64) error {
	body := salespersonuc.UpdateLocationRequest{
		Latitude:  &latitude,
		Longitude: &longitude,
	}
	return c.do(ctx, http.MethodPut, "/api/salespeople/"+formatID(id)+"/location", &body, nil)
}

func (c *Client) DeleteSalesperson(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, "/api/salespeople/"+formatID(id), nil, nil)
}

func (c *Client) ListVisits(ctx context.Context, salespersonID uint) ([]visitdomain.Visit, error) {
	var visits []visitdomain.Visit
	if err := c.do(ctx, http.MethodGet, "/api/visits"+ownerQuery(salespersonID), nil, &visits); err != nil {
		return nil, err
	}
	return visits, nil
}

func (c *Client) CreateVisit(ctx context.Context, req *visituc.CreateVisitRequest) (*visitdomain.Visit, error) {
	var created visitdomain.Visit
	if err := c.do(ctx, http.MethodPost, "/api/visits", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateVisitStatus(ctx context.Context, id uint, status visitdomain.Status) (*visitdomain.Visit, error) {
	body := visituc.UpdateStatusRequest{Status: string(status)}
	var updated visitdomain.Visit
	if err := c.do(ctx, http.MethodPut, "/api/visits/"+formatID(id), &body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteVisit(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, "/api/visits/"+formatID(id), nil, nil)
}

func (c *Client) ListOrders(ctx context.Context, salespersonID uint) ([]orderdomain.Order, error) {
	var orders []orderdomain.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders"+ownerQuery(salespersonID), nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) CreateOrder(ctx context.Context, req *orderuc.CreateOrderRequest) (*orderdomain.Order, error) {
	var created orderdomain.Order
	if err := c.do(ctx, http.MethodPost, "/api/orders", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id uint, status orderdomain.Status) (*orderdomain.Order, error) {
	body := orderuc.UpdateStatusRequest{Status: string(status)}
	var updated orderdomain.Order
	if err := c.do(ctx, http.MethodPut, "/api/orders/"+formatID(id), &body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteOrder(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, "/api/orders/"+formatID(id), nil, nil)
}

func (c *Client) ListClients(ctx context.Context) ([]clientdomain.Client, error) {
	var clients []clientdomain.Client
	if err := c.do(ctx, http.MethodGet, "/api/clients", nil, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

func (c *Client) CreateClient(ctx context.Context, req *clientuc.CreateClientRequest) (*clientdomain.Client, error) {
	var created clientdomain.Client
	if err := c.do(ctx, http.MethodPost, "/api/clients", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) DeleteClient(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, "/api/clients/"+formatID(id), nil, nil)
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func ownerQuery(salespersonID uint) string {
	if salespersonID == 0 {
		return ""
	}
	return "?" + url.Values{"salesperson_id": {formatID(salespersonID)}}.Encode()
}
