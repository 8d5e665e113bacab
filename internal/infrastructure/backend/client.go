// Package backend is the REST client for the PDV backend API. A Client
// carries its bearer token explicitly instead of relying on any global
// transport state: session start constructs an authenticated client and
// threads it into every call.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"pdv-client/internal/domain/entity"
	"pdv-client/pkg/apperror"
	"pdv-client/pkg/pagination"
)

// Client talks to the backend REST API under a single base URL.
type Client struct {
	baseURL string
	httpc   *http.Client
	timeout time.Duration
}

// New creates an unauthenticated client (login only).
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		timeout: timeout,
	}
}

// WithToken returns a client whose transport injects the bearer token on
// every request.
func (c *Client) WithToken(token string) *Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpc := oauth2.NewClient(context.Background(), src)
	httpc.Timeout = c.timeout

	return &Client{
		baseURL: c.baseURL,
		httpc:   httpc,
		timeout: c.timeout,
	}
}

// errorBody is the backend's error envelope: {"error": "..."}.
type errorBody struct {
	Error string `json:"error"`
}

// do runs one request against the backend, mapping every failure mode to a
// transport AppError so screens can surface it without crashing.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperror.NewTransportError(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return apperror.NewTransportError(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return apperror.NewTransportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperror.NewTransportError(err)
	}

	if resp.StatusCode >= 300 {
		var eb errorBody
		_ = json.Unmarshal(raw, &eb)
		return apperror.FromStatus(resp.StatusCode, eb.Error)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return apperror.NewTransportError(fmt.Errorf("malformed response: %w", err))
		}
	}
	return nil
}

// --- Auth ---

// LoginResult is the POST /auth/login response.
type LoginResult struct {
	Token string      `json:"token"`
	User  entity.User `json:"user"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var res LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Profile returns the authenticated user.
func (c *Client) Profile(ctx context.Context) (*entity.User, error) {
	var u entity.User
	if err := c.do(ctx, http.MethodGet, "/auth/profile", nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// --- Products ---

// ProductFilter narrows the product listing.
type ProductFilter struct {
	Search     string
	Active     string // "true", "false" or empty
	CategoryID string
	LowStock   bool
	Pagination pagination.Params
}

// ListProducts returns products matching the filter.
func (c *Client) ListProducts(ctx context.Context, filter ProductFilter) ([]entity.Product, error) {
	q := url.Values{}
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}
	if filter.Active != "" {
		q.Set("active", filter.Active)
	}
	if filter.CategoryID != "" {
		q.Set("category_id", filter.CategoryID)
	}
	if filter.LowStock {
		q.Set("low_stock", "true")
	}
	filter.Pagination.Validate()
	filter.Pagination.Apply(q)

	var products []entity.Product
	if err := c.do(ctx, http.MethodGet, "/products/", q, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches one product by ID.
func (c *Client) GetProduct(ctx context.Context, id uint) (*entity.Product, error) {
	var p entity.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ProductByBarcode resolves a scanned code to a product.
func (c *Client) ProductByBarcode(ctx context.Context, code string) (*entity.Product, error) {
	var p entity.Product
	path := "/products/barcode/" + url.PathEscape(code)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProduct creates a product.
func (c *Client) CreateProduct(ctx context.Context, input *entity.ProductInput) (*entity.Product, error) {
	var p entity.Product
	if err := c.do(ctx, http.MethodPost, "/products/", nil, input, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProduct updates a product.
func (c *Client) UpdateProduct(ctx context.Context, id uint, input *entity.ProductInput) (*entity.Product, error) {
	var p entity.Product
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), nil, input, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil, nil)
}

// UpdateStock adjusts a product's stock (low-stock remediation).
func (c *Client) UpdateStock(ctx context.Context, id uint, adj *entity.StockAdjustment) (*entity.Product, error) {
	var p entity.Product
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d/stock", id), nil, adj, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// --- Categories ---

// ListCategories returns all categories.
func (c *Client) ListCategories(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	if err := c.do(ctx, http.MethodGet, "/categories/", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory creates a category.
func (c *Client) CreateCategory(ctx context.Context, input *entity.CategoryInput) (*entity.Category, error) {
	var cat entity.Category
	if err := c.do(ctx, http.MethodPost, "/categories/", nil, input, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// UpdateCategory updates a category.
func (c *Client) UpdateCategory(ctx context.Context, id uint, input *entity.CategoryInput) (*entity.Category, error) {
	var cat entity.Category
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/categories/%d", id), nil, input, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// DeleteCategory removes a category.
func (c *Client) DeleteCategory(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/categories/%d", id), nil, nil, nil)
}

// --- Users ---

// ListUsers returns all users.
func (c *Client) ListUsers(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := c.do(ctx, http.MethodGet, "/users/", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser creates a user.
func (c *Client) CreateUser(ctx context.Context, input *entity.UserInput) (*entity.User, error) {
	var u entity.User
	if err := c.do(ctx, http.MethodPost, "/users/", nil, input, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateUser updates a user.
func (c *Client) UpdateUser(ctx context.Context, id uint, input *entity.UserInput) (*entity.User, error) {
	var u entity.User
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), nil, input, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// DeleteUser removes a user.
func (c *Client) DeleteUser(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil, nil)
}

// --- Sales ---

// CreateSale finalizes a sale on the backend.
func (c *Client) CreateSale(ctx context.Context, req *entity.SaleRequest) (*entity.Sale, error) {
	var sale entity.Sale
	if err := c.do(ctx, http.MethodPost, "/sales/", nil, req, &sale); err != nil {
		return nil, err
	}
	return &sale, nil
}

// ListSales returns sales matching the filter.
func (c *Client) ListSales(ctx context.Context, filter entity.SaleFilter) ([]entity.Sale, error) {
	q := url.Values{}
	if filter.UserID != "" {
		q.Set("user_id", filter.UserID)
	}
	if filter.Status != "" {
		q.Set("status", filter.Status)
	}
	if filter.PaymentType != "" {
		q.Set("payment_type", filter.PaymentType)
	}
	if filter.StartDate != "" {
		q.Set("start_date", filter.StartDate)
	}
	if filter.EndDate != "" {
		q.Set("end_date", filter.EndDate)
	}
	p := pagination.Params{Page: filter.Page, Limit: filter.Limit}
	p.Validate()
	p.Apply(q)

	var sales []entity.Sale
	if err := c.do(ctx, http.MethodGet, "/sales/", q, nil, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

// GetSale fetches one sale by ID.
func (c *Client) GetSale(ctx context.Context, id uint) (*entity.Sale, error) {
	var sale entity.Sale
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/sales/%d", id), nil, nil, &sale); err != nil {
		return nil, err
	}
	return &sale, nil
}

// --- Dashboard ---

// DashboardStats returns the aggregate dashboard metrics.
func (c *Client) DashboardStats(ctx context.Context) (*entity.DashboardStats, error) {
	var stats entity.DashboardStats
	if err := c.do(ctx, http.MethodGet, "/dashboard/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// LowStockProducts returns the products at or below their minimum stock.
func (c *Client) LowStockProducts(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	if err := c.do(ctx, http.MethodGet, "/dashboard/low-stock", nil, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// TopProducts returns the best-selling products for the period.
func (c *Client) TopProducts(ctx context.Context, period string, limit int) ([]entity.TopProduct, error) {
	q := url.Values{}
	if period != "" {
		q.Set("period", period)
	}
	if limit > 0 {
		q.Set("limit", fmt.Sprintf("%d", limit))
	}

	var top []entity.TopProduct
	if err := c.do(ctx, http.MethodGet, "/dashboard/top-products", q, nil, &top); err != nil {
		return nil, err
	}
	return top, nil
}
