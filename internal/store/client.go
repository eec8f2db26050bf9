// Package store provides access to the WooCommerce-compatible store REST API.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mzerara/storedash/internal/logger"
	"github.com/mzerara/storedash/internal/models"
)

// API paths relative to the store base URL.
const (
	ordersEndpoint    = "/wp-json/wc/v3/orders"
	productsEndpoint  = "/wp-json/wc/v3/products"
	customersEndpoint = "/wp-json/wc/v3/customers"
)

const (
	requestTimeout = 30 * time.Second

	// Maximum page size the API allows.
	perPage = 100

	// Safety cap on pagination so a misbehaving server cannot loop us forever.
	maxPages = 50
)

// FetchError describes a failed API request.
type FetchError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("store request %s failed (status %d): %v", e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("store request %s failed: %v", e.Endpoint, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Client is an authenticated store API client. Credentials are injected at
// construction time and attached per request via HTTP basic auth.
type Client struct {
	baseURL        string
	consumerKey    string
	consumerSecret string
	httpClient     *http.Client
}

// NewClient creates a store API client for the given base URL and credentials.
func NewClient(baseURL, consumerKey, consumerSecret string) *Client {
	return &Client{
		baseURL:        baseURL,
		consumerKey:    consumerKey,
		consumerSecret: consumerSecret,
		httpClient:     &http.Client{Timeout: requestTimeout},
	}
}

// FetchOrders retrieves all orders, paginating until a short page.
func (c *Client) FetchOrders(ctx context.Context) ([]models.RawOrder, error) {
	var all []models.RawOrder
	for page := 1; page <= maxPages; page++ {
		var batch []models.RawOrder
		if err := c.getPage(ctx, ordersEndpoint, page, &batch); err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if len(batch) < perPage {
			break
		}
	}
	logger.Debug("fetched orders", "count", len(all))
	return all, nil
}

// FetchProducts retrieves all products.
func (c *Client) FetchProducts(ctx context.Context) ([]models.Product, error) {
	var all []models.Product
	for page := 1; page <= maxPages; page++ {
		var batch []models.Product
		if err := c.getPage(ctx, productsEndpoint, page, &batch); err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if len(batch) < perPage {
			break
		}
	}
	logger.Debug("fetched products", "count", len(all))
	return all, nil
}

// FetchCustomers retrieves all registered customers.
func (c *Client) FetchCustomers(ctx context.Context) ([]models.Customer, error) {
	var all []models.Customer
	for page := 1; page <= maxPages; page++ {
		var batch []models.Customer
		if err := c.getPage(ctx, customersEndpoint, page, &batch); err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if len(batch) < perPage {
			break
		}
	}
	logger.Debug("fetched customers", "count", len(all))
	return all, nil
}

// getPage performs a single GET request and decodes the JSON response into out.
func (c *Client) getPage(ctx context.Context, endpoint string, page int, out any) error {
	query := url.Values{}
	query.Set("per_page", strconv.Itoa(perPage))
	query.Set("page", strconv.Itoa(page))

	reqURL := c.baseURL + endpoint + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return &FetchError{Endpoint: endpoint, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.SetBasicAuth(c.consumerKey, c.consumerSecret)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &FetchError{Endpoint: endpoint, Err: err}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Error("failed to close response body", "error", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &FetchError{Endpoint: endpoint, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return &FetchError{Endpoint: endpoint, StatusCode: resp.StatusCode, Err: fmt.Errorf("unauthorized: check consumer key and secret")}
	}
	if resp.StatusCode != http.StatusOK {
		return &FetchError{Endpoint: endpoint, StatusCode: resp.StatusCode, Err: fmt.Errorf("unexpected response: %s", string(body))}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &FetchError{Endpoint: endpoint, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to parse response: %w", err)}
	}
	return nil
}
