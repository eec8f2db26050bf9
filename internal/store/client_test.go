package store

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/mzerara/storedash/internal/models"
)

func TestFetchOrders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != ordersEndpoint {
			t.Errorf("path = %q, want %q", r.URL.Path, ordersEndpoint)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "ck_test" || pass != "cs_test" {
			t.Errorf("basic auth = %q/%q ok=%v", user, pass, ok)
		}
		if got := r.URL.Query().Get("per_page"); got != strconv.Itoa(perPage) {
			t.Errorf("per_page = %q", got)
		}

		orders := []models.RawOrder{
			{ID: 1, Status: "completed", Total: "10.00", DateCreated: "2024-01-01T10:00:00"},
			{ID: 2, Status: "pending", Total: "5.50", DateCreated: "2024-01-02T11:00:00"},
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(orders); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, "ck_test", "cs_test")
	orders, err := client.FetchOrders(context.Background())
	if err != nil {
		t.Fatalf("FetchOrders() error = %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("len(orders) = %d, want 2", len(orders))
	}
	if orders[0].ID != 1 || orders[0].Total != "10.00" {
		t.Errorf("orders[0] = %+v", orders[0])
	}
}

func TestFetchOrdersPagination(t *testing.T) {
	pagesServed := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		pagesServed++

		var orders []models.RawOrder
		if page == 1 {
			// Full page forces a second request.
			for i := 0; i < perPage; i++ {
				orders = append(orders, models.RawOrder{ID: int64(i + 1)})
			}
		} else {
			orders = []models.RawOrder{{ID: int64(perPage + 1)}}
		}
		_ = json.NewEncoder(w).Encode(orders)
	}))
	defer server.Close()

	client := NewClient(server.URL, "ck", "cs")
	orders, err := client.FetchOrders(context.Background())
	if err != nil {
		t.Fatalf("FetchOrders() error = %v", err)
	}
	if len(orders) != perPage+1 {
		t.Errorf("len(orders) = %d, want %d", len(orders), perPage+1)
	}
	if pagesServed != 2 {
		t.Errorf("pagesServed = %d, want 2", pagesServed)
	}
}

func TestFetchOrdersUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL, "ck_bad", "cs_bad")
	_, err := client.FetchOrders(context.Background())
	if err == nil {
		t.Fatal("FetchOrders() expected error")
	}

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("error type = %T, want *FetchError", err)
	}
	if fetchErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("StatusCode = %d, want 401", fetchErr.StatusCode)
	}
}

func TestFetchProductsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "ck", "cs")
	if _, err := client.FetchProducts(context.Background()); err == nil {
		t.Fatal("FetchProducts() expected error")
	}
}

func TestFetchCustomers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		customers := []models.Customer{
			{ID: 7, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"},
		}
		_ = json.NewEncoder(w).Encode(customers)
	}))
	defer server.Close()

	client := NewClient(server.URL, "ck", "cs")
	customers, err := client.FetchCustomers(context.Background())
	if err != nil {
		t.Fatalf("FetchCustomers() error = %v", err)
	}
	if len(customers) != 1 || customers[0].Email != "ada@example.com" {
		t.Errorf("customers = %+v", customers)
	}
}

func TestReadOrdersFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	payload := `[{"id": 9, "status": "completed", "total": "42.00", "date_created": "2024-03-01T09:00:00"}]`
	if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	orders, err := ReadOrdersFile(path)
	if err != nil {
		t.Fatalf("ReadOrdersFile() error = %v", err)
	}
	if len(orders) != 1 || orders[0].ID != 9 || orders[0].Total != "42.00" {
		t.Errorf("orders = %+v", orders)
	}
}

func TestReadOrdersFileMissing(t *testing.T) {
	if _, err := ReadOrdersFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("ReadOrdersFile() expected error for missing file")
	}
}
