package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mzerara/storedash/internal/models"
)

// ReadOrdersFile loads raw orders from a local JSON file. The file holds the
// same array-of-orders payload the API returns, which makes it useful for
// demos and for working against an exported snapshot without credentials.
func ReadOrdersFile(path string) ([]models.RawOrder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read orders file: %w", err)
	}

	var orders []models.RawOrder
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, fmt.Errorf("failed to parse orders file %s: %w", path, err)
	}
	return orders, nil
}
