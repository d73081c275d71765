// internal/service/import_service.go
package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/carpetland/crm-backend/internal/model"
	"github.com/carpetland/crm-backend/internal/repository"
	log "github.com/sirupsen/logrus"
)

// Tradify exports carry no markup or stock columns, so every imported
// product starts from the same defaults.
const (
	importDefaultMarkup  = 20
	importDefaultStock   = 0
	importDefaultMinimum = 0
)

type ImportService struct {
	CustomerRepo repository.CustomerRepositoryInterface
	ProductRepo  repository.ProductRepositoryInterface
}

// ImportResult reports how many records were submitted per batch.
type ImportResult struct {
	Customers int `json:"customers"`
	Products  int `json:"products"`
}

// ParseImportFile turns raw CSV text into customer and product batches.
//
// The header row decides what gets extracted: customers need both a
// "Customer Name" and an "Email" column, products need "Product Name" and
// "Cost Price". Both can be active at once and share rows. Blank lines and
// rows whose required values are empty after trimming are skipped, never
// errors. Duplicate natural keys within the file collapse to the last-seen
// row's values.
func ParseImportFile(content string) ([]model.Customer, []model.Product) {
	lines := strings.Split(content, "\n")

	headers := strings.Split(lines[0], ",")
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	custNameIdx := indexOf(headers, "Customer Name")
	emailIdx := indexOf(headers, "Email")
	phoneIdx := indexOf(headers, "Phone")
	addressIdx := indexOf(headers, "Address")

	prodNameIdx := indexOf(headers, "Product Name")
	costIdx := indexOf(headers, "Cost Price")
	categoryIdx := indexOf(headers, "Category")

	extractCustomers := custNameIdx >= 0 && emailIdx >= 0
	extractProducts := prodNameIdx >= 0 && costIdx >= 0

	customers := []model.Customer{}
	products := []model.Product{}
	customerByEmail := map[string]int{}
	productByName := map[string]int{}

	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		values := strings.Split(line, ",")

		if extractCustomers {
			name := field(values, custNameIdx)
			email := field(values, emailIdx)
			if name != "" && email != "" {
				c := model.Customer{
					Name:    name,
					Email:   email,
					Phone:   field(values, phoneIdx),
					Address: field(values, addressIdx),
				}
				if i, seen := customerByEmail[email]; seen {
					customers[i] = c // last row wins
				} else {
					customerByEmail[email] = len(customers)
					customers = append(customers, c)
				}
			}
		}

		if extractProducts {
			name := field(values, prodNameIdx)
			cost := field(values, costIdx)
			if name != "" && cost != "" {
				p := model.Product{
					Name:          name,
					CostPrice:     parseCost(cost),
					Category:      field(values, categoryIdx),
					DefaultMarkup: importDefaultMarkup,
					CurrentStock:  importDefaultStock,
					MinimumStock:  importDefaultMinimum,
				}
				if i, seen := productByName[name]; seen {
					products[i] = p
				} else {
					productByName[name] = len(products)
					products = append(products, p)
				}
			}
		}
	}

	return customers, products
}

// Import parses the file and reconciles both batches against the store.
// Customers go first, then products; the two submissions are independent,
// so a product failure leaves already-imported customers in place. The
// first backend failure aborts the import with that error.
func (s *ImportService) Import(content string) (*ImportResult, error) {
	customers, products := ParseImportFile(content)

	if len(customers) > 0 {
		if err := s.CustomerRepo.UpsertBatch(customers); err != nil {
			return nil, fmt.Errorf("import customers: %w", err)
		}
	}
	if len(products) > 0 {
		if err := s.ProductRepo.UpsertBatch(products); err != nil {
			return nil, fmt.Errorf("import products: %w", err)
		}
	}

	log.WithFields(log.Fields{
		"customers": len(customers),
		"products":  len(products),
	}).Info("import completed")

	return &ImportResult{Customers: len(customers), Products: len(products)}, nil
}

func indexOf(headers []string, name string) int {
	for i, h := range headers {
		if h == name {
			return i
		}
	}
	return -1
}

// field reads a positional value, tolerating short rows and absent headers.
func field(values []string, idx int) string {
	if idx < 0 || idx >= len(values) {
		return ""
	}
	return strings.TrimSpace(values[idx])
}

// parseCost is deliberately lenient: a non-numeric cost imports as 0
// instead of rejecting the row.
func parseCost(v string) float64 {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}
