// Package catalogfile reads product catalogs from YAML for seeding a store.
//
//	products:
//	  - id: blue-mug
//	    name: Blue Mug
//	    category: Kitchen
//	    price: "9.99"
//	    stock_quantity: 12
package catalogfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/light-bringer/storefront-service/internal/app/storefront/domain"
)

// File is the top-level document.
type File struct {
	Products []Entry `yaml:"products"`
}

// Entry is one product. Price is a decimal string so no float is involved.
type Entry struct {
	ID            string    `yaml:"id"`
	Name          string    `yaml:"name"`
	Description   string    `yaml:"description"`
	Category      string    `yaml:"category"`
	Price         string    `yaml:"price"`
	StockQuantity int64     `yaml:"stock_quantity"`
	ImageURL      string    `yaml:"image_url"`
	CreatedAt     time.Time `yaml:"created_at"`
}

// Load parses a catalog and validates every product. Entries without an id
// get a random one. Duplicate ids are rejected.
func Load(r io.Reader) ([]*domain.Product, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return []*domain.Product{}, nil
		}
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	seen := make(map[string]int, len(f.Products))
	products := make([]*domain.Product, 0, len(f.Products))
	for i, e := range f.Products {
		p, err := e.toProduct()
		if err != nil {
			return nil, fmt.Errorf("product #%d (%s): %w", i+1, e.Name, err)
		}
		if prev, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("product #%d: id %q already used by product #%d", i+1, p.ID, prev)
		}
		seen[p.ID] = i + 1
		products = append(products, p)
	}
	return products, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) ([]*domain.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

func (e Entry) toProduct() (*domain.Product, error) {
	price, err := domain.ParseMoney(e.Price)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPrice, err)
	}

	id := e.ID
	if id == "" {
		id = uuid.New().String()
	}

	p := &domain.Product{
		ID:            id,
		Name:          e.Name,
		Description:   e.Description,
		Category:      e.Category,
		Price:         price,
		StockQuantity: e.StockQuantity,
		ImageURL:      e.ImageURL,
		CreatedAt:     e.CreatedAt,
	}
	if err := domain.ValidateProduct(p); err != nil {
		return nil, err
	}
	return p, nil
}
