// Package catalog serves the product and shipping-method snapshots from JSON
// files on disk.
//
// Products file:  [{"id": 1, "nombre": "Polera", "precio": 9990, "stock": 5, ...}, ...]
// Shipping file:  [{"id": 1, "nombre": "Retiro en Campus", "precio": 0, "tiempo": "Inmediato"}, ...]
//
// Keys other than id, nombre, precio and stock are kept as product attributes.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"checkout/internal/core/domain/model/catalog"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/ports"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

const snapshotKey = "snapshot"

// Config locates the snapshot files.
type Config struct {
	ProductsPath string
	ShippingPath string
	// ShippingDefaults substitutes catalog.DefaultShippingMethods when the
	// shipping file does not exist. A file that exists but cannot be parsed
	// is still an error.
	ShippingDefaults bool
}

// FileCatalog implements ports.CatalogGateway. Both files are read together on
// first use and kept as one snapshot until Reload. Concurrent first reads
// share one load.
type FileCatalog struct {
	cfg Config
	sfg singleflight.Group

	mu       sync.RWMutex
	snapshot *catalog.Snapshot
}

var _ ports.CatalogGateway = (*FileCatalog)(nil)

func NewFileCatalog(cfg Config) *FileCatalog {
	return &FileCatalog{cfg: cfg}
}

func (c *FileCatalog) Snapshot(_ context.Context) (catalog.Snapshot, error) {
	c.mu.RLock()
	current := c.snapshot
	c.mu.RUnlock()
	if current != nil {
		return *current, nil
	}

	v, err, _ := c.sfg.Do(snapshotKey, func() (any, error) {
		loaded, loadErr := c.load()
		if loadErr != nil {
			return nil, loadErr
		}
		c.mu.Lock()
		if c.snapshot == nil {
			c.snapshot = &loaded
		}
		loaded = *c.snapshot
		c.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		return catalog.Snapshot{}, err
	}
	return v.(catalog.Snapshot), nil
}

// Reload re-reads both files and swaps them in as one snapshot. On error the
// previous snapshot stays in place.
func (c *FileCatalog) Reload(_ context.Context) error {
	loaded, err := c.load()
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.snapshot = &loaded
	c.mu.Unlock()
	return nil
}

func (c *FileCatalog) load() (catalog.Snapshot, error) {
	products, err := loadProducts(c.cfg.ProductsPath)
	if err != nil {
		return catalog.Snapshot{}, err
	}
	methods, err := c.loadShipping()
	if err != nil {
		return catalog.Snapshot{}, err
	}
	return catalog.NewSnapshot(products, methods), nil
}

func (c *FileCatalog) loadShipping() ([]catalog.ShippingMethod, error) {
	methods, err := loadShippingMethods(c.cfg.ShippingPath)
	if err == nil {
		return methods, nil
	}
	if c.cfg.ShippingDefaults && (c.cfg.ShippingPath == "" || errors.Is(err, fs.ErrNotExist)) {
		return catalog.DefaultShippingMethods(), nil
	}
	return nil, err
}

func loadProducts(path string) ([]catalog.Product, error) {
	records, err := readRecords(path)
	if err != nil {
		return nil, err
	}

	out := make([]catalog.Product, 0, len(records))
	for i, rec := range records {
		id, err := intField(rec, "id")
		if err != nil {
			return nil, snapshotError(path, fmt.Errorf("record %d: %w", i, err))
		}
		price, err := moneyField(rec, "precio")
		if err != nil {
			return nil, snapshotError(path, fmt.Errorf("product %d: %w", id, err))
		}
		stock, err := intField(rec, "stock")
		if err != nil {
			return nil, snapshotError(path, fmt.Errorf("product %d: %w", id, err))
		}
		name, _ := rec["nombre"].(string)

		attrs := make(map[string]any, len(rec))
		for k, v := range rec {
			switch k {
			case "id", "nombre", "precio", "stock":
			default:
				attrs[k] = plain(v)
			}
		}

		p, err := catalog.NewProduct(id, name, price, int(stock), attrs)
		if err != nil {
			return nil, snapshotError(path, fmt.Errorf("product %d: %w", id, err))
		}
		out = append(out, p)
	}
	return out, nil
}

func loadShippingMethods(path string) ([]catalog.ShippingMethod, error) {
	records, err := readRecords(path)
	if err != nil {
		return nil, err
	}

	out := make([]catalog.ShippingMethod, 0, len(records))
	for i, rec := range records {
		id, err := intField(rec, "id")
		if err != nil {
			return nil, snapshotError(path, fmt.Errorf("record %d: %w", i, err))
		}
		price, err := moneyField(rec, "precio")
		if err != nil {
			return nil, snapshotError(path, fmt.Errorf("shipping method %d: %w", id, err))
		}
		name, _ := rec["nombre"].(string)
		eta, _ := rec["tiempo"].(string)

		m, err := catalog.NewShippingMethod(id, name, price, eta)
		if err != nil {
			return nil, snapshotError(path, fmt.Errorf("shipping method %d: %w", id, err))
		}
		out = append(out, m)
	}
	return out, nil
}

func readRecords(path string) ([]map[string]any, error) {
	if path == "" {
		return nil, snapshotError(path, errors.New("path is not configured"))
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, snapshotError(path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var records []map[string]any
	if err = dec.Decode(&records); err != nil {
		return nil, snapshotError(path, err)
	}
	return records, nil
}

func snapshotError(path string, err error) error {
	return fmt.Errorf("%w: %s: %w", ports.ErrSnapshotUnavailable, path, err)
}

func intField(rec map[string]any, key string) (int64, error) {
	n, ok := rec[key].(json.Number)
	if !ok {
		return 0, fmt.Errorf("%q is missing or not a number", key)
	}
	v, err := n.Int64()
	if err != nil {
		return 0, fmt.Errorf("%q: %w", key, err)
	}
	return v, nil
}

func moneyField(rec map[string]any, key string) (kernel.Money, error) {
	n, ok := rec[key].(json.Number)
	if !ok {
		return kernel.Money{}, fmt.Errorf("%q is missing or not a number", key)
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return kernel.Money{}, fmt.Errorf("%q: %w", key, err)
	}
	return kernel.NewMoney(d)
}

// plain converts json.Number values back to float64 or int64 so attributes
// marshal the same way they were read.
func plain(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		f, _ := t.Float64()
		return f
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, inner := range t {
			out[k] = plain(inner)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, inner := range t {
			out[i] = plain(inner)
		}
		return out
	default:
		return v
	}
}
