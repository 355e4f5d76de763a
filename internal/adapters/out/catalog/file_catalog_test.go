package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"checkout/internal/adapters/out/catalog"
	"checkout/internal/core/ports"
	"checkout/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productsJSON = `[
	{"id": 1, "nombre": "Polera UNAB", "precio": 9990, "stock": 5, "categoria": "ropa", "tallas": ["S", "M"]},
	{"id": 2, "nombre": "Taza", "precio": 4500.5, "stock": 0}
]`

const shippingJSON = `[
	{"id": 1, "nombre": "Retiro en Campus", "precio": 0, "tiempo": "Inmediato"},
	{"id": 4, "nombre": "Courier", "precio": 3990}
]`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newCatalog(t *testing.T, dir string) *catalog.FileCatalog {
	t.Helper()
	return catalog.NewFileCatalog(catalog.Config{
		ProductsPath: writeFile(t, dir, "productos.json", productsJSON),
		ShippingPath: writeFile(t, dir, "envios.json", shippingJSON),
	})
}

func TestFileCatalog_Snapshot_Products(t *testing.T) {
	c := newCatalog(t, t.TempDir())

	snapshot, err := c.Snapshot(context.Background())
	require.NoError(t, err)

	p, ok := snapshot.Product(1)
	require.True(t, ok)
	assert.Equal(t, "Polera UNAB", p.Name())
	assert.Equal(t, "9990", p.Price().String())
	assert.Equal(t, 5, p.Stock())
	assert.Equal(t, map[string]any{"categoria": "ropa", "tallas": []any{"S", "M"}}, p.Attributes())

	p, ok = snapshot.Product(2)
	require.True(t, ok)
	assert.Equal(t, "4500.5", p.Price().String())
	assert.Equal(t, 0, p.Stock())

	_, ok = snapshot.Product(99)
	assert.False(t, ok)
}

func TestFileCatalog_Snapshot_ShippingMethods(t *testing.T) {
	c := newCatalog(t, t.TempDir())

	snapshot, err := c.Snapshot(context.Background())
	require.NoError(t, err)

	m, ok := snapshot.ShippingMethod(4)
	require.True(t, ok)
	assert.Equal(t, "Courier", m.Name())
	assert.Equal(t, "3990", m.Price().String())

	_, ok = snapshot.ShippingMethod(2)
	assert.False(t, ok)
}

func TestFileCatalog_MissingSnapshot(t *testing.T) {
	dir := t.TempDir()
	c := catalog.NewFileCatalog(catalog.Config{
		ProductsPath: filepath.Join(dir, "missing.json"),
		ShippingPath: filepath.Join(dir, "missing.json"),
	})

	_, err := c.Snapshot(context.Background())
	require.ErrorIs(t, err, ports.ErrSnapshotUnavailable)
}

func TestFileCatalog_MissingShippingFileWithoutDefaults(t *testing.T) {
	dir := t.TempDir()
	c := catalog.NewFileCatalog(catalog.Config{
		ProductsPath: writeFile(t, dir, "productos.json", productsJSON),
		ShippingPath: filepath.Join(dir, "missing.json"),
	})

	_, err := c.Snapshot(context.Background())
	require.ErrorIs(t, err, ports.ErrSnapshotUnavailable)
}

func TestFileCatalog_MalformedSnapshot(t *testing.T) {
	dir := t.TempDir()
	c := catalog.NewFileCatalog(catalog.Config{
		ProductsPath: writeFile(t, dir, "productos.json", `[{"id": "uno", "precio": 1, "stock": 1}]`),
		ShippingPath: writeFile(t, dir, "envios.json", shippingJSON),
	})

	_, err := c.Snapshot(context.Background())
	require.ErrorIs(t, err, ports.ErrSnapshotUnavailable)
}

func TestFileCatalog_PriceFinerThanCentsIsRejected(t *testing.T) {
	dir := t.TempDir()
	c := catalog.NewFileCatalog(catalog.Config{
		ProductsPath: writeFile(t, dir, "productos.json", `[{"id": 1, "nombre": "Lápiz", "precio": 10.005, "stock": 3}]`),
		ShippingPath: writeFile(t, dir, "envios.json", shippingJSON),
	})

	_, err := c.Snapshot(context.Background())

	require.ErrorIs(t, err, ports.ErrSnapshotUnavailable)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "product 1")
}

func TestFileCatalog_ShippingDefaults(t *testing.T) {
	dir := t.TempDir()
	c := catalog.NewFileCatalog(catalog.Config{
		ProductsPath:     writeFile(t, dir, "productos.json", productsJSON),
		ShippingPath:     filepath.Join(dir, "missing.json"),
		ShippingDefaults: true,
	})

	snapshot, err := c.Snapshot(context.Background())
	require.NoError(t, err)

	m, ok := snapshot.ShippingMethod(2)
	require.True(t, ok)
	assert.Equal(t, "Envío Estándar", m.Name())
	assert.Equal(t, "5000", m.Price().String())

	m, ok = snapshot.ShippingMethod(3)
	require.True(t, ok)
	assert.Equal(t, "10000", m.Price().String())
}

func TestFileCatalog_ShippingDefaultsDoNotMaskMalformedFile(t *testing.T) {
	dir := t.TempDir()
	c := catalog.NewFileCatalog(catalog.Config{
		ProductsPath:     writeFile(t, dir, "productos.json", productsJSON),
		ShippingPath:     writeFile(t, dir, "envios.json", `[{"id": 1, "nombre": "Courier", "precio": -5}]`),
		ShippingDefaults: true,
	})

	_, err := c.Snapshot(context.Background())
	require.ErrorIs(t, err, ports.ErrSnapshotUnavailable)

	writeFile(t, dir, "envios.json", `{not json`)
	require.ErrorIs(t, c.Reload(context.Background()), ports.ErrSnapshotUnavailable)
}

func TestFileCatalog_SnapshotIsStableUntilReload(t *testing.T) {
	dir := t.TempDir()
	c := newCatalog(t, dir)
	ctx := context.Background()

	first, err := c.Snapshot(ctx)
	require.NoError(t, err)
	_, ok := first.Product(1)
	require.True(t, ok)

	writeFile(t, dir, "productos.json", `[{"id": 7, "nombre": "Gorro", "precio": 100, "stock": 1}]`)
	writeFile(t, dir, "envios.json", `[{"id": 9, "nombre": "Moto", "precio": 2500}]`)

	again, err := c.Snapshot(ctx)
	require.NoError(t, err)
	_, ok = again.Product(1)
	assert.True(t, ok, "snapshot must not change before Reload")

	require.NoError(t, c.Reload(ctx))

	reloaded, err := c.Snapshot(ctx)
	require.NoError(t, err)
	_, ok = reloaded.Product(1)
	assert.False(t, ok)
	_, ok = reloaded.Product(7)
	assert.True(t, ok)
	_, ok = reloaded.ShippingMethod(9)
	assert.True(t, ok)

	// A snapshot taken earlier keeps answering from the old files.
	_, ok = first.Product(1)
	assert.True(t, ok)
	_, ok = first.ShippingMethod(9)
	assert.False(t, ok)
}

func TestFileCatalog_FailedReloadKeepsSnapshot(t *testing.T) {
	dir := t.TempDir()
	c := newCatalog(t, dir)
	ctx := context.Background()
	require.NoError(t, c.Reload(ctx))

	writeFile(t, dir, "productos.json", `[{"id": 7, "nombre": "Gorro", "precio": 100, "stock": 1}]`)
	require.NoError(t, os.Remove(filepath.Join(dir, "envios.json")))
	require.ErrorIs(t, c.Reload(ctx), ports.ErrSnapshotUnavailable)

	snapshot, err := c.Snapshot(ctx)
	require.NoError(t, err)
	_, ok := snapshot.Product(1)
	assert.True(t, ok)
	_, ok = snapshot.Product(7)
	assert.False(t, ok, "products must not be swapped without shipping")
}

func TestFileCatalog_ConcurrentReaders(t *testing.T) {
	c := newCatalog(t, t.TempDir())

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			snapshot, err := c.Snapshot(context.Background())
			assert.NoError(t, err)
			_, ok := snapshot.Product(1)
			assert.True(t, ok)
		}()
	}
	wg.Wait()
}
