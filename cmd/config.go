package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"checkout/internal/core/application/usecases/queries"
	"checkout/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultHTTPPort                = "8080"
	defaultDBSslMode               = "disable"
	defaultDocumentsRoot           = "documentos"
	defaultReceiptBackfillSchedule = "0 */5 * * * *"
	defaultReceiptBackfillBatch    = 100
	defaultCatalogRefreshSchedule  = "0 * * * * *"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	CatalogProductsPath     string
	CatalogShippingPath     string
	ShippingDefaultsEnabled bool
	CatalogRefreshSchedule  string

	DocumentsRoot           string
	ReceiptBackfillSchedule string
	ReceiptBackfillBatch    int

	BcryptCost int
	LogLevel   slog.Level
}

// ScheduleDisabled turns a job off when used as its schedule.
const ScheduleDisabled = "off"

// LoadConfig reads the configuration through getenv. Unset values take their defaults.
func LoadConfig(getenv func(string) string) (Config, error) {
	cfg := Config{
		HTTPPort:                withDefault(getenv("HTTP_PORT"), defaultHTTPPort),
		DBHost:                  getenv("DB_HOST"),
		DBPort:                  getenv("DB_PORT"),
		DBUser:                  getenv("DB_USER"),
		DBPassword:              getenv("DB_PASSWORD"),
		DBName:                  getenv("DB_NAME"),
		DBSslMode:               withDefault(getenv("DB_SSLMODE"), defaultDBSslMode),
		CatalogProductsPath:     getenv("CATALOG_PRODUCTS_PATH"),
		CatalogShippingPath:     getenv("CATALOG_SHIPPING_PATH"),
		CatalogRefreshSchedule:  withDefault(getenv("CATALOG_REFRESH_SCHEDULE"), defaultCatalogRefreshSchedule),
		DocumentsRoot:           withDefault(getenv("DOCUMENTS_ROOT"), defaultDocumentsRoot),
		ReceiptBackfillSchedule: withDefault(getenv("RECEIPT_BACKFILL_SCHEDULE"), defaultReceiptBackfillSchedule),
		ReceiptBackfillBatch:    defaultReceiptBackfillBatch,
		BcryptCost:              bcrypt.DefaultCost,
	}

	var parseErrs []error
	if v := getenv("SHIPPING_DEFAULTS_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			parseErrs = append(parseErrs, errs.NewValueIsInvalidErrorWithCause("SHIPPING_DEFAULTS_ENABLED", err))
		}
		cfg.ShippingDefaultsEnabled = enabled
	}
	if v := getenv("RECEIPT_BACKFILL_BATCH"); v != "" {
		batch, err := strconv.Atoi(v)
		if err != nil {
			parseErrs = append(parseErrs, errs.NewValueIsInvalidErrorWithCause("RECEIPT_BACKFILL_BATCH", err))
		}
		cfg.ReceiptBackfillBatch = batch
	}
	if v := getenv("BCRYPT_COST"); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil {
			parseErrs = append(parseErrs, errs.NewValueIsInvalidErrorWithCause("BCRYPT_COST", err))
		}
		cfg.BcryptCost = cost
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			parseErrs = append(parseErrs, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err))
		}
	}

	if err := errors.Join(parseErrs...); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var validationErrs []error
	for name, v := range map[string]string{
		"DB_HOST":               c.DBHost,
		"DB_PORT":               c.DBPort,
		"DB_USER":               c.DBUser,
		"DB_NAME":               c.DBName,
		"CATALOG_PRODUCTS_PATH": c.CatalogProductsPath,
	} {
		if strings.TrimSpace(v) == "" {
			validationErrs = append(validationErrs, errs.NewValueIsRequiredError(name))
		}
	}
	if c.CatalogShippingPath == "" && !c.ShippingDefaultsEnabled {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("CATALOG_SHIPPING_PATH"))
	}
	if c.ReceiptBackfillBatch <= 0 || c.ReceiptBackfillBatch > queries.MaxOrdersWithoutReceipt {
		validationErrs = append(validationErrs, errs.NewValueIsOutOfRangeError(
			"RECEIPT_BACKFILL_BATCH", c.ReceiptBackfillBatch, 1, queries.MaxOrdersWithoutReceipt))
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		validationErrs = append(validationErrs,
			errs.NewValueIsOutOfRangeError("BCRYPT_COST", c.BcryptCost, bcrypt.MinCost, bcrypt.MaxCost))
	}
	return errors.Join(validationErrs...)
}

// DSN returns the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func withDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
