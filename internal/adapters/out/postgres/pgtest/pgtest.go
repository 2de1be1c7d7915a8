// Package pgtest starts disposable PostgreSQL containers for integration
// suites and creates the shared tables the driver API reads but does not own.
package pgtest

import (
	"context"
	"time"

	"driverapi/internal/adapters/out/postgres/evidencerepo"
	"driverapi/internal/adapters/out/postgres/paymentrepo"
	"driverapi/internal/adapters/out/postgres/remittancerepo"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// SharedSchema mirrors the ordering system's tables with every optional column.
const SharedSchema = `
CREATE TABLE IF NOT EXISTS customer (
	customer_id BIGSERIAL PRIMARY KEY,
	customer_name VARCHAR(255) NOT NULL
);
CREATE TABLE IF NOT EXISTS drivers (
	driver_id BIGSERIAL PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	gmail VARCHAR(255) NOT NULL DEFAULT '',
	api_token VARCHAR(128),
	token_expires TIMESTAMPTZ,
	status VARCHAR(32),
	created_at TIMESTAMPTZ DEFAULT now(),
	last_login TIMESTAMPTZ
);
CREATE TABLE IF NOT EXISTS orders (
	order_id BIGSERIAL PRIMARY KEY,
	order_date TIMESTAMPTZ NOT NULL DEFAULT now(),
	order_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
	contact_number VARCHAR(32),
	customer_id BIGINT,
	order_type VARCHAR(32),
	order_status VARCHAR(32) NOT NULL DEFAULT 'Pending',
	driver_status VARCHAR(32),
	assigned_driver_id BIGINT,
	picked_up_at TIMESTAMPTZ,
	payment_received_at TIMESTAMPTZ,
	payment_received_by VARCHAR(255)
);
CREATE TABLE IF NOT EXISTS order_address (
	order_id BIGINT PRIMARY KEY,
	street VARCHAR(255),
	barangay VARCHAR(255),
	city VARCHAR(255),
	customer_lat DOUBLE PRECISION,
	customer_lng DOUBLE PRECISION
);
CREATE TABLE IF NOT EXISTS product (
	product_id BIGSERIAL PRIMARY KEY,
	product_name VARCHAR(255) NOT NULL
);
CREATE TABLE IF NOT EXISTS order_item (
	order_item_id BIGSERIAL PRIMARY KEY,
	order_id BIGINT NOT NULL,
	product_id BIGINT NOT NULL,
	quantity INT NOT NULL DEFAULT 1,
	price NUMERIC(10,2) NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS order_item_addons (
	addon_id BIGSERIAL PRIMARY KEY,
	order_id BIGINT NOT NULL,
	order_item_id BIGINT NOT NULL,
	addon_name VARCHAR(255) NOT NULL,
	addon_price NUMERIC(10,2) NOT NULL DEFAULT 0,
	quantity INT NOT NULL DEFAULT 1
);
`

// Tables lists every table for TRUNCATE between tests.
const Tables = "customer, drivers, orders, order_address, product, order_item, order_item_addons, payment, " +
	"order_payment_receipt, order_proof_photo, order_signature, order_status_history, notifications, driver_cash_remittance"

// Start runs a postgres:15-alpine container and returns a migrated connection.
func Start(ctx context.Context) (*postgres.PostgresContainer, *gorm.DB, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, nil, err
	}

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return container, nil, err
	}

	if err = db.Exec(SharedSchema).Error; err != nil {
		return container, nil, err
	}

	models := append(evidencerepo.Models(), &paymentrepo.PaymentDTO{}, &remittancerepo.RemittanceDTO{})
	if err = db.AutoMigrate(models...); err != nil {
		return container, nil, err
	}

	return container, db, nil
}

// Truncate empties every table and resets identities.
func Truncate(db *gorm.DB) error {
	return db.Exec("TRUNCATE TABLE " + Tables + " RESTART IDENTITY CASCADE").Error
}
