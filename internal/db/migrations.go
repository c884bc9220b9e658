package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'user_role') THEN
			CREATE TYPE user_role AS ENUM ('CUSTOMER', 'AGENT', 'ADMIN');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'quote_status') THEN
			CREATE TYPE quote_status AS ENUM ('GENERATED', 'SAVED', 'CONVERTED');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'policy_status') THEN
			CREATE TYPE policy_status AS ENUM ('ACTIVE', 'EXPIRED', 'CANCELLED');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'claim_status') THEN
			CREATE TYPE claim_status AS ENUM ('NEW', 'IN_REVIEW', 'APPROVED', 'DENIED', 'CLOSED');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		first_name VARCHAR(128) NOT NULL,
		last_name VARCHAR(128) NOT NULL,
		email VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		role user_role NOT NULL,
		dob DATE,
		license_number VARCHAR(64),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_users_email ON users (email);`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		id UUID PRIMARY KEY,
		make VARCHAR(64) NOT NULL,
		model VARCHAR(64) NOT NULL,
		year INT NOT NULL,
		vin VARCHAR(64) NOT NULL,
		customer_id UUID NOT NULL REFERENCES users(id)
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_vehicles_vin ON vehicles (vin);`,
	`CREATE TABLE IF NOT EXISTS quotes (
		id UUID PRIMARY KEY,
		quote_number VARCHAR(64) NOT NULL,
		vehicle_id UUID NOT NULL REFERENCES vehicles(id),
		customer_id UUID NOT NULL REFERENCES users(id),
		premium_amount NUMERIC(12,2) NOT NULL,
		coverage_details TEXT,
		status quote_status NOT NULL DEFAULT 'GENERATED',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_quotes_quote_number ON quotes (quote_number);`,
	`CREATE INDEX IF NOT EXISTS idx_quotes_customer_id ON quotes (customer_id);`,
	`CREATE TABLE IF NOT EXISTS policies (
		id UUID PRIMARY KEY,
		policy_number VARCHAR(64) NOT NULL,
		quote_id UUID NOT NULL REFERENCES quotes(id),
		vehicle_id UUID NOT NULL REFERENCES vehicles(id),
		customer_id UUID NOT NULL REFERENCES users(id),
		agent_id UUID NOT NULL REFERENCES users(id),
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		premium_amount NUMERIC(12,2) NOT NULL,
		status policy_status NOT NULL DEFAULT 'ACTIVE'
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_policies_policy_number ON policies (policy_number);`,
	`CREATE INDEX IF NOT EXISTS idx_policies_customer_id ON policies (customer_id);`,
	`CREATE INDEX IF NOT EXISTS idx_policies_agent_id ON policies (agent_id);`,
	`CREATE TABLE IF NOT EXISTS claims (
		id UUID PRIMARY KEY,
		claim_number VARCHAR(64) NOT NULL,
		policy_id UUID NOT NULL REFERENCES policies(id),
		customer_id UUID NOT NULL REFERENCES users(id),
		description TEXT,
		status claim_status NOT NULL DEFAULT 'NEW',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_claims_claim_number ON claims (claim_number);`,
	`CREATE INDEX IF NOT EXISTS idx_claims_policy_id ON claims (policy_id);`,
	`CREATE TABLE IF NOT EXISTS claim_documents (
		claim_id UUID NOT NULL REFERENCES claims(id) ON DELETE CASCADE,
		position INT NOT NULL,
		document_path TEXT NOT NULL,
		PRIMARY KEY (claim_id, position)
	);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
