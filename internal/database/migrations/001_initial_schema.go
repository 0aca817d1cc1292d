package migrations

import "gorm.io/gorm"

// The initial schema is an explicit migration; AutoMigrate only fills in
// columns added after this baseline.
const initialSchemaSQL = `
CREATE TABLE IF NOT EXISTS account_records (
	id BIGSERIAL PRIMARY KEY,
	created_at TIMESTAMPTZ,
	updated_at TIMESTAMPTZ,
	deleted_at TIMESTAMPTZ,
	user_id TEXT,
	email TEXT,
	password_hash TEXT,
	name TEXT,
	role TEXT,
	email_confirmed BOOLEAN,
	mfa_secret TEXT,
	mfa_enabled BOOLEAN
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_account_records_user_id ON account_records (user_id);
CREATE UNIQUE INDEX IF NOT EXISTS idx_account_records_email ON account_records (email);
CREATE INDEX IF NOT EXISTS idx_account_records_deleted_at ON account_records (deleted_at);

CREATE TABLE IF NOT EXISTS check_in_records (
	id BIGSERIAL PRIMARY KEY,
	created_at TIMESTAMPTZ,
	updated_at TIMESTAMPTZ,
	deleted_at TIMESTAMPTZ,
	user_id TEXT,
	body_feel TEXT,
	movement TEXT,
	food TEXT,
	stress TEXT,
	sleep TEXT,
	date_label TEXT
);
CREATE INDEX IF NOT EXISTS idx_check_in_records_user_id ON check_in_records (user_id);
CREATE INDEX IF NOT EXISTS idx_check_in_records_user_created ON check_in_records (user_id, created_at);
CREATE INDEX IF NOT EXISTS idx_check_in_records_deleted_at ON check_in_records (deleted_at);

CREATE TABLE IF NOT EXISTS preference_records (
	id BIGSERIAL PRIMARY KEY,
	created_at TIMESTAMPTZ,
	updated_at TIMESTAMPTZ,
	deleted_at TIMESTAMPTZ,
	user_id TEXT,
	font_size TEXT DEFAULT 'medium',
	zoom_level BIGINT DEFAULT 100
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_preference_records_user_id ON preference_records (user_id);
CREATE INDEX IF NOT EXISTS idx_preference_records_deleted_at ON preference_records (deleted_at);
`

const initialSchemaDownSQL = `
DROP TABLE IF EXISTS preference_records;
DROP TABLE IF EXISTS check_in_records;
DROP TABLE IF EXISTS account_records;
`

func init() {
	Register("001_initial_schema",
		func(db *gorm.DB) error {
			return db.Exec(initialSchemaSQL).Error
		},
		func(db *gorm.DB) error {
			return db.Exec(initialSchemaDownSQL).Error
		},
	)
}
