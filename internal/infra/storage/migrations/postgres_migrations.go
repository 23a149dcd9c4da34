package migrations

// PostgresMigrations returns all PostgreSQL migrations in order
func PostgresMigrations() []Migration {
	return []Migration{
		{
			Version:     "001",
			Description: "Key-value slot table",
			UpSQL: `
				CREATE TABLE IF NOT EXISTS kv_slots (
					key VARCHAR(255) PRIMARY KEY,
					value BYTEA NOT NULL,
					updated_at TIMESTAMP WITH TIME ZONE NOT NULL
				);
			`,
		},
	}
}
