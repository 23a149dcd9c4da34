package migrations

// SQLiteMigrations returns all SQLite migrations in order
func SQLiteMigrations() []Migration {
	return []Migration{
		{
			Version:     "001",
			Description: "Key-value slot table",
			UpSQL: `
				CREATE TABLE IF NOT EXISTS kv_slots (
					key TEXT PRIMARY KEY,
					value BLOB NOT NULL,
					updated_at DATETIME NOT NULL
				);
			`,
		},
	}
}
