// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines tables for profile, settings, meals, plans, and quota counts.
package storage

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS profile (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		age INTEGER NOT NULL,
		gender TEXT NOT NULL,
		height_cm REAL NOT NULL,
		weight_kg REAL NOT NULL,
		activity_level TEXT NOT NULL,
		health_goal TEXT NOT NULL,
		special_focus TEXT,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS adjustment_settings (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		scenario TEXT NOT NULL,
		taste TEXT NOT NULL,
		portion TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS meals (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		slot TEXT NOT NULL,
		calories REAL NOT NULL,
		protein REAL NOT NULL,
		carbs REAL NOT NULL,
		fat REAL NOT NULL,
		sodium REAL NOT NULL,
		fiber REAL NOT NULL,
		recipe_id TEXT,
		recorded_at DATETIME NOT NULL,
		notes TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS meal_plans (
		id TEXT PRIMARY KEY,
		generated_at DATETIME NOT NULL,
		payload TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS plan_regenerations (
		day TEXT PRIMARY KEY,
		count INTEGER NOT NULL DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_meals_recorded ON meals(recorded_at DESC);
	CREATE INDEX IF NOT EXISTS idx_meals_slot ON meals(slot, recorded_at DESC);
	CREATE INDEX IF NOT EXISTS idx_plans_generated ON meal_plans(generated_at DESC);
	`

	_, err := d.db.Exec(schema)
	return err
}
