package sqlite

// schema contains the database schema DDL.
const schema = `
-- Font metrics catalog
CREATE TABLE IF NOT EXISTS font_metrics (
    family TEXT NOT NULL,
    size INTEGER NOT NULL,
    cell_height INTEGER NOT NULL,
    characters TEXT NOT NULL,
    widths TEXT NOT NULL,
    baselines TEXT NOT NULL,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (family, size)
);

-- Devices
CREATE TABLE IF NOT EXISTS devices (
    id TEXT PRIMARY KEY,
    ip TEXT NOT NULL,
    name TEXT,
    type TEXT DEFAULT 'pixoo64',
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    last_seen DATETIME
);

-- Configuration
CREATE TABLE IF NOT EXISTS config (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Frame cache
CREATE TABLE IF NOT EXISTS frame_cache (
    key TEXT PRIMARY KEY,
    width INTEGER NOT NULL,
    height INTEGER NOT NULL,
    frame_data BLOB NOT NULL,
    generated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`
