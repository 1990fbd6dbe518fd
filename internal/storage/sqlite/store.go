// Package sqlite provides a SQLite implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jwulff/sheetfont-go/internal/font"
	"github.com/jwulff/sheetfont-go/internal/storage"

	_ "modernc.org/sqlite"
)

// Store is a SQLite implementation of storage.Store.
type Store struct {
	db *sql.DB
}

// NewMemoryStore creates an in-memory SQLite store.
func NewMemoryStore() (*Store, error) {
	return newStore(":memory:")
}

// NewFileStore creates a file-based SQLite store.
func NewFileStore(path string) (*Store, error) {
	return newStore(path)
}

func newStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Font metrics methods

func (s *Store) SaveFontMetrics(ctx context.Context, m *storage.FontMetrics) error {
	widthsJSON, err := json.Marshal(m.Widths)
	if err != nil {
		return fmt.Errorf("failed to marshal widths: %w", err)
	}
	baselinesJSON, err := json.Marshal(m.Baselines)
	if err != nil {
		return fmt.Errorf("failed to marshal baselines: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO font_metrics (family, size, cell_height, characters, widths, baselines, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, font.NormalizeFamily(m.Family), m.Size, m.CellHeight, m.Characters,
		string(widthsJSON), string(baselinesJSON), m.UpdatedAt)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFontMetrics(row rowScanner) (*storage.FontMetrics, error) {
	var m storage.FontMetrics
	var widthsJSON, baselinesJSON string
	if err := row.Scan(&m.Family, &m.Size, &m.CellHeight, &m.Characters,
		&widthsJSON, &baselinesJSON, &m.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(widthsJSON), &m.Widths); err != nil {
		return nil, fmt.Errorf("failed to unmarshal widths: %w", err)
	}
	if err := json.Unmarshal([]byte(baselinesJSON), &m.Baselines); err != nil {
		return nil, fmt.Errorf("failed to unmarshal baselines: %w", err)
	}
	return &m, nil
}

func (s *Store) GetFontMetrics(ctx context.Context, family string, size int) (*storage.FontMetrics, error) {
	family = font.NormalizeFamily(family)
	row := s.db.QueryRowContext(ctx, `
		SELECT family, size, cell_height, characters, widths, baselines, updated_at
		FROM font_metrics WHERE family = ? AND size = ?
	`, family, size)

	m, err := scanFontMetrics(row)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound{Resource: "font_metrics", ID: fmt.Sprintf("%s_%dPT", family, size)}
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Store) ListFontMetrics(ctx context.Context) ([]*storage.FontMetrics, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT family, size, cell_height, characters, widths, baselines, updated_at
		FROM font_metrics ORDER BY family, size
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var metrics []*storage.FontMetrics
	for rows.Next() {
		m, err := scanFontMetrics(rows)
		if err != nil {
			return nil, err
		}
		metrics = append(metrics, m)
	}
	return metrics, rows.Err()
}

func (s *Store) DeleteFontMetrics(ctx context.Context, family string, size int) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM font_metrics WHERE family = ? AND size = ?",
		font.NormalizeFamily(family), size)
	return err
}

// Device methods

func (s *Store) SaveDevice(ctx context.Context, device *storage.Device) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO devices (id, ip, name, type, created_at, last_seen)
		VALUES (?, ?, ?, ?, ?, ?)
	`, device.ID, device.IP, device.Name, device.Type, device.CreatedAt, device.LastSeen)
	return err
}

func (s *Store) GetDevice(ctx context.Context, id string) (*storage.Device, error) {
	var device storage.Device
	err := s.db.QueryRowContext(ctx, `
		SELECT id, ip, name, type, created_at, last_seen FROM devices WHERE id = ?
	`, id).Scan(&device.ID, &device.IP, &device.Name, &device.Type, &device.CreatedAt, &device.LastSeen)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound{Resource: "device", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &device, nil
}

func (s *Store) GetDevices(ctx context.Context) ([]*storage.Device, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, ip, name, type, created_at, last_seen FROM devices ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var devices []*storage.Device
	for rows.Next() {
		var device storage.Device
		if err := rows.Scan(&device.ID, &device.IP, &device.Name, &device.Type, &device.CreatedAt, &device.LastSeen); err != nil {
			return nil, err
		}
		devices = append(devices, &device)
	}
	return devices, rows.Err()
}

func (s *Store) DeleteDevice(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM devices WHERE id = ?", id)
	return err
}

// Frame cache methods

func (s *Store) CacheFrame(ctx context.Context, frame *storage.CachedFrame) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO frame_cache (key, width, height, frame_data, generated_at)
		VALUES (?, ?, ?, ?, ?)
	`, frame.Key, frame.Width, frame.Height, frame.FrameData, frame.GeneratedAt)
	return err
}

func (s *Store) GetCachedFrame(ctx context.Context, key string) (*storage.CachedFrame, error) {
	var frame storage.CachedFrame
	err := s.db.QueryRowContext(ctx, `
		SELECT key, width, height, frame_data, generated_at FROM frame_cache WHERE key = ?
	`, key).Scan(&frame.Key, &frame.Width, &frame.Height, &frame.FrameData, &frame.GeneratedAt)

	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound{Resource: "frame_cache", ID: key}
	}
	if err != nil {
		return nil, err
	}
	return &frame, nil
}

// Config methods

func (s *Store) GetConfig(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM config WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", storage.ErrNotFound{Resource: "config", ID: key}
	}
	return value, err
}

func (s *Store) SetConfig(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO config (key, value, updated_at)
		VALUES (?, ?, ?)
	`, key, value, time.Now())
	return err
}

func (s *Store) DeleteConfig(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM config WHERE key = ?", key)
	return err
}

// Verify interface compliance
var _ storage.Store = (*Store)(nil)
