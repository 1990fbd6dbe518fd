// Package storage provides storage abstractions for font catalogs, composed
// frames and settings.
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jwulff/sheetfont-go/internal/font"
)

// Store is the interface for persistent storage.
type Store interface {
	// Font metrics catalog
	SaveFontMetrics(ctx context.Context, m *FontMetrics) error
	GetFontMetrics(ctx context.Context, family string, size int) (*FontMetrics, error)
	ListFontMetrics(ctx context.Context) ([]*FontMetrics, error)
	DeleteFontMetrics(ctx context.Context, family string, size int) error

	// Frame cache
	CacheFrame(ctx context.Context, frame *CachedFrame) error
	GetCachedFrame(ctx context.Context, key string) (*CachedFrame, error)

	// Configuration
	GetConfig(ctx context.Context, key string) (string, error)
	SetConfig(ctx context.Context, key, value string) error
	DeleteConfig(ctx context.Context, key string) error

	// Device management
	SaveDevice(ctx context.Context, device *Device) error
	GetDevice(ctx context.Context, id string) (*Device, error)
	GetDevices(ctx context.Context) ([]*Device, error)
	DeleteDevice(ctx context.Context, id string) error

	// Lifecycle
	Close() error
}

// FontMetrics is the catalog record of a built font.
type FontMetrics struct {
	Family     string
	Size       int
	CellHeight int
	Characters string
	// Widths and Baselines are in inventory order.
	Widths    []int
	Baselines []int
	UpdatedAt time.Time
}

// NewFontMetrics captures the metrics of f.
func NewFontMetrics(f *font.Font) *FontMetrics {
	return &FontMetrics{
		Family:     f.Family(),
		Size:       f.Size(),
		CellHeight: f.CellHeight(),
		Characters: f.Inventory().String(),
		Widths:     f.Widths(),
		Baselines:  f.Baselines(),
		UpdatedAt:  time.Now(),
	}
}

// Name returns the font identifier, e.g. "ARIAL_14PT".
func (m *FontMetrics) Name() string {
	return fmt.Sprintf("%s_%dPT", m.Family, m.Size)
}

// LastFrameKey is the cache key of the most recently previewed frame.
const LastFrameKey = "last"

// CachedFrame represents a cached rendered frame.
type CachedFrame struct {
	Key         string
	Width       int
	Height      int
	FrameData   []byte
	GeneratedAt time.Time
}

// Device represents a stored Pixoo device.
type Device struct {
	ID        string
	IP        string
	Name      string
	Type      string
	CreatedAt time.Time
	LastSeen  time.Time
}

// NewDevice creates a new device record.
func NewDevice(id, ip, name, deviceType string) *Device {
	now := time.Now()
	return &Device{
		ID:        id,
		IP:        ip,
		Name:      name,
		Type:      deviceType,
		CreatedAt: now,
		LastSeen:  now,
	}
}

// ErrNotFound is returned when a record is not found.
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e ErrNotFound) Error() string {
	return e.Resource + " not found: " + e.ID
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	var target ErrNotFound
	return errors.As(err, &target)
}
