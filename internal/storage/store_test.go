package storage

import (
	"fmt"
	"testing"
	"time"

	"github.com/jwulff/sheetfont-go/internal/domain"
	"github.com/jwulff/sheetfont-go/internal/font"
	"github.com/jwulff/sheetfont-go/internal/glyph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDevice(t *testing.T) {
	device := NewDevice("dev-1", "192.168.1.100", "Living Room", "pixoo64")

	assert.Equal(t, "dev-1", device.ID)
	assert.Equal(t, "192.168.1.100", device.IP)
	assert.Equal(t, "Living Room", device.Name)
	assert.Equal(t, "pixoo64", device.Type)
	assert.False(t, device.CreatedAt.IsZero())
	assert.False(t, device.LastSeen.IsZero())
	assert.True(t, device.CreatedAt.Before(time.Now().Add(time.Second)))
}

func TestNewFontMetrics(t *testing.T) {
	inv := glyph.NewInventory("AB")
	cells := []domain.Bitmap{
		domain.NewBitmapWithColor(4, 4, glyph.Transparent),
		domain.NewBitmapWithColor(4, 4, glyph.Transparent),
	}
	cells[0].Set(2, 3, glyph.Ink)
	f, err := font.New("Arial", 16, inv, cells)
	require.NoError(t, err)

	m := NewFontMetrics(f)

	assert.Equal(t, "ARIAL", m.Family)
	assert.Equal(t, 16, m.Size)
	assert.Equal(t, 4, m.CellHeight)
	assert.Equal(t, "AB", m.Characters)
	assert.Equal(t, []int{3, 1}, m.Widths)
	assert.Equal(t, f.Baselines(), m.Baselines)
	assert.Equal(t, "ARIAL_16PT", m.Name())
	assert.False(t, m.UpdatedAt.IsZero())
}

func TestErrNotFound(t *testing.T) {
	err := ErrNotFound{Resource: "device", ID: "123"}

	assert.Equal(t, "device not found: 123", err.Error())
	assert.True(t, IsNotFound(err))
}

func TestIsNotFoundWrapped(t *testing.T) {
	err := fmt.Errorf("loading: %w", ErrNotFound{Resource: "config", ID: "k"})
	assert.True(t, IsNotFound(err))
}

func TestIsNotFoundFalse(t *testing.T) {
	assert.False(t, IsNotFound(nil))
	assert.False(t, IsNotFound(assert.AnError))
}
