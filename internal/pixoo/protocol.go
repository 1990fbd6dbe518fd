// Package pixoo pushes composed frames to a Pixoo LED panel.
//
// The Pixoo64 has a local HTTP API at port 80.
// Endpoint: POST http://<ip>/post
//
// Frame format:
// - square, 16, 32 or 64 pixels wide
// - RGB (3 bytes per pixel)
// - Base64 encoded
// - Total: 64 * 64 * 3 = 12,288 bytes raw, ~16KB base64
//
// Every reply carries an error_code; anything but 0 is a device error.
package pixoo

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jwulff/sheetfont-go/internal/domain"
)

// Supported panel widths.
var supportedWidths = map[int]bool{16: true, 32: true, 64: true}

// PixooCommand represents a Pixoo API command.
type PixooCommand struct {
	Command string `json:"Command"`
}

// FrameCommand represents a Draw/SendHttpGif command.
type FrameCommand struct {
	Command   string `json:"Command"`
	PicNum    int    `json:"PicNum"`
	PicWidth  int    `json:"PicWidth"`
	PicOffset int    `json:"PicOffset"`
	PicID     int    `json:"PicID"`
	PicSpeed  int    `json:"PicSpeed"`
	PicData   string `json:"PicData"`
}

// BrightnessCommand represents a Channel/SetBrightness command.
type BrightnessCommand struct {
	Command    string `json:"Command"`
	Brightness int    `json:"Brightness"`
}

// FrameCommandOptions configures frame command parameters.
type FrameCommandOptions struct {
	PicID int
	Speed int
}

// Response is the common reply envelope.
type Response struct {
	ErrorCode int `json:"error_code"`
}

// DeviceError is a non-zero error_code returned by the device.
type DeviceError struct {
	Command string
	Code    int
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("pixoo %s: error code %d", e.Command, e.Code)
}

// IsDeviceError checks if an error is a DeviceError.
func IsDeviceError(err error) bool {
	var target *DeviceError
	return errors.As(err, &target)
}

// ParseResponse checks a reply body for a device error. An empty body is
// treated as success.
func ParseResponse(command string, body []byte) error {
	if len(body) == 0 {
		return nil
	}
	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("failed to parse %s response: %w", command, err)
	}
	if resp.ErrorCode != 0 {
		return &DeviceError{Command: command, Code: resp.ErrorCode}
	}
	return nil
}

// ValidateFrame checks that a frame fits a Pixoo panel.
func ValidateFrame(frame *domain.Frame) error {
	if frame.Width != frame.Height {
		return fmt.Errorf("frame must be square, got %dx%d", frame.Width, frame.Height)
	}
	if !supportedWidths[frame.Width] {
		return fmt.Errorf("unsupported frame width %d", frame.Width)
	}
	if len(frame.Pixels) != frame.Width*frame.Height*domain.BytesPerPixel {
		return fmt.Errorf("pixel data size mismatch: expected %d, got %d",
			frame.Width*frame.Height*domain.BytesPerPixel, len(frame.Pixels))
	}
	return nil
}

// EncodeFrameToBase64 encodes frame pixels to base64 for Pixoo API.
func EncodeFrameToBase64(frame *domain.Frame) string {
	return base64.StdEncoding.EncodeToString(frame.Pixels)
}

// DecodeBase64ToFrame decodes base64 to a frame.
func DecodeBase64ToFrame(encoded string, width, height int) (*domain.Frame, error) {
	pixels, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64: %w", err)
	}
	return FrameFromPixels(pixels, width, height)
}

// FrameFromPixels wraps raw RGB bytes, such as a cached frame, in a frame.
func FrameFromPixels(pixels []byte, width, height int) (*domain.Frame, error) {
	expectedSize := width * height * domain.BytesPerPixel
	if len(pixels) != expectedSize {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", expectedSize, len(pixels))
	}
	return &domain.Frame{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}, nil
}

// CreatePixooFrameCommand creates a Draw/SendHttpGif command.
func CreatePixooFrameCommand(frame *domain.Frame, opts *FrameCommandOptions) FrameCommand {
	picID := 1
	speed := 1000

	if opts != nil {
		if opts.PicID > 0 {
			picID = opts.PicID
		}
		if opts.Speed > 0 {
			speed = opts.Speed
		}
	}

	return FrameCommand{
		Command:   "Draw/SendHttpGif",
		PicNum:    1,
		PicWidth:  frame.Width,
		PicOffset: 0,
		PicID:     picID,
		PicSpeed:  speed,
		PicData:   EncodeFrameToBase64(frame),
	}
}

// CreateResetGifIDCommand creates a Draw/ResetHttpGifId command. The device
// ignores frames whose PicID is not above the last one until it is reset.
func CreateResetGifIDCommand() PixooCommand {
	return PixooCommand{Command: "Draw/ResetHttpGifId"}
}

// CreateDeviceTimeCommand creates a Device/GetDeviceTime command.
func CreateDeviceTimeCommand() PixooCommand {
	return PixooCommand{
		Command: "Device/GetDeviceTime",
	}
}

// CreateBrightnessCommand creates a Channel/SetBrightness command.
func CreateBrightnessCommand(brightness int) BrightnessCommand {
	// Clamp to 0-100
	if brightness < 0 {
		brightness = 0
	}
	if brightness > 100 {
		brightness = 100
	}

	return BrightnessCommand{
		Command:    "Channel/SetBrightness",
		Brightness: brightness,
	}
}
