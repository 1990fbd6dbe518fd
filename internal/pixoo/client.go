package pixoo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/jwulff/sheetfont-go/internal/domain"
)

// DefaultPort is the default Pixoo HTTP API port.
const DefaultPort = 80

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 5 * time.Second

// maxPicID is where the device stops accepting new ids without a reset.
const maxPicID = 1000

// Client is an HTTP client for communicating with Pixoo devices.
type Client struct {
	IP         string
	Port       int
	HTTPClient *http.Client
	// Logger receives per-command debug output. Nil uses slog.Default.
	Logger  *slog.Logger
	testURL string // For testing with httptest

	mu    sync.Mutex
	picID int // last PicID sent, 0 before the first reset
}

// NewClient creates a new Pixoo client with default settings.
func NewClient(ip string) *Client {
	return NewClientWithPort(ip, DefaultPort)
}

// NewClientWithPort creates a new Pixoo client with a custom port.
func NewClientWithPort(ip string, port int) *Client {
	return &Client{
		IP:   ip,
		Port: port,
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// Endpoint returns the full API endpoint URL.
func (c *Client) Endpoint() string {
	if c.testURL != "" {
		return c.testURL
	}
	return fmt.Sprintf("http://%s:%d/post", c.IP, c.Port)
}

func (c *Client) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// sendCommand sends a command to the Pixoo device and checks its error_code.
func (c *Client) sendCommand(ctx context.Context, name string, command any) ([]byte, error) {
	data, err := json.Marshal(command)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal command: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	c.logger().Debug("pixoo command", "command", name, "status", resp.StatusCode,
		"bytes", len(data), "elapsed", time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(body))
	}
	if err := ParseResponse(name, body); err != nil {
		return nil, err
	}

	return body, nil
}

// ResetGifID resets the device's frame id sequence.
func (c *Client) ResetGifID(ctx context.Context) error {
	cmd := CreateResetGifIDCommand()
	if _, err := c.sendCommand(ctx, cmd.Command, cmd); err != nil {
		return err
	}
	c.mu.Lock()
	c.picID = 0
	c.mu.Unlock()
	return nil
}

// nextPicID returns the id for the next frame, resetting the device
// sequence before the first frame and when it runs out.
func (c *Client) nextPicID(ctx context.Context) (int, error) {
	c.mu.Lock()
	needsReset := c.picID == 0 || c.picID >= maxPicID
	c.mu.Unlock()

	if needsReset {
		if err := c.ResetGifID(ctx); err != nil {
			return 0, err
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.picID++
	return c.picID, nil
}

// SendFrame sends a frame to the Pixoo device.
func (c *Client) SendFrame(ctx context.Context, frame *domain.Frame) error {
	return c.SendFrameWithOptions(ctx, frame, nil)
}

// SendFrameWithOptions sends a frame with custom options. A zero PicID
// takes the next id in the client's sequence.
func (c *Client) SendFrameWithOptions(ctx context.Context, frame *domain.Frame, opts *FrameCommandOptions) error {
	if err := ValidateFrame(frame); err != nil {
		return err
	}

	o := FrameCommandOptions{}
	if opts != nil {
		o = *opts
	}
	if o.PicID <= 0 {
		id, err := c.nextPicID(ctx)
		if err != nil {
			return fmt.Errorf("failed to reset frame ids: %w", err)
		}
		o.PicID = id
	}

	cmd := CreatePixooFrameCommand(frame, &o)
	_, err := c.sendCommand(ctx, cmd.Command, cmd)
	return err
}

// GetDeviceTime queries the device time.
func (c *Client) GetDeviceTime(ctx context.Context) ([]byte, error) {
	cmd := CreateDeviceTimeCommand()
	return c.sendCommand(ctx, cmd.Command, cmd)
}

// SetBrightness sets the display brightness (0-100).
func (c *Client) SetBrightness(ctx context.Context, brightness int) error {
	cmd := CreateBrightnessCommand(brightness)
	_, err := c.sendCommand(ctx, cmd.Command, cmd)
	return err
}

// IsReachable checks if the device is reachable.
func (c *Client) IsReachable(ctx context.Context) bool {
	_, err := c.GetDeviceTime(ctx)
	return err == nil
}
