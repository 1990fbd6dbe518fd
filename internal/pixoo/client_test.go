package pixoo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/jwulff/sheetfont-go/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a fake device that keeps every decoded command.
type recorder struct {
	mu       sync.Mutex
	commands []map[string]any
	reply    string
}

func (rec *recorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var cmd map[string]any
	_ = json.NewDecoder(r.Body).Decode(&cmd)

	rec.mu.Lock()
	rec.commands = append(rec.commands, cmd)
	reply := rec.reply
	rec.mu.Unlock()

	if reply == "" {
		reply = `{"error_code":0}`
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(reply))
}

func (rec *recorder) names() []string {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	names := make([]string, len(rec.commands))
	for i, cmd := range rec.commands {
		names[i], _ = cmd["Command"].(string)
	}
	return names
}

func (rec *recorder) last() map[string]any {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.commands[len(rec.commands)-1]
}

func TestNewClient(t *testing.T) {
	client := NewClient("192.168.1.100")

	assert.Equal(t, "192.168.1.100", client.IP)
	assert.Equal(t, DefaultPort, client.Port)
	assert.NotNil(t, client.HTTPClient)
}

func TestNewClientWithPort(t *testing.T) {
	client := NewClientWithPort("192.168.1.100", 8080)

	assert.Equal(t, "192.168.1.100", client.IP)
	assert.Equal(t, 8080, client.Port)
}

func TestClientEndpoint(t *testing.T) {
	client := NewClient("192.168.1.100")
	assert.Equal(t, "http://192.168.1.100:80/post", client.Endpoint())

	clientCustomPort := NewClientWithPort("192.168.1.100", 8080)
	assert.Equal(t, "http://192.168.1.100:8080/post", clientCustomPort.Endpoint())
}

func TestClientSendFrame(t *testing.T) {
	rec := &recorder{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		rec.ServeHTTP(w, r)
	}))
	defer server.Close()

	client := newTestClient(server)

	frame := domain.NewFrameWithColor(64, 64, domain.NewRGB(255, 0, 0))
	err := client.SendFrame(context.Background(), frame)

	require.NoError(t, err)
	assert.Equal(t, []string{"Draw/ResetHttpGifId", "Draw/SendHttpGif"}, rec.names())
	last := rec.last()
	assert.Equal(t, float64(64), last["PicWidth"])
	assert.Equal(t, float64(1), last["PicID"])
	assert.NotEmpty(t, last["PicData"])
}

func TestClientSendFrameSequence(t *testing.T) {
	rec := &recorder{}
	server := httptest.NewServer(rec)
	defer server.Close()

	client := newTestClient(server)
	frame := domain.NewFrame(64, 64)

	require.NoError(t, client.SendFrame(context.Background(), frame))
	require.NoError(t, client.SendFrame(context.Background(), frame))

	// the sequence is reset only once
	assert.Equal(t, []string{"Draw/ResetHttpGifId", "Draw/SendHttpGif", "Draw/SendHttpGif"}, rec.names())
	assert.Equal(t, float64(2), rec.last()["PicID"])
}

func TestClientSendFrameExplicitPicID(t *testing.T) {
	rec := &recorder{}
	server := httptest.NewServer(rec)
	defer server.Close()

	client := newTestClient(server)
	err := client.SendFrameWithOptions(context.Background(), domain.NewFrame(64, 64), &FrameCommandOptions{PicID: 42, Speed: 500})

	require.NoError(t, err)
	assert.Equal(t, []string{"Draw/SendHttpGif"}, rec.names())
	assert.Equal(t, float64(42), rec.last()["PicID"])
	assert.Equal(t, float64(500), rec.last()["PicSpeed"])
}

func TestClientSendFrameInvalid(t *testing.T) {
	rec := &recorder{}
	server := httptest.NewServer(rec)
	defer server.Close()

	client := newTestClient(server)
	err := client.SendFrame(context.Background(), domain.NewFrame(64, 32))

	assert.Error(t, err)
	assert.Empty(t, rec.names())
}

func TestClientSendFrameError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server)
	frame := domain.NewFrame(64, 64)

	err := client.SendFrame(context.Background(), frame)
	assert.Error(t, err)
}

func TestClientDeviceError(t *testing.T) {
	rec := &recorder{reply: `{"error_code":7}`}
	server := httptest.NewServer(rec)
	defer server.Close()

	client := newTestClient(server)
	err := client.SetBrightness(context.Background(), 50)

	assert.True(t, IsDeviceError(err))
}

func TestClientSendFrameTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(server)
	client.HTTPClient.Timeout = 50 * time.Millisecond

	frame := domain.NewFrame(64, 64)
	ctx := context.Background()

	err := client.SendFrame(ctx, frame)
	assert.Error(t, err)
}

func TestClientGetDeviceTime(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var cmd PixooCommand
		_ = json.NewDecoder(r.Body).Decode(&cmd)
		assert.Equal(t, "Device/GetDeviceTime", cmd.Command)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"error_code":0,"UTCTime":1706000000}`))
	}))
	defer server.Close()

	client := newTestClient(server)
	resp, err := client.GetDeviceTime(context.Background())

	require.NoError(t, err)
	assert.Contains(t, string(resp), "UTCTime")
}

func TestClientSetBrightness(t *testing.T) {
	rec := &recorder{}
	server := httptest.NewServer(rec)
	defer server.Close()

	client := newTestClient(server)
	err := client.SetBrightness(context.Background(), 75)

	require.NoError(t, err)
	assert.Equal(t, "Channel/SetBrightness", rec.last()["Command"])
	assert.Equal(t, float64(75), rec.last()["Brightness"])
}

func TestClientIsReachable(t *testing.T) {
	server := httptest.NewServer(&recorder{})
	defer server.Close()

	client := newTestClient(server)
	reachable := client.IsReachable(context.Background())

	assert.True(t, reachable)
}

func TestClientIsReachableFailure(t *testing.T) {
	// Use a closed server
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := newTestClient(server)
	client.HTTPClient.Timeout = 100 * time.Millisecond

	reachable := client.IsReachable(context.Background())
	assert.False(t, reachable)
}

// newTestClient creates a client configured to use a test server
func newTestClient(server *httptest.Server) *Client {
	client := NewClient(server.Listener.Addr().String())
	client.HTTPClient = server.Client()
	client.testURL = server.URL + "/post"
	return client
}
