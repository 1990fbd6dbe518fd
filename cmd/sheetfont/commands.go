package main

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/jwulff/sheetfont-go/internal/domain"
	"github.com/jwulff/sheetfont-go/internal/font"
	"github.com/jwulff/sheetfont-go/internal/format"
	"github.com/jwulff/sheetfont-go/internal/pixoo"
	"github.com/jwulff/sheetfont-go/internal/render"
	"github.com/jwulff/sheetfont-go/internal/storage"
	"github.com/spf13/pflag"
)

const (
	defaultText = "Hello"
	pixooIPKey  = "pixoo.ip"
)

// style is the appearance flags shared by preview and send.
type style struct {
	color  string
	align  string
	bounds bool
}

func (s *style) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&s.color, "color", "c", "white", "Base text color (palette name)")
	fs.StringVar(&s.align, "align", "left", "Alignment: left, center or right")
	fs.BoolVar(&s.bounds, "bounds", false, "Outline the layout bounds")
}

func parseAlign(s string) (render.Align, error) {
	switch strings.ToLower(s) {
	case "left", "":
		return render.AlignLeft, nil
	case "center", "centre":
		return render.AlignCenter, nil
	case "right":
		return render.AlignRight, nil
	}
	return 0, fmt.Errorf("unknown alignment %q", s)
}

// compose lays text out on a panel-sized frame.
func compose(f *font.Font, text string, s style) (*domain.Frame, error) {
	base, ok := format.ColorByName(strings.ToLower(s.color))
	if !ok {
		return nil, fmt.Errorf("unknown color %q", s.color)
	}
	align, err := parseAlign(s.align)
	if err != nil {
		return nil, err
	}

	opts := render.DefaultComposeOptions()
	opts.ShowBounds = s.bounds
	return render.Compose(opts, []render.Line{{
		Font:   f,
		Format: parseMarkup(unescape(text), base),
		Align:  align,
	}})
}

func previewCommand(e *env, args []string) int {
	var s style
	var noCache bool
	var pngPath string
	rest, ok := e.parse("preview", args, func(fs *pflag.FlagSet) {
		s.bind(fs)
		fs.BoolVar(&noCache, "no-cache", false, "Do not store the frame for a later send")
		fs.StringVar(&pngPath, "png", "", "Also write the frame to a PNG file")
	})
	if !ok {
		return 1
	}

	f, _, ok := e.selectFont()
	if !ok {
		return 1
	}

	text := defaultText
	if len(rest) > 0 {
		text = strings.Join(rest, " ")
	}
	frame, err := compose(f, text, s)
	if err != nil {
		fmt.Fprintf(e.stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintf(e.stdout, "%dx%d Frame Preview (%s):\n", frame.Width, frame.Height, f)
	fmt.Fprintln(e.stdout)
	printFrameASCII(e.stdout, frame)
	fmt.Fprintln(e.stdout)
	fmt.Fprintln(e.stdout, "Legend: █=bright ▓=medium ▒=dim ░=faint ·=very dim (space)=off")

	if pngPath != "" {
		if err := writePNGFile(pngPath, frame); err != nil {
			fmt.Fprintf(e.stderr, "Error writing PNG: %v\n", err)
			return 1
		}
		fmt.Fprintf(e.stdout, "Wrote %s\n", pngPath)
	}

	if !noCache {
		e.cacheFrame(frame)
	}
	return 0
}

// cacheFrame stores frame as the last preview. Failures are only logged.
func (e *env) cacheFrame(frame *domain.Frame) {
	store, ok := e.openStore()
	if !ok {
		return
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := store.CacheFrame(ctx, &storage.CachedFrame{
		Key:         storage.LastFrameKey,
		Width:       frame.Width,
		Height:      frame.Height,
		FrameData:   frame.Pixels,
		GeneratedAt: time.Now(),
	})
	if err != nil {
		e.logger.Warn("could not cache frame", "err", err)
	}
}

func sendCommand(e *env, args []string) int {
	var s style
	var brightness int
	rest, ok := e.parse("send", args, func(fs *pflag.FlagSet) {
		s.bind(fs)
		fs.IntVar(&brightness, "brightness", -1, "Set brightness 0-100 before sending")
	})
	if !ok {
		return 1
	}

	store, ok := e.openStore()
	if !ok {
		return 1
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	ip := e.cfg.PixooIP
	if len(rest) > 0 && net.ParseIP(rest[0]) != nil {
		ip, rest = rest[0], rest[1:]
	}
	if ip == "" {
		stored, err := store.GetConfig(ctx, pixooIPKey)
		if err != nil {
			fmt.Fprintln(e.stderr, "Error: IP address required")
			fmt.Fprintln(e.stderr, "Usage: sheetfont send <IP> [text]")
			return 1
		}
		ip = stored
	}

	var frame *domain.Frame
	if len(rest) > 0 {
		f, _, ok := e.selectFont()
		if !ok {
			return 1
		}
		var err error
		frame, err = compose(f, strings.Join(rest, " "), s)
		if err != nil {
			fmt.Fprintf(e.stderr, "Error: %v\n", err)
			return 1
		}
	} else {
		cached, err := store.GetCachedFrame(ctx, storage.LastFrameKey)
		if err != nil {
			if storage.IsNotFound(err) {
				fmt.Fprintln(e.stderr, "Error: no text given and no previewed frame to send")
			} else {
				fmt.Fprintf(e.stderr, "Error reading cached frame: %v\n", err)
			}
			return 1
		}
		frame, err = pixoo.FrameFromPixels(cached.FrameData, cached.Width, cached.Height)
		if err != nil {
			fmt.Fprintf(e.stderr, "Error: cached frame: %v\n", err)
			return 1
		}
	}

	fmt.Fprintf(e.stdout, "Sending frame to Pixoo at %s...\n", ip)
	client := pixoo.NewClient(ip)
	client.Logger = e.logger

	if !client.IsReachable(ctx) {
		fmt.Fprintf(e.stderr, "\nError: Cannot reach Pixoo at %s\n", ip)
		fmt.Fprintln(e.stderr, "Make sure the IP is correct and the device is powered on.")
		return 1
	}
	if brightness >= 0 {
		if err := client.SetBrightness(ctx, brightness); err != nil {
			fmt.Fprintf(e.stderr, "\nError setting brightness: %v\n", err)
			return 1
		}
	}
	if err := client.SendFrame(ctx, frame); err != nil {
		fmt.Fprintf(e.stderr, "\nError sending frame: %v\n", err)
		return 1
	}

	e.rememberDevice(ctx, store, ip)
	fmt.Fprintln(e.stdout, "Frame sent successfully!")
	return 0
}

// rememberDevice records ip as a known device and the default target.
func (e *env) rememberDevice(ctx context.Context, store storage.Store, ip string) {
	device, err := store.GetDevice(ctx, ip)
	switch {
	case storage.IsNotFound(err):
		device = storage.NewDevice(ip, ip, "Pixoo", "pixoo64")
	case err != nil:
		e.logger.Warn("could not read device", "ip", ip, "err", err)
		return
	default:
		device.LastSeen = time.Now()
	}
	if err := store.SaveDevice(ctx, device); err != nil {
		e.logger.Warn("could not save device", "ip", ip, "err", err)
	}
	if err := store.SetConfig(ctx, pixooIPKey, ip); err != nil {
		e.logger.Warn("could not save default device", "ip", ip, "err", err)
	}
}

func measureCommand(e *env, args []string) int {
	rest, ok := e.parse("measure", args, nil)
	if !ok {
		return 1
	}
	if len(rest) == 0 {
		fmt.Fprintln(e.stderr, "Usage: sheetfont measure <text>")
		return 1
	}

	f, _, ok := e.selectFont()
	if !ok {
		return 1
	}

	ft := parseMarkup(unescape(strings.Join(rest, " ")), format.White)
	out, err := f.LayoutFormat(ft, 0, 0)
	if err != nil {
		fmt.Fprintf(e.stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintf(e.stdout, "font:   %s\n", f)
	fmt.Fprintf(e.stdout, "width:  %d\n", f.Measure(ft.Text()))
	fmt.Fprintf(e.stdout, "bounds: %dx%d\n", out.Bounds.Width, out.Bounds.Height)
	fmt.Fprintf(e.stdout, "glyphs: %d\n", len(out.Placements))
	return 0
}

func hittestCommand(e *env, args []string) int {
	rest, ok := e.parse("hittest", args, nil)
	if !ok {
		return 1
	}
	if len(rest) < 2 {
		fmt.Fprintln(e.stderr, "Usage: sheetfont hittest <text> <x>")
		return 1
	}
	x, err := strconv.Atoi(rest[len(rest)-1])
	if err != nil {
		fmt.Fprintf(e.stderr, "Error: invalid x %q\n", rest[len(rest)-1])
		return 1
	}

	f, _, ok := e.selectFont()
	if !ok {
		return 1
	}

	text := unescape(strings.Join(rest[:len(rest)-1], " "))
	index := f.HitTest(text, x)
	runes := []rune(text)
	if index < len(runes) && index >= 0 {
		fmt.Fprintf(e.stdout, "index: %d (%q)\n", index, runes[index])
	} else {
		fmt.Fprintf(e.stdout, "index: %d\n", index)
	}
	return 0
}

func catalogCommand(e *env, args []string) int {
	if _, ok := e.parse("catalog", args, nil); !ok {
		return 1
	}

	reg, err := e.cfg.Registry()
	if err != nil {
		fmt.Fprintf(e.stderr, "Error loading fonts: %v\n", err)
		return 1
	}

	store, ok := e.openStore()
	if !ok {
		return 1
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, f := range reg.Fonts() {
		if err := store.SaveFontMetrics(ctx, storage.NewFontMetrics(f)); err != nil {
			fmt.Fprintf(e.stderr, "Error saving %s: %v\n", f, err)
			return 1
		}
	}

	metrics, err := store.ListFontMetrics(ctx)
	if err != nil {
		fmt.Fprintf(e.stderr, "Error listing fonts: %v\n", err)
		return 1
	}

	fmt.Fprintf(e.stdout, "%-14s %6s %6s %6s %6s\n", "FONT", "HEIGHT", "GLYPHS", "MIN W", "MAX W")
	for _, m := range metrics {
		lo, hi := widthRange(m.Widths)
		fmt.Fprintf(e.stdout, "%-14s %6d %6d %6d %6d\n", m.Name(), m.CellHeight, len(m.Widths), lo, hi)
	}
	return 0
}

func widthRange(widths []int) (int, int) {
	if len(widths) == 0 {
		return 0, 0
	}
	lo, hi := widths[0], widths[0]
	for _, w := range widths[1:] {
		lo = min(lo, w)
		hi = max(hi, w)
	}
	return lo, hi
}

func configCommand(e *env, args []string) int {
	rest, ok := e.parse("config", args, nil)
	if !ok {
		return 1
	}
	usage := func() int {
		fmt.Fprintln(e.stderr, "Usage: sheetfont config get <key> | set <key> <value> | delete <key>")
		return 1
	}
	if len(rest) < 2 {
		return usage()
	}

	store, ok := e.openStore()
	if !ok {
		return 1
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	key := rest[1]
	switch rest[0] {
	case "get":
		value, err := store.GetConfig(ctx, key)
		if storage.IsNotFound(err) {
			fmt.Fprintf(e.stderr, "%s is not set\n", key)
			return 1
		}
		if err != nil {
			fmt.Fprintf(e.stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintln(e.stdout, value)
	case "set":
		if len(rest) < 3 {
			return usage()
		}
		if err := store.SetConfig(ctx, key, strings.Join(rest[2:], " ")); err != nil {
			fmt.Fprintf(e.stderr, "Error: %v\n", err)
			return 1
		}
	case "delete":
		if err := store.DeleteConfig(ctx, key); err != nil {
			fmt.Fprintf(e.stderr, "Error: %v\n", err)
			return 1
		}
	default:
		return usage()
	}
	return 0
}

func devicesCommand(e *env, args []string) int {
	rest, ok := e.parse("devices", args, nil)
	if !ok {
		return 1
	}

	store, ok := e.openStore()
	if !ok {
		return 1
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if len(rest) == 2 && rest[0] == "forget" {
		if err := store.DeleteDevice(ctx, rest[1]); err != nil {
			fmt.Fprintf(e.stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}
	if len(rest) > 0 {
		fmt.Fprintln(e.stderr, "Usage: sheetfont devices [forget <id>]")
		return 1
	}

	devices, err := store.GetDevices(ctx)
	if err != nil {
		fmt.Fprintf(e.stderr, "Error: %v\n", err)
		return 1
	}
	if len(devices) == 0 {
		fmt.Fprintln(e.stdout, "No devices yet. Send a frame with: sheetfont send <IP>")
		return 0
	}
	for i, d := range devices {
		fmt.Fprintf(e.stdout, "  %d. %s - %s (last seen %s)\n", i+1, d.Name, d.IP, d.LastSeen.Format(time.DateTime))
	}
	return 0
}
