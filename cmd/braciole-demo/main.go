// Command braciole-demo hosts the menu engine in a desktop SDL window
// with a stub machine, so the full tree, remap capture and settings
// persistence can be exercised without emulator hardware.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"

	"github.com/BrandonKowalski/braciole/pkg/braciole"
	"github.com/BrandonKowalski/braciole/internal"
	"github.com/BrandonKowalski/braciole/pkg/braciole/platform/power"
	"github.com/BrandonKowalski/braciole/pkg/braciole/platform/sdlui"
)

type config struct {
	LogLevel    string `env:"BRACIOLE_LOG_LEVEL, default=info"`
	ConfigDir   string `env:"BRACIOLE_CONFIG_DIR, default=."`
	Profile     string `env:"BRACIOLE_PROFILE, default=default"`
	WindowTitle string `env:"BRACIOLE_WINDOW_TITLE, default=braciole"`
	Width       int32  `env:"BRACIOLE_WIDTH, default=640"`
	Height      int32  `env:"BRACIOLE_HEIGHT, default=480"`
	FontPath    string `env:"BRACIOLE_FONT, default=/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"`
	FontSize    int    `env:"BRACIOLE_FONT_SIZE, default=16"`

	// Theme color overrides as 0xRRGGBB hex strings; empty keeps the
	// stock palette.
	BackgroundHex string `env:"BRACIOLE_THEME_BG"`
	TextHex       string `env:"BRACIOLE_THEME_TEXT"`
	ActiveTextHex string `env:"BRACIOLE_THEME_ACTIVE"`

	// PowerDevice enables the power button watcher when set to an evdev
	// node path. Only meaningful on the handheld.
	PowerDevice string `env:"BRACIOLE_POWER_DEVICE"`
}

// themeFromConfig applies any hex overrides to the stock palette.
func themeFromConfig(cfg config) (braciole.Theme, error) {
	theme := braciole.DefaultTheme()
	for _, o := range []struct {
		hex  string
		dest *braciole.Color
	}{
		{cfg.BackgroundHex, &theme.Background},
		{cfg.TextHex, &theme.Text},
		{cfg.ActiveTextHex, &theme.ActiveText},
	} {
		if o.hex == "" {
			continue
		}
		v, err := strconv.ParseUint(strings.TrimPrefix(o.hex, "0x"), 16, 32)
		if err != nil {
			return theme, fmt.Errorf("theme color %q: %w", o.hex, err)
		}
		*o.dest = braciole.RGB(uint32(v))
	}
	return theme, nil
}

// stubMachine stands in for the emulator core.
type stubMachine struct {
	resets        int
	exitRequested bool
}

func (m *stubMachine) Reset() {
	m.resets++
	internal.GetLogger().Info("machine reset requested", "count", m.resets)
}

func (m *stubMachine) RequestExit() {
	m.exitRequested = true
	internal.GetLogger().Info("machine exit requested")
}

func run() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("loading .env: %w", err)
	}

	var cfg config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return fmt.Errorf("processing environment: %w", err)
	}
	internal.SetRawLogLevel(cfg.LogLevel)
	defer internal.CloseLogger()
	logger := internal.GetLogger()

	ui, err := sdlui.Init(sdlui.Options{
		WindowTitle: cfg.WindowTitle,
		Width:       cfg.Width,
		Height:      cfg.Height,
		FontPath:    cfg.FontPath,
		FontSize:    cfg.FontSize,
	})
	if err != nil {
		return err
	}
	defer ui.Close()

	if cfg.PowerDevice != "" {
		powerCfg := power.DefaultConfig()
		powerCfg.DevicePath = cfg.PowerDevice
		watcher, err := power.Watch(powerCfg)
		if err != nil {
			logger.Warn("power button watcher unavailable",
				"device", cfg.PowerDevice, "error", err)
		} else {
			defer watcher.Stop()
		}
	}

	settings := braciole.NewDefaultSettings()
	stats := &braciole.Stats{
		FramesEmulated: 123456,
		ROBytesPeak:    1 << 20,
		RWBytesPeak:    1 << 18,
	}
	rom := &braciole.ROMInfo{
		GameName:   "DEMO CARTRIDGE",
		GameCode:   "ADMO",
		VendorCode: "01",
	}

	root := braciole.NewMainMenu(settings, stats, rom)
	settings.LoadProfile(cfg.ConfigDir, cfg.Profile, root)

	theme, err := themeFromConfig(cfg)
	if err != nil {
		return err
	}

	machine := &stubMachine{}
	session, err := braciole.NewSession(root, braciole.SessionConfig{
		Renderer: ui.Display(),
		Input:    ui.Input(),
		Machine:  machine,
		Audio:    ui.Audio(),
		Theme:    &theme,
	})
	if err != nil {
		return err
	}

	logger.Info("menu session starting", "profile", cfg.Profile)
	if err := session.Run(); err != nil {
		return err
	}

	if err := braciole.SaveProfile(cfg.ConfigDir, cfg.Profile, root); err != nil {
		return fmt.Errorf("saving profile %s: %w", cfg.Profile, err)
	}
	logger.Info("menu session finished",
		"resets", machine.resets, "exit_requested", machine.exitRequested)
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "braciole-demo:", err)
		os.Exit(1)
	}
}
