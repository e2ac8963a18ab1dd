// Package power watches the handheld's power button through evdev and
// runs the configured suspend or shutdown path. Menus never see the power
// button; it acts even while the session loop is blocked in a grab.
package power

import (
	"os/exec"
	"time"

	"github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/braciole/internal"
)

// Config describes the power button device and behavior.
type Config struct {
	// DevicePath is the evdev node delivering power key events,
	// e.g. /dev/input/event1.
	DevicePath string
	// ButtonCode is the key code to watch; 0 means KEY_POWER.
	ButtonCode uint16
	// ShortPressMax separates a suspend tap from a shutdown hold.
	ShortPressMax time.Duration
	// SuspendCommand runs on a short press.
	SuspendCommand string
	// ShutdownCommand runs on a long press.
	ShutdownCommand string
}

// DefaultConfig matches the stock OpenDingux power button wiring.
func DefaultConfig() Config {
	return Config{
		DevicePath:      "/dev/input/event1",
		ButtonCode:      uint16(evdev.KEY_POWER),
		ShortPressMax:   2 * time.Second,
		SuspendCommand:  "/mnt/SDCARD/System/bin/suspend",
		ShutdownCommand: "poweroff",
	}
}

// Watcher owns the evdev device and the goroutine reading it.
type Watcher struct {
	device *evdev.InputDevice
	done   chan struct{}
}

// Watch opens the device and starts the read loop. Call Stop to close the
// device and end the loop.
func Watch(cfg Config) (*Watcher, error) {
	if cfg.ButtonCode == 0 {
		cfg.ButtonCode = uint16(evdev.KEY_POWER)
	}
	device, err := evdev.Open(cfg.DevicePath)
	if err != nil {
		return nil, err
	}

	w := &Watcher{device: device, done: make(chan struct{})}
	go w.loop(cfg)
	return w, nil
}

// Stop closes the device, which unblocks the read loop.
func (w *Watcher) Stop() {
	w.device.Close()
	<-w.done
}

func (w *Watcher) loop(cfg Config) {
	defer close(w.done)
	logger := internal.GetLogger()

	var pressedAt time.Time
	for {
		event, err := w.device.ReadOne()
		if err != nil {
			logger.Debug("power button read loop ending", "error", err)
			return
		}
		if event.Type != evdev.EV_KEY || event.Code != evdev.EvCode(cfg.ButtonCode) {
			continue
		}

		switch event.Value {
		case 1:
			pressedAt = time.Now()
		case 0:
			if pressedAt.IsZero() {
				continue
			}
			held := time.Since(pressedAt)
			pressedAt = time.Time{}

			command := cfg.SuspendCommand
			if held > cfg.ShortPressMax {
				command = cfg.ShutdownCommand
			}
			logger.Info("power button released", "held", held, "command", command)
			if command == "" {
				continue
			}
			if out, err := exec.Command("sh", "-c", command).CombinedOutput(); err != nil {
				logger.Error("power command failed",
					"command", command, "error", err, "output", string(out))
			}
		}
	}
}
