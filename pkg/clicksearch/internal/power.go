package internal

import (
	"github.com/holoplot/go-evdev"
	"github.com/veandco/go-sdl2/sdl"
)

// watchPowerButton reads key events from an evdev device and turns a
// power button press into an exit request. The goroutine ends when the
// device read fails, which happens once the device is closed.
func watchPowerButton(devicePath string) (func(), error) {
	dev, err := evdev.Open(devicePath)
	if err != nil {
		return nil, err
	}

	GetInternalLogger().Debug("Watching power button", "device", devicePath)

	go func() {
		for {
			ev, err := dev.ReadOne()
			if err != nil {
				GetInternalLogger().Debug("Power button watcher stopped", "error", err)
				return
			}
			if ev.Type != evdev.EV_KEY || ev.Code != evdev.KEY_POWER || ev.Value != 1 {
				continue
			}

			GetInternalLogger().Info("Power button pressed, requesting exit")
			RequestExit()
			sdl.PushEvent(&sdl.QuitEvent{Type: sdl.QUIT, Timestamp: sdl.GetTicks()})
			return
		}
	}()

	return func() { _ = dev.Close() }, nil
}
