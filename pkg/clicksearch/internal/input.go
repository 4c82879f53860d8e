package internal

import (
	"github.com/anunobi/clicksearch/pkg/clicksearch/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// InputEvent is an SDL event reduced to what the screens care about.
// Exactly one of Button, Text, Backspace, Click or Quit is meaningful.
type InputEvent struct {
	Button    constants.VirtualButton
	Pressed   bool
	Repeat    bool
	Text      string
	Backspace bool
	Click     bool
	X, Y      int32 // Click position in logical coordinates
	Quit      bool
}

// InputProcessor maps keyboard keys and controller buttons onto virtual
// buttons, and tracks hot-plugged controllers.
type InputProcessor struct {
	keys        map[sdl.Keycode]constants.VirtualButton
	buttons     map[int]constants.VirtualButton
	controllers map[sdl.JoystickID]*sdl.GameController
}

var inputProcessor *InputProcessor

func InitInputProcessor() {
	inputProcessor = NewInputProcessor()
	for i := 0; i < sdl.NumJoysticks(); i++ {
		inputProcessor.openController(i)
	}
}

func GetInputProcessor() *InputProcessor {
	return inputProcessor
}

func NewInputProcessor() *InputProcessor {
	return &InputProcessor{
		keys: map[sdl.Keycode]constants.VirtualButton{
			sdl.K_UP:     constants.VirtualButtonUp,
			sdl.K_DOWN:   constants.VirtualButtonDown,
			sdl.K_LEFT:   constants.VirtualButtonLeft,
			sdl.K_RIGHT:  constants.VirtualButtonRight,
			sdl.K_RETURN: constants.VirtualButtonA,
			sdl.K_ESCAPE: constants.VirtualButtonB,
			sdl.K_DELETE: constants.VirtualButtonX,
			sdl.K_TAB:    constants.VirtualButtonY,
			sdl.K_F1:     constants.VirtualButtonMenu,
			sdl.K_F2:     constants.VirtualButtonStart,
			sdl.K_F3:     constants.VirtualButtonSelect,
		},
		buttons: map[int]constants.VirtualButton{
			int(sdl.CONTROLLER_BUTTON_DPAD_UP):    constants.VirtualButtonUp,
			int(sdl.CONTROLLER_BUTTON_DPAD_DOWN):  constants.VirtualButtonDown,
			int(sdl.CONTROLLER_BUTTON_DPAD_LEFT):  constants.VirtualButtonLeft,
			int(sdl.CONTROLLER_BUTTON_DPAD_RIGHT): constants.VirtualButtonRight,
			int(sdl.CONTROLLER_BUTTON_A):          constants.VirtualButtonA,
			int(sdl.CONTROLLER_BUTTON_B):          constants.VirtualButtonB,
			int(sdl.CONTROLLER_BUTTON_X):          constants.VirtualButtonX,
			int(sdl.CONTROLLER_BUTTON_Y):          constants.VirtualButtonY,
			int(sdl.CONTROLLER_BUTTON_START):      constants.VirtualButtonStart,
			int(sdl.CONTROLLER_BUTTON_BACK):       constants.VirtualButtonSelect,
			int(sdl.CONTROLLER_BUTTON_GUIDE):      constants.VirtualButtonMenu,
		},
		controllers: make(map[sdl.JoystickID]*sdl.GameController),
	}
}

// Process translates one SDL event. ok is false for events that carry
// nothing the screens use.
func (p *InputProcessor) Process(event sdl.Event) (InputEvent, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		RequestExit()
		return InputEvent{Quit: true}, true

	case *sdl.TextInputEvent:
		text := e.GetText()
		if text == "" {
			return InputEvent{}, false
		}
		return InputEvent{Text: text}, true

	case *sdl.KeyboardEvent:
		pressed := e.Type == sdl.KEYDOWN
		if e.Keysym.Sym == sdl.K_BACKSPACE {
			return InputEvent{Backspace: true}, pressed
		}
		button, ok := p.keys[e.Keysym.Sym]
		if !ok {
			return InputEvent{}, false
		}
		return InputEvent{Button: button, Pressed: pressed, Repeat: e.Repeat != 0}, true

	case *sdl.ControllerButtonEvent:
		button, ok := p.buttons[int(e.Button)]
		if !ok {
			return InputEvent{}, false
		}
		return InputEvent{Button: button, Pressed: e.Type == sdl.CONTROLLERBUTTONDOWN}, true

	case *sdl.MouseButtonEvent:
		if e.Type != sdl.MOUSEBUTTONDOWN || e.Button != uint8(sdl.BUTTON_LEFT) {
			return InputEvent{}, false
		}
		return InputEvent{Click: true, X: e.X, Y: e.Y}, true

	case *sdl.ControllerDeviceEvent:
		switch e.Type {
		case sdl.CONTROLLERDEVICEADDED:
			p.openController(int(e.Which))
		case sdl.CONTROLLERDEVICEREMOVED:
			p.closeController(sdl.JoystickID(e.Which))
		}
	}

	return InputEvent{}, false
}

func (p *InputProcessor) openController(index int) {
	if !sdl.IsGameController(index) {
		return
	}
	controller := sdl.GameControllerOpen(index)
	if controller == nil {
		GetInternalLogger().Warn("Failed to open controller", "index", index, "error", sdl.GetError())
		return
	}
	id := controller.Joystick().InstanceID()
	p.controllers[id] = controller
	GetInternalLogger().Debug("Controller connected", "name", controller.Name(), "id", id)
}

func (p *InputProcessor) closeController(id sdl.JoystickID) {
	if controller, ok := p.controllers[id]; ok {
		controller.Close()
		delete(p.controllers, id)
	}
}

// CloseAllControllers releases every open controller.
func CloseAllControllers() {
	if inputProcessor == nil {
		return
	}
	for id := range inputProcessor.controllers {
		inputProcessor.closeController(id)
	}
}
