// Package display provides the controller-side window. It polls
// game-controller and mouse-wheel input each tick and turns it into
// magnify gesture commands.
package display

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/sejin-oh/PinchPad/internal/controller"
	"github.com/sejin-oh/PinchPad/internal/input"
)

// wheelScale converts a mouse-wheel tick into an axis-like sample.
const wheelScale = 0.25

// SendCallback delivers one encoded gesture command.
type SendCallback func(eventJSON []byte)

// Pad is the Ebitengine controller window.
type Pad struct {
	mu     sync.Mutex
	status string

	mapper *controller.ZoomMapper
	onSend SendCallback

	gamepads  []ebiten.GamepadID
	lastDelta float64
}

// NewPad creates a controller pad that feeds samples through mapper and
// hands encoded commands to onSend.
func NewPad(mapper *controller.ZoomMapper, onSend SendCallback) *Pad {
	return &Pad{
		mapper: mapper,
		onSend: onSend,
		status: "waiting for connection",
	}
}

// SetStatus updates the status line (called from network goroutines).
func (p *Pad) SetStatus(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.status = s
}

// Run starts the Ebitengine game loop. Must be called from the main
// goroutine (macOS requirement).
func (p *Pad) Run() error {
	ebiten.SetWindowSize(480, 200)
	ebiten.SetWindowTitle("PinchPad Controller")
	return ebiten.RunGame(p)
}

// --- ebiten.Game interface ---

func (p *Pad) Update() error {
	sample := p.triggerSample()
	_, wheelY := ebiten.Wheel()
	sample += wheelY * wheelScale

	if ev, ok := p.mapper.Step(sample); ok {
		p.send(ev)
	}
	return nil
}

func (p *Pad) Draw(screen *ebiten.Image) {
	p.mu.Lock()
	status := p.status
	delta := p.lastDelta
	p.mu.Unlock()

	pads := len(p.gamepads)
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"PinchPad\n%s\ngamepads: %d\nlast delta: %+.3f\n\nRT zooms in, LT zooms out; mouse wheel works too.",
		status, pads, delta))
}

func (p *Pad) Layout(outsideWidth, outsideHeight int) (int, int) {
	return 480, 200
}

// --- input capture ---

// triggerSample reads the first connected gamepad: right trigger zooms in,
// left trigger zooms out.
func (p *Pad) triggerSample() float64 {
	p.gamepads = ebiten.AppendGamepadIDs(p.gamepads[:0])
	if len(p.gamepads) == 0 {
		return 0
	}
	id := p.gamepads[0]
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return 0
	}
	zoomIn := ebiten.StandardGamepadButtonValue(id, ebiten.StandardGamepadButtonFrontBottomRight)
	zoomOut := ebiten.StandardGamepadButtonValue(id, ebiten.StandardGamepadButtonFrontBottomLeft)
	return zoomIn - zoomOut
}

func (p *Pad) send(ev *input.GestureEvent) {
	if p.onSend == nil {
		return
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}

	p.mu.Lock()
	p.lastDelta = ev.Magnification
	p.mu.Unlock()

	p.onSend(data)
}
