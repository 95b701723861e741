package render

// DrawOp identifies the kind of a recorded draw command.
type DrawOp int

const (
	OpCentered DrawOp = iota
	OpRotated
	OpText
)

// DrawCommand is one recorded Canvas call.
type DrawCommand struct {
	Op    DrawOp
	Image Image
	X, Y  int
	Angle float64
	Blend Blend
	Text  string
}

// DrawList is a Canvas that records calls so a tick's output can be replayed
// later, typically from the backend's Draw callback.
type DrawList struct {
	cmds []DrawCommand
}

// DrawCentered records a centred draw.
func (l *DrawList) DrawCentered(img Image, x, y int) {
	l.cmds = append(l.cmds, DrawCommand{Op: OpCentered, Image: img, X: x, Y: y})
}

// DrawRotated records a rotated draw.
func (l *DrawList) DrawRotated(img Image, x, y int, angle float64, blend Blend) {
	l.cmds = append(l.cmds, DrawCommand{Op: OpRotated, Image: img, X: x, Y: y, Angle: angle, Blend: blend})
}

// DrawText records a text draw.
func (l *DrawList) DrawText(text string, x, y int) {
	l.cmds = append(l.cmds, DrawCommand{Op: OpText, X: x, Y: y, Text: text})
}

// Reset drops all recorded commands, keeping the backing storage.
func (l *DrawList) Reset() {
	l.cmds = l.cmds[:0]
}

// Len returns the number of recorded commands.
func (l *DrawList) Len() int {
	return len(l.cmds)
}

// Commands returns the recorded commands in call order.
// The slice is only valid until the next Reset.
func (l *DrawList) Commands() []DrawCommand {
	return l.cmds
}

// Replay issues every recorded command on c in order.
func (l *DrawList) Replay(c Canvas) {
	for _, cmd := range l.cmds {
		switch cmd.Op {
		case OpCentered:
			c.DrawCentered(cmd.Image, cmd.X, cmd.Y)
		case OpRotated:
			c.DrawRotated(cmd.Image, cmd.X, cmd.Y, cmd.Angle, cmd.Blend)
		case OpText:
			c.DrawText(cmd.Text, cmd.X, cmd.Y)
		}
	}
}
