package roomplanner

type Button int

const (
	ButtonPrimary   Button = 0
	ButtonSecondary Button = 2
)

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	}
	return "other"
}

// Event is a host input event. Coordinates are in client space, the same
// space as the surface bounds.
type Event interface {
	isEvent()
}

type PointerDown struct {
	Button Button
	X, Y   float64
}

type PointerMove struct {
	X, Y float64
}

type PointerUp struct {
	Button Button
	X, Y   float64
}

type DoubleClick struct {
	X, Y float64
}

// Wheel carries the vertical scroll delta, positive when scrolling down.
type Wheel struct {
	DeltaY float64
}

// Drop is an external drag-and-drop landing on the surface.
type Drop struct {
	X, Y float64
	Data DataTransfer
}

func (PointerDown) isEvent() {}
func (PointerMove) isEvent() {}
func (PointerUp) isEvent()   {}
func (DoubleClick) isEvent() {}
func (Wheel) isEvent()       {}
func (Drop) isEvent()        {}

// DataTransfer is the host's drag-data channel.
type DataTransfer interface {
	GetData(format string) string
}

// TransferData is a DataTransfer backed by a map.
type TransferData map[string]string

func (t TransferData) GetData(format string) string {
	return t[format]
}

type Cursor int

const (
	CursorDefault Cursor = iota
	CursorGrabbing
)

// RemovalNotice is raised after furniture is removed by the user.
type RemovalNotice struct {
	Count int `json:"count"`
}
