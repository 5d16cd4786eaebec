package ftkit

import "fmt"

import "github.com/ftkit/ftkit/internal/ft"

// Reports a nonzero status code returned by the engine. The code is
// engine-defined; [EngineError.Message] gives the engine's description
// when one is known.
type EngineError struct {
	Code int32
}

// Human-readable description of the engine status code, or "" if the
// code is not in the known set.
func (self *EngineError) Message() string { return ft.Error(self.Code).Message() }

func (self *EngineError) Error() string {
	message := self.Message()
	if message == "" { return fmt.Sprintf("engine error 0x%02X", self.Code) }
	return fmt.Sprintf("engine error 0x%02X: %s", self.Code, message)
}

// Reports an operation invoked on a resource whose owner has already
// been destroyed, or a [Stroker] operation invoked out of sequence.
type StateError struct {
	Op     string
	Reason string
}

func (self *StateError) Error() string {
	return fmt.Sprintf("%s: %s", self.Op, self.Reason)
}

// Reports an invalid combination of optional arguments.
type ArgumentError struct {
	Op     string
	Reason string
}

func (self *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s", self.Op, self.Reason)
}

// Reports a feature that's unavailable in the current configuration,
// like an absent font-matching collaborator, an unsupported pixel
// format or a negative destination pitch.
type UnsupportedError struct {
	Op     string
	Reason string
}

func (self *UnsupportedError) Error() string {
	return fmt.Sprintf("%s: %s", self.Op, self.Reason)
}

// Reports a format-tagged object accessed through the wrong format,
// like asking a bitmap glyph for its outline.
type FormatError struct {
	Op   string
	Have GlyphFormat
	Want GlyphFormat
}

func (self *FormatError) Error() string {
	return fmt.Sprintf("%s: glyph format is %s, need %s", self.Op, self.Have, self.Want)
}

// Converts an engine status to an error, nil on success.
func engineErr(status ft.Error) error {
	if !status.IsErr() { return nil }
	return &EngineError{ Code: int32(status) }
}

func stateErr(op, reason string) error {
	return &StateError{ Op: op, Reason: reason }
}

func argErr(op, reason string) error {
	return &ArgumentError{ Op: op, Reason: reason }
}

func unsupportedErr(op, reason string) error {
	return &UnsupportedError{ Op: op, Reason: reason }
}

func formatErr(op string, have, want GlyphFormat) error {
	return &FormatError{ Op: op, Have: have, Want: want }
}

const errOwnerGone = "owning library already closed"
const errReleased = "resource already released"
