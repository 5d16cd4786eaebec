package ftkit

import "github.com/ftkit/ftkit/internal/ft"

// A handle to an initialized instance of the font-rendering engine.
// One per process is the normal setup, though multiple are legal.
//
// The library owns every resource created against it. [Library.Close]
// must be sequenced after the destruction of all such resources;
// wrappers that outlive it detect the teardown and turn their own
// release into a no-op, but data accesses on them fail with
// [StateError].
type Library struct {
	procs  *ft.Procs
	handle ft.Library
	alive  bool

	matcher *faceMatcher
}

// Initializes the engine from the system's shared library and returns
// a handle to it.
func Init() (*Library, error) {
	procs, err := ft.Load()
	if err != nil { return nil, unsupportedErr("ftkit.Init", err.Error()) }
	return initWith(procs)
}

func initWith(procs *ft.Procs) (*Library, error) {
	var handle ft.Library
	if err := engineErr(procs.InitFreeType(&handle)); err != nil { return nil, err }
	return &Library{ procs: procs, handle: handle, alive: true }, nil
}

// Shuts the engine instance down. Every resource created against this
// library must already be closed. Calling Close twice is a no-op.
func (self *Library) Close() error {
	if !self.alive { return nil }
	self.alive = false
	return engineErr(self.procs.DoneFreeType(self.handle))
}

// The engine's version triple.
func (self *Library) Version() (major, minor, patch int) {
	if !self.alive { return 0, 0, 0 }
	var maj, min, pat int32
	self.procs.LibraryVersion(self.handle, &maj, &min, &pat)
	return int(maj), int(min), int(pat)
}

// Loads the face at the given index of a font file. Most font files
// hold a single face at index 0.
func (self *Library) NewFace(path string, index int) (*Face, error) {
	if !self.alive { return nil, stateErr("Library.NewFace", errReleased) }
	var rec *ft.FaceRec
	err := engineErr(self.procs.NewFace(self.handle, path, ft.Long(index), &rec))
	if err != nil { return nil, err }
	return newFace(self, rec), nil
}
