package anim

import "fmt"

// InvalidSheetError is returned when a sheet cannot hold the requested frames.
type InvalidSheetError struct {
	SheetWidth  int
	SheetHeight int
	Frame       Size
	Count       int
}

func (e *InvalidSheetError) Error() string {
	return fmt.Sprintf("invalid sheet: %dx%d cannot hold %d frames of %dx%d",
		e.SheetWidth, e.SheetHeight, e.Count, e.Frame.W, e.Frame.H)
}

// UnknownStateError is returned when a state name has no animation.
type UnknownStateError struct {
	State string
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("unknown animation state %q", e.State)
}
