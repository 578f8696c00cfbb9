package orient

import "errors"

// Sentinel errors for the distinct failure modes of orientation estimation.
// They are compared with errors.Is; wrapped messages carry the specifics.
var (
	// ErrInputCount means the wrong number of points was supplied for the
	// requested workflow.
	ErrInputCount = errors.New("wrong number of input points")

	// ErrDegenerateGeometry means a required direction vector has zero
	// length (coincident points), so no bearing is defined.
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// ErrNoCandidates means a nearest-candidate search was given nothing
	// to search, or no candidate passed the filter.
	ErrNoCandidates = errors.New("no candidates")
)
