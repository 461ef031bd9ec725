package spectral

import "errors"

var (
	// ErrInsufficientHistory means fewer than window+bars prices were
	// supplied. The caller decides whether to shrink parameters or fall
	// back to another data source.
	ErrInsufficientHistory = errors.New("spectral: insufficient price history")

	// ErrInvalidParameters means the window, frequency count or bar count
	// violate the resolution constraint window >= 2*numFreq+2 or are
	// non-positive. Rejected before any computation starts.
	ErrInvalidParameters = errors.New("spectral: invalid parameters")
)
