package sampler

import "errors"

// ErrROITooSmall is returned when the ROI contains fewer spels than the
// requested number of seeds N0 — Random oversampling cannot terminate.
var ErrROITooSmall = errors.New("sampler: ROI has fewer spels than requested seed count")

// ErrGridStrideTooSmall is returned when Grid oversampling's computed
// stride along any axis falls below one spel — spec.md §9's Open Question,
// resolved as fatal rather than silently clamped.
var ErrGridStrideTooSmall = errors.New("sampler: grid stride below one spel along an axis")
