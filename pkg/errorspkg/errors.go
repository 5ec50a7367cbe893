// Package errorspkg provides common app errors.
package errorspkg

import "errors"

// ErrInternal indicates internal server error. Storage layer failures are
// collapsed into it so that business rule rejections stay distinguishable.
var ErrInternal = errors.New("internal")
