// SPDX-License-Identifier: MIT

package qpca

import "errors"

// ErrInvalidArgument is the shared category of every input validation
// failure in this module. Package sentinels wrap it.
var ErrInvalidArgument = errors.New("qpca: invalid argument")
