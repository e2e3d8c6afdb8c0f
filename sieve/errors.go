package sieve

import "github.com/AdguardTeam/golibs/errors"

// ErrOverflow is the error that the sieve panics with when a bound or the
// bitmap size would exceed the range of int.
const ErrOverflow errors.Error = "integer overflow"
