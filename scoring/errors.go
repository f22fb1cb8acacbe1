package scoring

import "github.com/pkg/errors"

// ErrInvalidArgument marks a rejected multiplier request; ledger state is unchanged
var ErrInvalidArgument = errors.New("invalid argument")
