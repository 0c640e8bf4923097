package starknet

import "github.com/pkg/errors"

// Shape validation failures at the JSON boundary are reported with one of
// these two kinds. Use errors.Is to match them.
var (
	ErrMalformedRequest  = errors.New("malformed request")
	ErrMalformedResponse = errors.New("malformed response")
)

func malformedRequest(format string, args ...any) error {
	return errors.Wrapf(ErrMalformedRequest, format, args...)
}

func malformedResponse(format string, args ...any) error {
	return errors.Wrapf(ErrMalformedResponse, format, args...)
}

// asMalformed tags err with kind unless it already carries one of the
// malformed kinds.
func asMalformed(kind, err error) error {
	if err == nil || errors.Is(err, ErrMalformedRequest) || errors.Is(err, ErrMalformedResponse) {
		return err
	}
	return errors.Wrap(kind, err.Error())
}
