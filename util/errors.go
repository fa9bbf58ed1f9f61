package util

import (
	"net/url"

	"github.com/pkg/errors"
)

type Error struct {
	Message string
}

func (err *Error) Error() string {
	return err.Message
}

var (
	ErrMediaNotFound = &Error{Message: "no embeddable media found for this link"}
)

// IsTransportError reports whether err originates in the HTTP layer:
// a connection/timeout failure from net/http or a non-2xx response.
// Classification failures (ErrMediaNotFound) are not transport errors.
func IsTransportError(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}
