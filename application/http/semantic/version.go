package semantic

import (
	"http-message/application/util/rule"

	"github.com/pkg/errors"
)

const DefaultProtocolVersion = "1.1"

// Version must be dot separated digits, such as "1.1" or "2.0".
func assertValidProtocolVersion(version string) error {
	if !rule.IsDotDecimal(version) {
		return errors.Wrapf(ErrInvalidProtocolVersion, "%q", version)
	}
	return nil
}
