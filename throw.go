package geom

import "github.com/pkg/errors"

// Threading error returns through every level of the triangulation scan
// would add a ton of complexity to the code. Instead, internal failures
// panic with a GeometryError, and the public entry points recover to
// convert it back into an ordinary error.

type GeometryError error

// Panic with a GeometryError.
func fatalf(format string, args ...interface{}) {
	panic(GeometryError(errors.Errorf(format, args...)))
}

// HandleGeomPanicRecover converts a recovered GeometryError back into an
// error return. A panic that isn't an error value is re-raised untouched.
// Use it in a deferred handler around code that may throw:
//
//	defer func() {
//		if recoveredErr := HandleGeomPanicRecover(recover()); recoveredErr != nil {
//			err = recoveredErr
//		}
//	}()
func HandleGeomPanicRecover(r interface{}) error {
	if r != nil {
		if geometryError, ok := r.(GeometryError); ok {
			return geometryError
		}
		panic(r)
	}
	return nil
}
