package server

import (
	stderrors "errors"
	"net/http"

	"github.com/matzehuels/depvis/pkg/depgraph"
	"github.com/matzehuels/depvis/pkg/errors"
	"github.com/matzehuels/depvis/pkg/integrations"
)

// statusFor maps an error to an HTTP status. An index miss is 404 only when
// it concerns pkg itself; a missing transitive dependency is a failed build.
func statusFor(err error, pkg string) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidPackage, errors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	}

	if stderrors.Is(err, integrations.ErrNotFound) {
		var be *depgraph.BuildError
		if !stderrors.As(err, &be) || be.Package == pkg {
			return http.StatusNotFound
		}
	}

	switch errors.GetCode(err) {
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeSource, errors.ErrCodeConstruction, errors.ErrCodeNetwork:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
