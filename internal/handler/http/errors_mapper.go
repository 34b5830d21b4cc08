package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-gateway/internal/adapter"
	"github.com/MKhiriev/go-user-gateway/internal/app"
	"github.com/MKhiriev/go-user-gateway/internal/service"
	"github.com/MKhiriev/go-user-gateway/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidUserID: http.StatusNotFound,

	service.ErrHashingPassword: http.StatusInternalServerError,

	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrEmailAlreadyExists: http.StatusUnprocessableEntity,
	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// StatusFromErrorKind maps the kind of a failed upstream call to the status
// answered to the client: 503 when the upstream could not be reached in
// time, 500 otherwise.
func StatusFromErrorKind(kind adapter.ErrorKind) int {
	switch kind {
	case adapter.KindConnectionFailure, adapter.KindTimeout:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// LabelFromErrorKind returns the category label sent with a failed upstream
// call.
func LabelFromErrorKind(kind adapter.ErrorKind) string {
	switch kind {
	case adapter.KindConnectionFailure, adapter.KindTimeout:
		return app.MsgConnectionFailure
	default:
		return app.MsgUnexpectedError
	}
}
