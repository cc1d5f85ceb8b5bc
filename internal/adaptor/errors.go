package adaptor

import (
	"errors"
	"net/http"

	"trip-booking/internal/usecase"
	"trip-booking/pkg/utils"
)

// writeServiceError maps a service failure onto the HTTP envelope. The
// mapping keys on the error's Kind, never on its message text.
func writeServiceError(w http.ResponseWriter, err error) {
	var svcErr *usecase.Error
	if !errors.As(err, &svcErr) {
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	switch svcErr.Kind {
	case usecase.KindValidation:
		utils.ResponseBadRequest(w, svcErr.Message, svcErr.Fields)
	case usecase.KindUnauthenticated:
		utils.ResponseUnauthorized(w, svcErr.Message)
	case usecase.KindForbidden:
		utils.ResponseForbidden(w, svcErr.Message)
	case usecase.KindNotFound:
		utils.ResponseNotFound(w, svcErr.Message)
	case usecase.KindConflict:
		utils.ResponseConflict(w, svcErr.Message)
	default:
		utils.ResponseInternalError(w, "Internal server error")
	}
}
