package httpadapter

import (
	"net/http"

	"github.com/MaanyaGupta/Document-Text-summariser/internal/core/domain"
)

func mapErrorToHTTPStatus(err error) int {
	switch {
	case domain.IsKind(err, domain.ErrEmptyInput),
		domain.IsKind(err, domain.ErrInvalidLength),
		domain.IsKind(err, domain.ErrUnknownMode),
		domain.IsKind(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case domain.IsKind(err, domain.ErrMissingCredential):
		return http.StatusUnauthorized
	case domain.IsKind(err, domain.ErrDocumentNotFound),
		domain.IsKind(err, domain.ErrSummaryNotFound):
		return http.StatusNotFound
	case domain.IsKind(err, domain.ErrRemoteService):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
