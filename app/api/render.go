package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/odatools/catalog-browser/app/browse"
)

// statusFor maps a pipeline outcome onto the HTTP status surfaced to the
// user. Transport failures never received an upstream status and always map
// to 502 rather than being derived from the underlying error.
func statusFor(err *browse.Error) int {
	switch err.Kind {
	case browse.KindAuthRejected:
		return http.StatusUnauthorized
	case browse.KindNotFound:
		return http.StatusNotFound
	case browse.KindTransport:
		return http.StatusBadGateway
	case browse.KindUnclassified:
		if err.Status > 0 {
			return err.Status
		}
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) renderError(c *gin.Context, vm viewModel, err error) {
	var berr *browse.Error
	if !errors.As(err, &berr) {
		berr = &browse.Error{Kind: browse.KindUnclassified, Message: err.Error()}
	}

	slog.Error("Pipeline failed",
		"stage", string(berr.Stage),
		"kind", berr.Kind.String(),
		"status", berr.Status)

	vm.ErrMsg = berr.Message
	c.HTML(statusFor(berr), "index.html", vm)
}
