package browse

import (
	"errors"
	"net/http"
	"strings"

	"github.com/odatools/catalog-browser/app/auth"
	"github.com/odatools/catalog-browser/app/client"
	"github.com/odatools/catalog-browser/app/odata"
)

const (
	logonFailedMessage = "Logon failed"
	notFoundMessage    = "Service not found. This may be because the service has been defined, but not activated."
)

// classify maps a completed HTTP exchange onto the error taxonomy, first
// match wins. Only 500 responses carry a machine-readable error envelope, so
// only that path pays the cost of secondary parsing; 401 and 404 carry fixed
// messages and their bodies are discarded.
func classify(stage Stage, res *client.Result) *Error {
	switch res.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized:
		return &Error{Kind: KindAuthRejected, Stage: stage, Status: res.StatusCode, Message: logonFailedMessage}
	case http.StatusNotFound:
		return &Error{Kind: KindNotFound, Stage: stage, Status: res.StatusCode, Message: notFoundMessage}
	case http.StatusInternalServerError:
		return &Error{Kind: KindProtocolError, Stage: stage, Status: res.StatusCode, Message: protocolErrorMessage(res.Body)}
	default:
		return &Error{Kind: KindUnclassified, Stage: stage, Status: res.StatusCode, Message: string(res.Body)}
	}
}

// protocolErrorMessage extracts the message from an OData error envelope. A
// body that does not parse as an envelope yields the parse error text, never
// the raw body.
func protocolErrorMessage(body []byte) string {
	odataErr, err := odata.DecodeError(body)
	if err != nil {
		return err.Error()
	}
	return strings.TrimSpace(odataErr.Message.Text)
}

// fetchError normalizes a fetcher error: a missing credential is its own
// kind, everything else means the request never reached the protocol.
func fetchError(stage Stage, err error) *Error {
	if errors.Is(err, auth.ErrMissingCredential) {
		return &Error{Kind: KindMissingCredential, Stage: stage, Message: err.Error(), cause: err}
	}
	return &Error{Kind: KindTransport, Stage: stage, Message: err.Error(), cause: err}
}
