package browse

import "fmt"

// Kind classifies a pipeline failure. Every stage maps its raw outcome into
// exactly one kind before propagating; no transport or decode error type
// crosses the package boundary unwrapped.
type Kind int

const (
	KindMissingCredential Kind = iota
	KindTransport
	KindAuthRejected
	KindNotFound
	KindProtocolError
	KindUnclassified
	KindMissingCollection
	KindEmptyFeed
	KindDecodeFailure
)

func (k Kind) String() string {
	switch k {
	case KindMissingCredential:
		return "missing_credential"
	case KindTransport:
		return "transport_failure"
	case KindAuthRejected:
		return "auth_rejected"
	case KindNotFound:
		return "not_found"
	case KindProtocolError:
		return "protocol_error"
	case KindUnclassified:
		return "unclassified_http"
	case KindMissingCollection:
		return "missing_collection"
	case KindEmptyFeed:
		return "empty_feed"
	case KindDecodeFailure:
		return "decode_failure"
	default:
		return "unknown"
	}
}

// Stage identifies where in the pipeline a failure occurred.
type Stage string

const (
	StageDiscovery   Stage = "discovery"
	StageCollection  Stage = "collection"
	StageCatalogFeed Stage = "catalog_feed"
	StageServiceFeed Stage = "service_feed"
	StageMetadata    Stage = "metadata"
)

// Error is the single terminal failure value of a pipeline run. Status is the
// upstream HTTP status when a response was received, 0 otherwise.
type Error struct {
	Kind    Kind
	Stage   Stage
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.Stage != "" {
		return fmt.Sprintf("%s: %s: %s", e.Stage, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}
