package sui

import (
	"errors"
	"strings"

	"github.com/vietddude/suiscope/internal/infra/rpc"
)

// ErrNotFound is wrapped by entity lookups when the node reports that the
// digest or object id does not exist.
var ErrNotFound = errors.New("not found")

var notFoundPatterns = []string{
	"could not find",
	"not found",
	"does not exist",
	"notexists",
}

// objectMissingCodes are inline sui_getObject error codes meaning the object is gone.
var objectMissingCodes = map[string]bool{
	"notExists": true,
	"deleted":   true,
}

// isNotFound reports whether err is a JSON-RPC error describing a missing entity.
func isNotFound(err error) bool {
	e, ok := rpc.AsError(err)
	if !ok || e.Kind != rpc.KindProtocol {
		return false
	}

	msg := strings.ToLower(e.Message)
	for _, pattern := range notFoundPatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}
