package transport

import (
	"errors"
	"net/http"
	"strings"
)

// The server reports a transient dataset lock with one of these literal
// body fragments. Matching is case-sensitive and deliberately kept
// byte-for-byte identical to what the server emits; see the upstream API
// docs before touching these.
var lockedBodyMarkers = []string{
	"This dataset is locked",
	"Dataset cannot be edited due to dataset lock",
}

// A 400 with this fragment is the add-file variant of the same lock.
const addFileLockedMarker = "Failed to add file to dataset"

// isLockedFailure reports whether the error is a lock-condition failure
// that the retry policy may reissue. Only RequestFailedError qualifies;
// I/O-level failures are never retried here.
func isLockedFailure(err error) bool {
	var rf *RequestFailedError
	if !errors.As(err, &rf) {
		return false
	}
	for _, marker := range lockedBodyMarkers {
		if strings.Contains(rf.Body, marker) {
			return true
		}
	}
	if rf.StatusCode == http.StatusBadRequest && strings.Contains(rf.Body, addFileLockedMarker) {
		return true
	}
	return false
}
