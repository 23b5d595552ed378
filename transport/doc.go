// Package transport implements the HTTP plumbing for the Dataverse API:
// request URI composition, API-key delivery, verb dispatch with configured
// timeouts, multipart uploads, and bounded fixed-delay retry on transient
// locked-dataset failures.
//
// The package deals in raw bytes. Decoding the API's status envelope into
// typed payloads happens one level up, in the root dataverse package.
//
// # Request flow
//
//	req := transport.NewRequest(http.MethodGet, "datasets/42")
//	resp, err := client.Do(ctx, req)
//
// A non-2xx reply surfaces as *RequestFailedError, an I/O failure as
// *ConnError, and a bad URI composition as *MalformedURIError. Locked
// responses are retried transparently; the caller only ever sees the final
// outcome.
package transport
