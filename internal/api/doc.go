// Package api exposes the suggestion and instruction flows over HTTP. It
// validates requests, calls the generator directly for one-shot requests or
// through a session for asynchronous ones, and maps generation failures to
// status codes and user-facing messages.
package api
