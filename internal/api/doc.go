// Package api exposes the reading service over HTTP. Handlers decode and
// validate JSON requests, call service.ReadingService and translate its
// errors into status codes and safe messages; route registration lives in
// cmd/server.
package api
