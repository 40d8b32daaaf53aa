// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation through the X-API-Key header.
//   - rayid: a unique request id (RayID) per request, stored in the context
//     locals and echoed in the X-Ray-ID response header for tracing.
//
// The start command registers rayid first so that every log line of a merge
// session, including rejected requests, carries the id.
package middleware
