// Package server holds the HTTP server configuration.
//
// The start command builds the Fiber application; this package only defines
// the listen port and the optional API key that the auth middleware enforces.
package server
