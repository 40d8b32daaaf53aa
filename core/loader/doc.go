// Package loader provides the feature loading system of the HTTP server.
//
// Each feature implements the Feature interface and registers its routes on
// the Fiber router it is given.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// The Manager holds the registry of features. Register adds one; LoadAll
// loads the enabled ones in registration order.
package loader
