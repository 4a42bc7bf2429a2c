// Package service contains the application use cases of the divination
// engine. It orchestrates the pure domain components (cast, hexagram,
// interpret, safety) around the loaded dataset, applies the not-found
// fallback policy and publishes finished readings as events.
//
// Services receive their collaborators through constructor injection and
// never depend on a transport; the API layer maps their errors to HTTP
// status codes.
package service
