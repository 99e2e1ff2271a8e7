// Package service implements the coffee order operations on top of a
// registry.Registry: placing an order and looking up its status.
//
// It knows nothing about gRPC. Failures are returned as domain errors
// from package order and mapped to wire codes by the transport adapter.
package service
