// Package order holds the domain types of the coffee service: order
// identifiers, statuses, the placement request and the events emitted
// when an order is accepted.
//
// It has no dependencies on transport or storage. Everything that crosses
// a package boundary as an order-level failure is expressed with the
// errors defined here.
package order
