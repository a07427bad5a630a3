// Package order contains the Order aggregate as consumed by the admin
// backend: identity, creation time, customer mobile number, a decimal total,
// a validated fulfillment status and the serialized item lines.
//
// Orders are placed by a collaborator service; here they are listed, scanned
// for dashboard aggregation, and mutated only through status overwrites.
package order
