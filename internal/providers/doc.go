// Package providers contains the service providers registered with the
// service registry. Each provider publishes a Definition describing its
// tool surface and routes Execute calls to the owning facet.
package providers
