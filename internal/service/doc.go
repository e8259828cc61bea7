// Package service implements the provider registry: registration,
// lookup, and tool execution routed by tool-ID prefix.
package service
