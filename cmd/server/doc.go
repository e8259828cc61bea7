// Package main is the entry point for the pathname service.
//
// The server exposes pathname metadata, glob filtering, and recursive
// tree operations over a REST API backed by the local filesystem.
//
// Configuration:
//   - Environment variables (12-factor)
//   - Defaults for development
//
// Usage:
//
//	PORT=8600 BASE_DIR=/srv/data ./server
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
