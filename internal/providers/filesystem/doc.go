// Package filesystem exposes the pathname engine as a tool surface.
//
// The package is organized into facets:
//   - directory: listing, filtered child handles, fast recursive walk,
//     tree rendering, flat file enumeration
//   - operations: recursive copy/delete, symlink create/read
//   - metadata: stat snapshot, depth, extension, hidden test, MIME type
//   - search: glob matching against a path, ** glob over a subtree
//
// All facets resolve relative paths against a base directory, either the
// provider default or a per-request override in the execution context.
// Mutating tools log an operation ID so a failed recursive copy or
// delete can be traced end to end.
package filesystem
