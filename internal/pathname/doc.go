// Package pathname provides the pathname abstraction and recursive
// tree-operation engine: type and metadata queries, hidden-file
// detection, glob matching, filtered directory listing, and recursive
// copy/delete over a storage backend.
//
// A Handle is a value: it carries a path string, the base directory used
// to resolve relative paths, and the storage backend, never an open
// descriptor. Copying a Handle is free and safe.
//
// Every metadata query re-reads the disk; nothing is cached between
// calls. Callers needing a consistent view across several checks must
// fetch one storage.Metadata themselves and reuse it.
//
// Operations come in pairs: a context-taking form that suspends only the
// calling goroutine while awaiting I/O, and a *Sync form that runs with
// a background context. Recursive operations visit children strictly
// sequentially; there is no fan-out across siblings, which bounds
// in-flight syscalls on wide trees at the cost of throughput.
package pathname
