// Copyright (c) 2025 Akshay Ghatge.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store holds the loaded election table for the lifetime of the process.

# Data Source Handle

Open loads the configured source once and hands the rest of the application
an immutable view:

	st := store.Open(cfg.DataPath)
	records := st.Records() // read-only

There is no persistence layer behind this: one table, loaded into memory,
replaced atomically on reload. The loaded slice is never mutated, so it is
safe to share across concurrent read requests.

# Source Identity

The store remembers the source signature (path + mtime + size) and a sha256
content hash. Reload recomputes the table only when the signature changed:

	reloaded, err := st.Reload()

The hash travels with analysis snapshots so results can be matched to the
exact data they were derived from.

# Degraded Loads

An unreadable or malformed source is not fatal. The store keeps serving an
empty table and exposes the diagnostic through Warnings(); /health reports
the row and warning counts so the condition is visible.
*/
package store
