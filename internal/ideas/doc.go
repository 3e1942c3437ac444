// Package ideas persists a per-user list of free-text project ideas as a
// flat JSON array in the user's home directory. The list is append-only:
// each save reads the full list, appends, and rewrites the file wholesale.
package ideas
