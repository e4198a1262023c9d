// Package store persists the engine's memory of created links: a mapping
// from source path to the set of symlinks that were made for it. The index
// lives in a TOML file inside the organized root and is rewritten
// atomically after each reconciliation. A missing or corrupt index is
// never fatal; the engine treats it as empty and rebuilds through a full
// sync.
package store
