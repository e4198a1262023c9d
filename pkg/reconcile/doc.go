// Package reconcile keeps the organized link tree consistent with the
// source library. It diffs the desired link set (from classification)
// against the stored link set and applies the difference as idempotent
// symlink operations: create is a no-op when the link already resolves
// correctly, remove treats already-absent as success. Because the diff is
// stateless over the stored set, interrupted or replayed runs converge on
// the next pass.
package reconcile
