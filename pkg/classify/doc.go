// Package classify derives destination categories for sample files from
// their paths alone. A Classifier is built once from immutable
// configuration tables and is pure after that: same path in, same
// classification out, no filesystem access, no failures. Unmatched inputs
// degrade to the Other buckets instead of erroring.
package classify
