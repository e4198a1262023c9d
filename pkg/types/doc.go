// Package types defines the core types and interfaces used throughout
// cratedig. This includes the FS filesystem abstraction, the Classification
// result produced by the classifier, LinkRecord entries tracked by the
// store, and the watch Event consumed by the reconciler.
package types
