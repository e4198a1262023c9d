package types

// LinkRecord is one created symbolic link: the destination path under the
// organized root that points back at a source file. Records are owned by
// the store; the reconciler never carries them across runs on its own.
type LinkRecord struct {
	// Category is the taxonomy leaf the link lives under.
	Category CategoryPath `toml:"category"`

	// LinkPath is the absolute path of the symlink.
	LinkPath string `toml:"link"`
}

// EventKind is the kind of source-tree change delivered by the watch adapter.
type EventKind int

const (
	// EventAdded means a source file appeared under the watched root.
	EventAdded EventKind = iota
	// EventRemoved means a source file was deleted or moved away.
	EventRemoved
)

// String implements fmt.Stringer.
func (k EventKind) String() string {
	if k == EventRemoved {
		return "removed"
	}
	return "added"
}

// Event is a single source-tree change. The reconciler tolerates duplicate
// and out-of-order delivery; the diff is idempotent.
type Event struct {
	Kind EventKind
	Path string
}
