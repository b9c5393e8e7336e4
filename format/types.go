package format

// StoreKind selects how a decoded directory is held in memory.
type StoreKind uint8

const (
	StoreDynamic StoreKind = 0x1 // StoreDynamic holds entries in a slice sized from the header.
	StoreFixed   StoreKind = 0x2 // StoreFixed holds entries in preallocated slots with a hard capacity.
)

func (k StoreKind) String() string {
	switch k {
	case StoreDynamic:
		return "Dynamic"
	case StoreFixed:
		return "Fixed"
	default:
		return "Unknown"
	}
}
