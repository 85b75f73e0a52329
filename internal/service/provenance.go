package service

// Provenance records where a read was served from.
type Provenance string

const (
	ProvenanceCache    Provenance = "Cache"
	ProvenanceDatabase Provenance = "Database"
)

func (p Provenance) String() string {
	return string(p)
}
