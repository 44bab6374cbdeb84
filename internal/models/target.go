package models

// TargetType discriminates the entity a review, favorite or booking points at.
type TargetType string

const (
	TargetVenue    TargetType = "venue"
	TargetSupplier TargetType = "supplier"
)

var targetCollections = map[TargetType]string{
	TargetVenue:    VenuesColName,
	TargetSupplier: SuppliersColName,
}

func (t TargetType) Valid() bool {
	_, ok := targetCollections[t]
	return ok
}

// Collection resolves the discriminator to the backing collection name.
func (t TargetType) Collection() (string, bool) {
	col, ok := targetCollections[t]
	return col, ok
}
