package models

// Theater is immutable once added to the catalog.
type Theater struct {
	ID   uint32 `json:"id"`
	Name string `json:"name"`
}

// NewTheater creates a new theater with validation.
func NewTheater(id uint32, name string) (*Theater, error) {
	if name == "" {
		return nil, ErrInvalidTheaterData
	}

	return &Theater{
		ID:   id,
		Name: name,
	}, nil
}
