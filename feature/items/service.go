package items

// Item is a demo record returned by the listing endpoint.
type Item struct {
	ID   uint32 `json:"id"`
	Name string `json:"name"`
}

// Service provides the item catalogue.
type Service struct{}

// NewService creates a new item service.
func NewService() *Service {
	return &Service{}
}

// List returns a newly allocated copy of the catalogue on every call.
func (s *Service) List() []Item {
	return []Item{
		{ID: 1, Name: "Maxwell"},
		{ID: 2, Name: "Bingus"},
		{ID: 3, Name: "Floppa"},
	}
}
