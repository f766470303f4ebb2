package entities

// Game represents a game entity in the store catalog
type Game struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Genre string  `json:"genre"`
	Price float64 `json:"price"`
}
