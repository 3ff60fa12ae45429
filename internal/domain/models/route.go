package models

// Station is a stop on the route. Distance is cumulative from the first stop.
type Station struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Distance float64 `json:"distance"`
}

// Segment is a journey between two stations, From always before To in route order.
type Segment struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Bus describes the single vehicle serving the route.
type Bus struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Route      string `json:"route"`
	TotalSeats int    `json:"totalSeats"`
	Layout     string `json:"layout"`
}

// Meal is read-only catalog data attached to bookings by id.
type Meal struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Price int64  `json:"price"`
}
