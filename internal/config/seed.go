package config

import "sleeperbus/internal/domain/models"

// Order matters: seat segments and fares are derived from station position.
func DefaultStations() []models.Station {
	return []models.Station{
		{ID: "ST001", Name: "Ahmedabad", Distance: 0},
		{ID: "ST002", Name: "Vadodara", Distance: 110},
		{ID: "ST003", Name: "Surat", Distance: 260},
		{ID: "ST004", Name: "Mumbai", Distance: 530},
	}
}

func DefaultMeals() []models.Meal {
	return []models.Meal{
		{ID: "M001", Name: "Veg Thali", Type: "veg", Price: 150},
		{ID: "M002", Name: "Paneer Combo", Type: "veg", Price: 180},
		{ID: "M003", Name: "Chicken Biryani", Type: "non-veg", Price: 220},
		{ID: "M004", Name: "Jain Thali", Type: "jain", Price: 160},
	}
}

func DefaultBus(seats int) models.Bus {
	return models.Bus{
		ID:         "BUS001",
		Name:       "Sleeper Express",
		Route:      "Ahmedabad → Mumbai",
		TotalSeats: seats,
		Layout:     "sleeper",
	}
}
