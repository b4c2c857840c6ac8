package http

import "time"

// Request and response bodies of openapi.yaml.

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type MenuItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Selection struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

type NewOrder struct {
	CustomerID string      `json:"customerId,omitempty"`
	Items      []Selection `json:"items"`
}

type PlacedOrder struct {
	OrderNumber       string  `json:"orderNumber"`
	CustomerID        string  `json:"customerId"`
	Items             string  `json:"items"`
	GrossBill         float64 `json:"grossBill"`
	Discount          float64 `json:"discount"`
	FinalBill         float64 `json:"finalBill"`
	QueuePosition     int     `json:"queuePosition"`
	SuggestedCategory string  `json:"suggestedCategory"`
}

type Order struct {
	OrderNumber   string   `json:"orderNumber"`
	CustomerID    string   `json:"customerId"`
	Items         string   `json:"items"`
	GrossBill     float64  `json:"grossBill"`
	Discount      float64  `json:"discount"`
	FinalBill     float64  `json:"finalBill"`
	Status        string   `json:"status"`
	Category      string   `json:"category,omitempty"`
	Chefs         []string `json:"chefs,omitempty"`
	EtaMinutes    int      `json:"etaMinutes,omitempty"`
	DriverID      string   `json:"driverId,omitempty"`
	VehicleID     string   `json:"vehicleId,omitempty"`
	QueuePosition int      `json:"queuePosition"`
}

type Serving struct {
	CurrentServing int `json:"currentServing"`
}

type Preparation struct {
	Category   string   `json:"category,omitempty"`
	Chefs      []string `json:"chefs"`
	EtaMinutes int      `json:"etaMinutes"`
}

type Assignment struct {
	DriverID  string `json:"driverId,omitempty"`
	VehicleID string `json:"vehicleId,omitempty"`
}

type License struct {
	License string `json:"license"`
}

type Checkout struct {
	Verified bool `json:"verified"`
}

type NewFeedback struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

type Created struct {
	ID string `json:"id"`
}

type Customer struct {
	ID              string `json:"id"`
	OrdersThisMonth int    `json:"ordersThisMonth"`
}

type NewCustomer struct {
	ID string `json:"id"`
}

type Driver struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

type NewDriver struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	License string `json:"license"`
}

type Vehicle struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Available bool   `json:"available"`
}

type NewVehicle struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

type Chef struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

type NewChef struct {
	Name string `json:"name"`
}

type Feedback struct {
	ID          string    `json:"id"`
	OrderNumber string    `json:"orderNumber"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Reset struct {
	Customers int `json:"customers"`
}
