package dto

import "time"

// StatDTO indicador del tablero con su variación frente al mes anterior.
type StatDTO struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Change string `json:"change"` // ej: "+4.75%"
	Trend  string `json:"trend"`  // up | down
}

// RecentUpdateDTO ticket actualizado recientemente.
type RecentUpdateDTO struct {
	ServiceOrder string    `json:"service_order"`
	Status       string    `json:"status"`
	Customer     string    `json:"customer"`
	UpdatedAt    time.Time `json:"updated_at"`
	UpdatedAgo   string    `json:"updated_ago"` // ej: "2h ago"
}

// DashboardResponse respuesta de GET /api/dashboard.
type DashboardResponse struct {
	Stats         []StatDTO         `json:"stats"`
	RecentUpdates []RecentUpdateDTO `json:"recent_updates"`
}
