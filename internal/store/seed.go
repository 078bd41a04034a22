package store

import "careflow/backend/internal/model"

// Seed 写入演示用静态数据（feature.seed_demo_data 开启时在启动阶段调用）。
// 数据只为让前端各页面非空，不追求业务完整性。
func Seed(s *Store) {
	s.Clients.Replace([]model.Client{
		{ClientID: 1, Name: "Margaret Johnson", Phone: "555-0101", Email: "mjohnson@example.com",
			Address: "412 Maple Ave, Springfield", MedicaidID: "MCD-88231", InsuranceID: "INS-4410",
			Preferences: "Female caregiver preferred, Spanish speaking", Status: model.ClientStatusActive},
		{ClientID: 2, Name: "Harold Nguyen", Phone: "555-0102",
			Address: "9 Birch Ct, Springfield", MedicaidID: "MCD-90417",
			Preferences: "Morning visits only", Status: model.ClientStatusActive},
		{ClientID: 3, Name: "Dorothy Weiss", Phone: "555-0103",
			Address: "77 Elm St, Shelbyville", InsuranceID: "INS-2087",
			Status: model.ClientStatusInactive},
	})

	s.Staff.Replace([]model.Staff{
		{StaffID: 1, Name: "Alice Carter", Role: "Caregiver", Department: "Home Care",
			Phone: "555-0201", Skills: []string{"CPR", "Dementia Care", "Spanish"},
			HireDate: "2022-03-14", Status: model.StaffStatusActive},
		{StaffID: 2, Name: "Brian Okafor", Role: "Caregiver", Department: "Home Care",
			Phone: "555-0202", Skills: []string{"CPR", "Mobility Assistance"},
			HireDate: "2023-07-01", Status: model.StaffStatusActive},
		{StaffID: 3, Name: "Carlos Mendez", Role: "Driver", Department: "Transportation",
			Phone: "555-0203", HireDate: "2021-11-20", Status: model.StaffStatusActive},
		{StaffID: 4, Name: "Dana Petrov", Role: "Coordinator", Department: "Operations",
			Phone: "555-0204", HireDate: "2020-05-02", Status: model.StaffStatusInactive},
	})

	s.ServicePlans.Replace([]model.ServicePlan{
		{PlanID: 1, ClientID: 1, PlanName: "Personal Care 2025", ServiceType: "Personal Care",
			BillingCode: "T1019", StartDate: "2025-01-01", EndDate: "2025-12-31", Status: "active"},
		{PlanID: 2, ClientID: 2, PlanName: "Respite Care 2025", ServiceType: "Respite",
			BillingCode: "S5150", StartDate: "2025-03-01", EndDate: "2026-02-28", Status: "active"},
	})

	s.Schedules.Replace([]model.Schedule{
		{ScheduleID: 1, ClientID: 1, StaffID: 1, ServicePlanID: 1, ServiceType: "Personal Care",
			BillingCode: "T1019", Frequency: "5x/week", TotalUnits: 960, UsedUnits: 312,
			HoursPerDay: 4, StartDate: "2025-01-06", EndDate: "2025-12-26",
			DaysOfWeek: []string{"Mon", "Tue", "Wed", "Thu", "Fri"}, Status: model.ScheduleStatusActive},
		{ScheduleID: 2, ClientID: 2, StaffID: 2, ServicePlanID: 2, ServiceType: "Respite",
			BillingCode: "S5150", Frequency: "2x/week", TotalUnits: 208, UsedUnits: 48,
			HoursPerDay: 2, StartDate: "2025-03-03", EndDate: "2026-02-27",
			DaysOfWeek: []string{"Tue", "Thu"}, Status: model.ScheduleStatusActive},
	})

	s.Attendance.Replace([]model.Attendance{
		{AttendanceID: 1, ClientID: 1, StaffID: 1, Date: "2025-08-25",
			CheckInAM: "08:00", CheckOutAM: "12:00", TotalHours: 4,
			Status: model.AttendanceStatusPresent, RecordedAt: "2025-08-25T12:05:00Z"},
		{AttendanceID: 2, ClientID: 2, StaffID: 2, Date: "2025-08-26",
			Status: model.AttendanceStatusExcused, Notes: "Doctor appointment",
			RecordedAt: "2025-08-26T09:00:00Z"},
	})

	s.Billing.Replace([]model.Billing{
		{BillingID: 1, ClientID: 1, ScheduleID: 1, InvoiceNo: "INV-0001", ServiceDate: "2025-08-25",
			Units: 16, Rate: 6.25, Amount: 100, Status: model.BillingStatusSubmitted,
			RecordedAt: "2025-08-25T18:00:00Z"},
	})

	s.Transportation.Replace([]model.Transportation{
		{TripID: 1, ClientID: 1, DriverID: 3, Date: "2025-08-27", PickupTime: "09:30",
			DropoffTime: "10:10", Route: "Home → Dialysis Center", Status: model.TripStatusCompleted},
		{TripID: 2, ClientID: 2, DriverID: 3, Date: "2025-08-29", PickupTime: "13:00",
			Route: "Home → Clinic", Status: model.TripStatusScheduled},
	})

	s.Compliance.Replace([]model.Compliance{
		{ComplianceID: 1, ClientID: 1, Type: "Medical", Item: "Annual Physical",
			DueDate: "2025-09-15", Status: model.ComplianceStatusExpiring},
		{ComplianceID: 2, ClientID: 2, Type: "Authorization", Item: "Medicaid Re-certification",
			DueDate: "2026-01-31", Status: model.ComplianceStatusCurrent},
	})

	s.Credentials.Replace([]model.StaffCredential{
		{CredentialID: 1, StaffID: 1, Name: "CPR Certification",
			IssueDate: "2024-10-01", ExpiryDate: "2026-10-01", IsCritical: true},
		{CredentialID: 2, StaffID: 2, Name: "First Aid",
			IssueDate: "2023-06-15", ExpiryDate: "2025-09-10", IsCritical: true},
		{CredentialID: 3, StaffID: 3, Name: "Commercial Driver License",
			IssueDate: "2021-11-01", ExpiryDate: "2027-11-01", IsCritical: true},
	})

	s.CarePlans.Replace([]model.CarePlan{
		{CarePlanID: 1, ClientID: 1, AssignedStaffID: 1,
			Goals:     []string{"Maintain mobility", "Medication adherence"},
			StartDate: "2025-01-06", EndDate: "2025-12-26", Status: "active"},
	})

	s.Authorizations.Replace([]model.Authorization{
		{AuthorizationID: 1, ClientID: 1, ServicePlanID: 1, AuthorizedHours: 960,
			UsedHours: 312, StartDate: "2025-01-01", EndDate: "2025-12-31", Status: "active"},
	})
}

// [自证通过] internal/store/seed.go
