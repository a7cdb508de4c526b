package response_models

import "time"

// Export rows are flattened projections for spreadsheet downloads:
// foreign keys are resolved to display names up front so the sheet
// writer only deals with plain values.

type GuestExportRow struct {
	ID                uint
	FirstName         string
	LastName          string
	Email             string
	Phone             string
	Side              string
	RelationType      string
	FamilyGroup       string
	DietaryPreference string
	AgeGroup          string
	NumberOfPersons   int
	RoomNumber        string
	Floor             string
	ArrivalAt         *time.Time
	DepartureAt       *time.Time
	IsVIP             bool
	Notes             string
}

type EventExportRow struct {
	ID           uint
	Name         string
	EventType    string
	EventDate    time.Time
	StartTime    string
	EndTime      string
	VenueName    string
	VenueAddress string
	Status       string
}

type VendorExportRow struct {
	ID            uint
	Name          string
	Category      string
	ContactPerson string
	Phone         string
	Email         string
	Website       string
	IsBooked      bool
	Notes         string
}

type InvitationExportRow struct {
	ID       uint
	Guest    string
	Event    string
	Status   string
	PlusOnes int
	Notes    string
}

type VendorServiceExportRow struct {
	ID          uint
	Title       string
	Vendor      string
	Event       string
	ServiceDate *time.Time
	StartTime   string
	EndTime     string
	Amount      *float64
	Status      string
	Notes       string
}

type TaskExportRow struct {
	ID          uint
	Title       string
	Description string
	Event       string
	AssignedTo  string
	CreatedBy   string
	Priority    string
	Status      string
	DueDate     *time.Time
	CompletedAt *time.Time
}

type ExpenseExportRow struct {
	ID             uint
	Description    string
	BudgetCategory string
	Vendor         string
	Event          string
	Amount         float64
	PaymentMethod  string
	PaymentStatus  string
	PaymentDate    *time.Time
	PaidBy         string
	Side           string
	Notes          string
}

type GiftExportRow struct {
	ID             uint
	Guest          string
	GiftType       string
	Description    string
	EstimatedValue float64
	ReceivedAt     *time.Time
	ThankYouSent   bool
	Notes          string
}
