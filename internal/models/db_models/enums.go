package db_models

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleUser    UserRole = "user"
	RoleGuest   UserRole = "guest"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleUser, RoleGuest:
		return true
	}
	return false
}

type EventStatus string

const (
	EventUpcoming  EventStatus = "upcoming"
	EventOngoing   EventStatus = "ongoing"
	EventCompleted EventStatus = "completed"
	EventCancelled EventStatus = "cancelled"
)

type GuestSide string

const (
	SideBride GuestSide = "bride"
	SideGroom GuestSide = "groom"
)

type AgeGroup string

const (
	AgeAdult  AgeGroup = "adult"
	AgeChild  AgeGroup = "child"
	AgeInfant AgeGroup = "infant"
)

type InvitationStatus string

const (
	InvitationPending   InvitationStatus = "pending"
	InvitationSent      InvitationStatus = "sent"
	InvitationConfirmed InvitationStatus = "confirmed"
	InvitationDeclined  InvitationStatus = "declined"
	InvitationMaybe     InvitationStatus = "maybe"
)

type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentUPI          PaymentMethod = "upi"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentCard         PaymentMethod = "card"
	PaymentOther        PaymentMethod = "other"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskCancelled  TaskStatus = "cancelled"
)

type VendorServiceStatus string

const (
	ServicePending    VendorServiceStatus = "pending"
	ServiceScheduled  VendorServiceStatus = "scheduled"
	ServiceInProgress VendorServiceStatus = "in_progress"
	ServiceCompleted  VendorServiceStatus = "completed"
	ServiceCancelled  VendorServiceStatus = "cancelled"
)
