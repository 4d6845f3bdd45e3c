package models

import "time"

// TicketType enumerates the kinds of service the workshop offers
type TicketType string

const (
	TicketCleaning TicketType = "CLEANING"
	TicketRepair   TicketType = "REPAIR"
)

// IsValid reports whether the ticket type is one of the known values
func (t TicketType) IsValid() bool {
	return t == TicketCleaning || t == TicketRepair
}

// TicketStatus enumerates the lifecycle states of a service ticket
type TicketStatus string

const (
	TicketNew        TicketStatus = "NEW"
	TicketInProgress TicketStatus = "IN_PROGRESS"
	TicketDone       TicketStatus = "DONE"
	TicketCancelled  TicketStatus = "CANCELLED"
)

// IsValid reports whether the ticket status is one of the known values
func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketNew, TicketInProgress, TicketDone, TicketCancelled:
		return true
	}
	return false
}

// ServiceTicket represents a cleaning or repair job brought in by a customer
type ServiceTicket struct {
	ID              uint         `gorm:"primaryKey" json:"id"`
	Type            TicketType   `gorm:"type:varchar(20);not null;check:type IN ('CLEANING','REPAIR')" json:"type"`
	CustomerName    string       `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone   string       `gorm:"size:20;not null" json:"customer_phone"`
	CustomerEmail   string       `gorm:"size:150" json:"customer_email"`
	ItemDescription string       `gorm:"type:text" json:"item_description"`
	Status          TicketStatus `gorm:"type:varchar(20);not null;default:'NEW';check:status IN ('NEW','IN_PROGRESS','DONE','CANCELLED')" json:"status"`
	BranchID        *uint        `gorm:"index" json:"branch_id"` // nullable, branch the item was dropped at
	Branch          *Branch      `gorm:"foreignKey:BranchID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"branch,omitempty"`
	AssigneeID      *uint        `gorm:"index" json:"assignee_id"` // nullable, staff member working the ticket
	Assignee        *User        `gorm:"foreignKey:AssigneeID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"assignee,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// TableName specifies the table name for the ServiceTicket model
func (ServiceTicket) TableName() string {
	return "service_tickets"
}
