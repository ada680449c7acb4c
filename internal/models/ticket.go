package models

import "time"

type TicketStatus string

const (
	TicketStatusPending    TicketStatus = "pending"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
	TicketPriorityUrgent TicketPriority = "urgent"
)

// Ticket is a support request. The student detail fields are populated only
// for ticket types whose catalog entry requires them; that holds at creation
// and is not re-checked on later edits. CreatedBy and UserMobile snapshot the
// creator's identity at creation time and never change afterwards.
type Ticket struct {
	ID         string         `json:"id"`
	TicketType string         `json:"ticketType"`
	Priority   TicketPriority `json:"priority"`

	SubjectName      string `json:"subjectName,omitempty"`
	StudentName      string `json:"studentName,omitempty"`
	StudentMobile    string `json:"studentMobile,omitempty"`
	StudentRegNumber string `json:"studentRegNumber,omitempty"`

	Remarks string       `json:"remarks"`
	Status  TicketStatus `json:"status"`

	CreatedBy  string `json:"createdBy"`
	UserMobile string `json:"userMobile"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}
