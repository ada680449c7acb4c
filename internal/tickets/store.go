// Package tickets owns the support-ticket collection and its lifecycle.
// The collection is ordered newest first and persisted wholesale after
// every successful mutation.
package tickets

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/helpdesk/internal/common"
	"github.com/dmitrijs2005/helpdesk/internal/logging"
	"github.com/dmitrijs2005/helpdesk/internal/models"
	"github.com/dmitrijs2005/helpdesk/internal/storage"
	"github.com/dmitrijs2005/helpdesk/internal/validation"
	"github.com/google/uuid"
)

type snapshot struct {
	Tickets []models.Ticket `json:"tickets"`
}

// Update carries the editable fields of a ticket. Nil pointers leave the
// corresponding field untouched. Creation-time validation is not re-run on
// edit; the caller is trusted to supply consistent data.
type Update struct {
	Status           *models.TicketStatus
	Priority         *models.TicketPriority
	Remarks          *string
	SubjectName      *string
	StudentName      *string
	StudentMobile    *string
	StudentRegNumber *string
}

type Store struct {
	mu      sync.Mutex
	storage storage.Store
	log     logging.Logger

	tickets []models.Ticket
}

// NewStore loads the ticket snapshot (if present) and returns a ready store.
func NewStore(st storage.Store, log logging.Logger) (*Store, error) {
	s := &Store{storage: st, log: log.With("component", "tickets")}

	var snap snapshot
	found, err := st.Load(storage.TicketSnapshot, &snap)
	if err != nil {
		return nil, fmt.Errorf("load ticket snapshot: %w", err)
	}
	if found {
		s.tickets = snap.Tickets
	}
	return s, nil
}

func (s *Store) persist() error {
	return s.storage.Save(storage.TicketSnapshot, snapshot{Tickets: s.tickets})
}

// Create validates the input, fills the creation defaults (pending status,
// medium priority when none was chosen), snapshots the creator's identity,
// and prepends the ticket to the collection.
func (s *Store) Create(ctx context.Context, in validation.TicketInput, createdBy, userMobile string) (*models.Ticket, error) {
	if in.Priority == "" {
		in.Priority = models.TicketPriorityMedium
	}
	if errs := validation.ValidateTicketInput(in); !errs.Ok() {
		return nil, errs
	}

	ticket := models.Ticket{
		ID:         uuid.NewString(),
		TicketType: in.TicketType,
		Priority:   in.Priority,
		Remarks:    in.Remarks,
		Status:     models.TicketStatusPending,
		CreatedBy:  createdBy,
		UserMobile: userMobile,
		CreatedAt:  time.Now(),
	}
	if models.RequiresDetails(in.TicketType) {
		ticket.SubjectName = in.SubjectName
		ticket.StudentName = in.StudentName
		ticket.StudentMobile = in.StudentMobile
		ticket.StudentRegNumber = in.StudentRegNumber
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tickets = append([]models.Ticket{ticket}, s.tickets...)
	if err := s.persist(); err != nil {
		s.tickets = s.tickets[1:]
		return nil, err
	}

	s.log.Info(ctx, "ticket created", "id", ticket.ID, "type", ticket.TicketType, "priority", ticket.Priority)
	return &ticket, nil
}

// UpdateTicket merges the given fields into the matching ticket and stamps
// UpdatedAt. An unknown id is a no-op: the collection stays untouched and
// ErrNotFound is returned for the caller's information only.
func (s *Store) UpdateTicket(ctx context.Context, id string, upd Update) (*models.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return nil, common.ErrNotFound
	}

	prior := s.tickets[idx]
	t := &s.tickets[idx]
	if upd.Status != nil {
		t.Status = *upd.Status
	}
	if upd.Priority != nil {
		t.Priority = *upd.Priority
	}
	if upd.Remarks != nil {
		t.Remarks = *upd.Remarks
	}
	if upd.SubjectName != nil {
		t.SubjectName = *upd.SubjectName
	}
	if upd.StudentName != nil {
		t.StudentName = *upd.StudentName
	}
	if upd.StudentMobile != nil {
		t.StudentMobile = *upd.StudentMobile
	}
	if upd.StudentRegNumber != nil {
		t.StudentRegNumber = *upd.StudentRegNumber
	}
	t.UpdatedAt = time.Now()

	if err := s.persist(); err != nil {
		s.tickets[idx] = prior
		return nil, err
	}

	s.log.Info(ctx, "ticket updated", "id", id, "status", t.Status)
	ticket := *t
	return &ticket, nil
}

// Delete removes the ticket if present; deleting an unknown id is a no-op.
// Removal is hard: no soft-delete or audit trail is kept.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return nil
	}

	prior := s.tickets
	s.tickets = append(append([]models.Ticket{}, s.tickets[:idx]...), s.tickets[idx+1:]...)
	if err := s.persist(); err != nil {
		s.tickets = prior
		return err
	}

	s.log.Info(ctx, "ticket deleted", "id", id)
	return nil
}

// List returns a copy of the collection, newest first.
func (s *Store) List() []models.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Ticket, len(s.tickets))
	copy(out, s.tickets)
	return out
}

// ListByStatus filters the collection by status, preserving insertion order.
func (s *Store) ListByStatus(status models.TicketStatus) []models.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Ticket
	for _, t := range s.tickets {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

// ListByMobile returns the tickets raised by the given mobile number,
// newest first.
func (s *Store) ListByMobile(mobile string) []models.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Ticket
	for _, t := range s.tickets {
		if t.UserMobile == mobile {
			out = append(out, t)
		}
	}
	return out
}

// GetByID returns the ticket with the given id, if present.
func (s *Store) GetByID(id string) (*models.Ticket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(id)
	if idx == -1 {
		return nil, false
	}
	t := s.tickets[idx]
	return &t, true
}

// Stats summarizes the collection for the dashboard.
type Stats struct {
	Total      int
	Pending    int
	InProgress int
	Resolved   int
	Closed     int
}

// CountByStatus tallies the collection per lifecycle state.
func (s *Store) CountByStatus() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := Stats{Total: len(s.tickets)}
	for _, t := range s.tickets {
		switch t.Status {
		case models.TicketStatusPending:
			st.Pending++
		case models.TicketStatusInProgress:
			st.InProgress++
		case models.TicketStatusResolved:
			st.Resolved++
		case models.TicketStatusClosed:
			st.Closed++
		}
	}
	return st
}

func (s *Store) indexOf(id string) int {
	for i := range s.tickets {
		if s.tickets[i].ID == id {
			return i
		}
	}
	return -1
}
