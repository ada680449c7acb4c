package tickets

import (
	"context"
	"io"
	"testing"

	"github.com/dmitrijs2005/helpdesk/internal/common"
	"github.com/dmitrijs2005/helpdesk/internal/logging"
	"github.com/dmitrijs2005/helpdesk/internal/models"
	"github.com/dmitrijs2005/helpdesk/internal/storage"
	"github.com/dmitrijs2005/helpdesk/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *storage.FileStore) {
	t.Helper()
	fs, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	s, err := NewStore(fs, logging.NewTextLogger(io.Discard, "error"))
	require.NoError(t, err)
	return s, fs
}

func technicalIssue(remarks string) validation.TicketInput {
	return validation.TicketInput{
		TicketType: "technical_issue",
		Remarks:    remarks,
	}
}

func examNotFound() validation.TicketInput {
	return validation.TicketInput{
		TicketType:       "zenox_exam_not_found",
		Priority:         models.TicketPriorityHigh,
		SubjectName:      "Mathematics",
		StudentName:      "Ravi Kumar",
		StudentMobile:    "9876543210",
		StudentRegNumber: "REG-2024-0042",
		Remarks:          "Exam missing from the dashboard",
	}
}

func TestCreateDefaults(t *testing.T) {
	s, _ := newTestStore(t)

	ticket, err := s.Create(context.Background(), technicalIssue("Screen stays blank"), "ravi", "9876543210")
	require.NoError(t, err)

	assert.NotEmpty(t, ticket.ID)
	assert.Equal(t, models.TicketStatusPending, ticket.Status)
	assert.Equal(t, models.TicketPriorityMedium, ticket.Priority)
	assert.False(t, ticket.CreatedAt.IsZero())
	assert.Equal(t, "ravi", ticket.CreatedBy)
	assert.Equal(t, "9876543210", ticket.UserMobile)
	assert.Empty(t, ticket.SubjectName)
	assert.Empty(t, ticket.StudentName)
	assert.Empty(t, ticket.StudentMobile)
	assert.Empty(t, ticket.StudentRegNumber)
}

func TestCreateConditionalRequirement(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	in := examNotFound()
	in.StudentMobile = ""
	_, err := s.Create(ctx, in, "ravi", "9876543210")
	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, []string{"Student mobile is required"}, errs["studentMobile"])

	in.StudentMobile = "987654321" // nine digits
	_, err = s.Create(ctx, in, "ravi", "9876543210")
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, []string{"Mobile number must be exactly 10 digits"}, errs["studentMobile"])

	assert.Empty(t, s.List())

	ticket, err := s.Create(ctx, examNotFound(), "ravi", "9876543210")
	require.NoError(t, err)
	assert.Equal(t, "Ravi Kumar", ticket.StudentName)
	assert.Equal(t, "9876543210", ticket.StudentMobile)
}

func TestCreatePrependsNewestFirst(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	first, err := s.Create(ctx, technicalIssue("First reported problem"), "ravi", "9876543210")
	require.NoError(t, err)
	second, err := s.Create(ctx, technicalIssue("Second reported problem"), "ravi", "9876543210")
	require.NoError(t, err)

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestUpdateIsolation(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	ticket, err := s.Create(ctx, examNotFound(), "ravi", "9876543210")
	require.NoError(t, err)

	resolved := models.TicketStatusResolved
	updated, err := s.UpdateTicket(ctx, ticket.ID, Update{Status: &resolved})
	require.NoError(t, err)

	assert.Equal(t, models.TicketStatusResolved, updated.Status)
	assert.False(t, updated.UpdatedAt.IsZero())

	// every other field keeps its prior value
	assert.Equal(t, ticket.ID, updated.ID)
	assert.Equal(t, ticket.TicketType, updated.TicketType)
	assert.Equal(t, ticket.Priority, updated.Priority)
	assert.Equal(t, ticket.Remarks, updated.Remarks)
	assert.Equal(t, ticket.StudentName, updated.StudentName)
	assert.Equal(t, ticket.CreatedBy, updated.CreatedBy)
	assert.Equal(t, ticket.CreatedAt.Unix(), updated.CreatedAt.Unix())
}

func TestUpdateUnknownID(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Create(ctx, technicalIssue("Screen stays blank"), "ravi", "9876543210")
	require.NoError(t, err)

	urgent := models.TicketPriorityUrgent
	_, err = s.UpdateTicket(ctx, "no-such-id", Update{Priority: &urgent})
	assert.ErrorIs(t, err, common.ErrNotFound)

	for _, ticket := range s.List() {
		assert.NotEqual(t, models.TicketPriorityUrgent, ticket.Priority)
		assert.True(t, ticket.UpdatedAt.IsZero())
	}
}

func TestDeleteIdempotent(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	ticket, err := s.Create(ctx, technicalIssue("Screen stays blank"), "ravi", "9876543210")
	require.NoError(t, err)
	require.Len(t, s.List(), 1)

	require.NoError(t, s.Delete(ctx, ticket.ID))
	assert.Empty(t, s.List())

	// second delete is a no-op
	require.NoError(t, s.Delete(ctx, ticket.ID))
	assert.Empty(t, s.List())
}

func TestListByStatus(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	a, err := s.Create(ctx, technicalIssue("First reported problem"), "ravi", "9876543210")
	require.NoError(t, err)
	b, err := s.Create(ctx, technicalIssue("Second reported problem"), "ravi", "9876543210")
	require.NoError(t, err)
	c, err := s.Create(ctx, technicalIssue("Third reported problem"), "ravi", "9876543210")
	require.NoError(t, err)

	resolved := models.TicketStatusResolved
	_, err = s.UpdateTicket(ctx, b.ID, Update{Status: &resolved})
	require.NoError(t, err)

	pending := s.ListByStatus(models.TicketStatusPending)
	require.Len(t, pending, 2)
	assert.Equal(t, c.ID, pending[0].ID)
	assert.Equal(t, a.ID, pending[1].ID)

	assert.Len(t, s.ListByStatus(models.TicketStatusResolved), 1)
	assert.Empty(t, s.ListByStatus(models.TicketStatusClosed))
}

func TestListByMobile(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Create(ctx, technicalIssue("First reported problem"), "ravi", "9876543210")
	require.NoError(t, err)
	_, err = s.Create(ctx, technicalIssue("Second reported problem"), "asha", "9123456789")
	require.NoError(t, err)

	mine := s.ListByMobile("9876543210")
	require.Len(t, mine, 1)
	assert.Equal(t, "ravi", mine[0].CreatedBy)
}

func TestGetByID(t *testing.T) {
	s, _ := newTestStore(t)

	ticket, err := s.Create(context.Background(), technicalIssue("Screen stays blank"), "ravi", "9876543210")
	require.NoError(t, err)

	got, ok := s.GetByID(ticket.ID)
	require.True(t, ok)
	assert.Equal(t, ticket.ID, got.ID)

	_, ok = s.GetByID("no-such-id")
	assert.False(t, ok)
}

func TestCountByStatus(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := s.Create(ctx, technicalIssue("Recurring blank screen"), "ravi", "9876543210")
		require.NoError(t, err)
	}
	list := s.List()
	resolved := models.TicketStatusResolved
	_, err := s.UpdateTicket(ctx, list[0].ID, Update{Status: &resolved})
	require.NoError(t, err)

	st := s.CountByStatus()
	assert.Equal(t, Stats{Total: 3, Pending: 2, Resolved: 1}, st)
}

func TestSnapshotRoundTrip(t *testing.T) {
	fs, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)
	log := logging.NewTextLogger(io.Discard, "error")

	s, err := NewStore(fs, log)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = s.Create(ctx, technicalIssue("First reported problem"), "ravi", "9876543210")
	require.NoError(t, err)
	_, err = s.Create(ctx, examNotFound(), "asha", "9123456789")
	require.NoError(t, err)

	reloaded, err := NewStore(fs, log)
	require.NoError(t, err)

	want := s.List()
	got := reloaded.List()
	require.Len(t, got, 2)
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Remarks, got[i].Remarks)
		assert.True(t, want[i].CreatedAt.Equal(got[i].CreatedAt))
	}
}
