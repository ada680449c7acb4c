package export

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/helpdesk/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketsWorkbook(t *testing.T) {
	tickets := []models.Ticket{
		{
			ID:         "t-2",
			TicketType: "technical_issue",
			Priority:   models.TicketPriorityMedium,
			Status:     models.TicketStatusPending,
			Remarks:    "Screen stays blank",
			CreatedBy:  "ravi",
			UserMobile: "9876543210",
			CreatedAt:  time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:          "t-1",
			TicketType:  "zenox_exam_not_found",
			Priority:    models.TicketPriorityHigh,
			Status:      models.TicketStatusResolved,
			SubjectName: "Mathematics",
			StudentName: "Ravi Kumar",
			Remarks:     "Exam missing from the dashboard",
			CreatedBy:   "asha",
			UserMobile:  "9123456789",
			CreatedAt:   time.Date(2025, 3, 13, 15, 0, 0, 0, time.UTC),
		},
	}

	f, err := TicketsWorkbook(tickets)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Tickets")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, "t-2", rows[1][0])
	assert.Equal(t, "Technical Issue", rows[1][1])
	assert.Equal(t, "Zenox Exam Not Found", rows[2][1])
	assert.Equal(t, "resolved", rows[2][3])
	assert.Equal(t, "Ravi Kumar", rows[2][5])
}

func TestTicketsWorkbookEmpty(t *testing.T) {
	f, err := TicketsWorkbook(nil)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Tickets")
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}

func TestColName(t *testing.T) {
	assert.Equal(t, "A", colName(1))
	assert.Equal(t, "L", colName(12))
	assert.Equal(t, "AA", colName(27))
}
