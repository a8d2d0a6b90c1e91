package application

import (
	"bytes"
	"testing"
	"time"

	"github.com/daniilsm/sickday-go/internal/domain/course"
	"github.com/daniilsm/sickday-go/internal/domain/group"
	"github.com/daniilsm/sickday-go/internal/domain/ticket"
	"github.com/daniilsm/sickday-go/internal/domain/user"
	"github.com/daniilsm/sickday-go/internal/repository"
	"github.com/daniilsm/sickday-go/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

// --------------------- Setup ---------------------
func setupExportServiceMocks(t *testing.T) (*ExportService, *mock.MockTicketRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockTicket := mock.NewMockTicketRepo(ctrl)
	repos := &repository.Repos{
		Ticket: mockTicket,
	}
	svc := NewExportService(repos)
	return svc, mockTicket
}

func approvedTicket() ticket.Ticket {
	return ticket.Ticket{
		ID:          1,
		Name:        "Sick Day",
		Description: "flu",
		StartDate:   time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		Reason:      ticket.ReasonSickday,
		Status:      ticket.StatusApproved,
		UserID:      7,
		User: user.User{
			ID:   7,
			Name: "Alice",
			Group: &group.Group{
				ID:         3,
				Identifier: "CS-2B",
				Course:     &course.Course{ID: 2, Name: "CS", Identifier: 2},
			},
		},
	}
}

// --------------------- ExportApproved ---------------------
func TestExportApproved_WorkbookContent(t *testing.T) {
	svc, mockTicket := setupExportServiceMocks(t)

	mockTicket.EXPECT().FindApproved(gomock.Any()).Return([]ticket.Ticket{approvedTicket()}, nil)

	data, filename, err := svc.ExportApproved(ticket.ExportFilter{})
	assert.NoError(t, err)
	assert.Equal(t, "tickets.xlsx", filename)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Tickets")
	assert.NoError(t, err)
	assert.Equal(t, []string{"Имя", "Пользователь", "Курс", "Группа", "Причина", "С даты", "По дату", "Описание"}, rows[0])
	assert.Equal(t, []string{"Sick Day", "Alice", "2", "CS-2B", "SICKDAY", "2026-03-02", "2026-03-05", "flu"}, rows[1])

	total, err := f.GetCellValue("Tickets", "A4")
	assert.NoError(t, err)
	assert.Equal(t, "Всего: 1", total)
}

func TestExportApproved_FilenameCarriesFilters(t *testing.T) {
	svc, mockTicket := setupExportServiceMocks(t)

	courseID, groupID := uint(2), uint(3)
	mockTicket.EXPECT().FindApproved(gomock.Any()).Return([]ticket.Ticket{approvedTicket()}, nil)

	_, filename, err := svc.ExportApproved(ticket.ExportFilter{CourseID: &courseID, GroupID: &groupID})
	assert.NoError(t, err)
	assert.Equal(t, "tickets_course-2_group-CS-2B.xlsx", filename)
}

func TestExportApproved_EmptyMatchIsError(t *testing.T) {
	svc, mockTicket := setupExportServiceMocks(t)

	mockTicket.EXPECT().FindApproved(gomock.Any()).Return(nil, nil)

	_, _, err := svc.ExportApproved(ticket.ExportFilter{})
	assert.ErrorIs(t, err, ErrNoTicketsMatched)
}

func TestExportApproved_UngroupedStudent(t *testing.T) {
	svc, mockTicket := setupExportServiceMocks(t)

	tk := approvedTicket()
	tk.User.Group = nil
	mockTicket.EXPECT().FindApproved(gomock.Any()).Return([]ticket.Ticket{tk}, nil)

	data, _, err := svc.ExportApproved(ticket.ExportFilter{})
	assert.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	assert.NoError(t, err)
	defer f.Close()

	rows, _ := f.GetRows("Tickets")
	// course and group columns stay blank
	assert.Equal(t, "", rows[1][2])
	assert.Equal(t, "", rows[1][3])
}
