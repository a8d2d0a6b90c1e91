package application

import (
	"errors"
	"fmt"

	"github.com/daniilsm/sickday-go/internal/domain/ticket"
	"github.com/daniilsm/sickday-go/internal/export"
	"github.com/daniilsm/sickday-go/internal/repository"
)

var ErrNoTicketsMatched = errors.New("no tickets matched the export filter")

type ExportService struct {
	Repos *repository.Repos
}

func NewExportService(repos *repository.Repos) *ExportService {
	return &ExportService{Repos: repos}
}

const dateLayout = "2006-01-02"

// ExportApproved renders the approved tickets matching the filter into an
// xlsx document and suggests a filename. An empty match is an error, not an
// empty workbook; the handler decides how to present that.
func (s *ExportService) ExportApproved(f ticket.ExportFilter) ([]byte, string, error) {
	tickets, err := s.Repos.Ticket.FindApproved(f)
	if err != nil {
		return nil, "", storeErr("export", err)
	}
	if len(tickets) == 0 {
		return nil, "", ErrNoTicketsMatched
	}

	rows := make([][]string, 0, len(tickets))
	for _, t := range tickets {
		var courseIdent, groupIdent string
		if t.User.Group != nil {
			groupIdent = t.User.Group.Identifier
			if t.User.Group.Course != nil {
				courseIdent = fmt.Sprint(t.User.Group.Course.Identifier)
			}
		}
		rows = append(rows, []string{
			t.Name,
			t.User.Name,
			courseIdent,
			groupIdent,
			string(t.Reason),
			t.StartDate.Format(dateLayout),
			t.EndDate.Format(dateLayout),
			t.Description,
		})
	}

	wb, err := export.BuildTicketsWorkbook(rows)
	if err != nil {
		return nil, "", err
	}
	buf, err := wb.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	return buf.Bytes(), exportFilename(f, tickets), nil
}

func exportFilename(f ticket.ExportFilter, tickets []ticket.Ticket) string {
	name := "tickets"
	first := tickets[0]
	if f.CourseID != nil {
		ident := fmt.Sprint(*f.CourseID)
		if first.User.Group != nil && first.User.Group.Course != nil {
			ident = fmt.Sprint(first.User.Group.Course.Identifier)
		}
		name += "_course-" + ident
	}
	if f.GroupID != nil {
		ident := fmt.Sprint(*f.GroupID)
		if first.User.Group != nil {
			ident = first.User.Group.Identifier
		}
		name += "_group-" + ident
	}
	return name + ".xlsx"
}
