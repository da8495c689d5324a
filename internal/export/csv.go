// Package export renders roster data for download.
package export

import (
	"bytes"
	"encoding/csv"

	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/models"
)

// participantHeader is the CSV column order. Kept stable; downstream
// spreadsheets key on these names.
var participantHeader = []string{
	"full_name", "email", "company", "title", "checkin_code", "checked_in", "checked_in_at",
}

// ParticipantsCSV renders the roster as CSV bytes.
func ParticipantsCSV(participants []models.Participant) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(participantHeader); err != nil {
		return nil, err
	}
	for _, p := range participants {
		checkedIn := "no"
		if p.CheckedIn {
			checkedIn = "yes"
		}
		checkedInAt := ""
		if p.CheckedInAt != nil {
			checkedInAt = p.CheckedInAt.UTC().Format("2006-01-02 15:04:05")
		}
		row := []string{p.FullName, p.Email, p.Company, p.Title, p.CheckinCode, checkedIn, checkedInAt}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
