package export

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/models"
)

func TestParticipantsCSV(t *testing.T) {
	at := time.Date(2026, 5, 12, 9, 30, 0, 0, time.UTC)
	participants := []models.Participant{
		{FullName: "Ada Wijaya", Email: "ada@example.com", Company: "Acme, Inc.", CheckinCode: "code-1", CheckedIn: true, CheckedInAt: &at},
		{FullName: "Budi Santoso", Email: "budi@example.com", CheckinCode: "code-2"},
	}

	data, err := ParticipantsCSV(participants)
	if err != nil {
		t.Fatal(err)
	}

	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "full_name" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	// the comma in the company name must survive quoting
	if rows[1][2] != "Acme, Inc." {
		t.Fatalf("company mangled: %q", rows[1][2])
	}
	if rows[1][5] != "yes" || rows[1][6] != "2026-05-12 09:30:00" {
		t.Fatalf("check-in columns wrong: %v", rows[1])
	}
	if rows[2][5] != "no" || rows[2][6] != "" {
		t.Fatalf("unchecked participant columns wrong: %v", rows[2])
	}
}
