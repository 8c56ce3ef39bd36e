package tui

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/oklog/ulid/v2"
)

// Record is a single row in the browser. Records are demo data: the
// interesting part is the per-row action menu, not the records themselves.
type Record struct {
	ID        ulid.ULID
	Name      string
	Kind      string
	Size      int64
	Modified  time.Time
	Protected bool
}

// Age returns a humanized relative time for the record.
func (r Record) Age() string {
	return humanize.Time(r.Modified)
}

// HumanSize returns a humanized byte size for the record.
func (r Record) HumanSize() string {
	return humanize.Bytes(uint64(r.Size))
}

var seedNames = []struct {
	name      string
	kind      string
	protected bool
}{
	{"quarterly-report.pdf", "document", false},
	{"deploy-manifest.yaml", "config", true},
	{"team-photo.png", "image", false},
	{"backup-2026-08.tar.gz", "archive", true},
	{"meeting-notes.md", "document", false},
	{"access-audit.log", "log", false},
	{"release-checklist.md", "document", false},
	{"prod-secrets.env", "config", true},
}

// seedRecords builds a fresh set of demo records. IDs and sizes vary per
// call so a refresh visibly changes the list.
func seedRecords() []Record {
	now := time.Now()
	rng := rand.New(rand.NewSource(now.UnixNano()))
	entropy := ulid.Monotonic(rng, 0)

	records := make([]Record, 0, len(seedNames))
	for i, s := range seedNames {
		modified := now.Add(-time.Duration(rng.Intn(72)+i) * time.Hour)
		records = append(records, Record{
			ID:        ulid.MustNew(ulid.Timestamp(modified), entropy),
			Name:      s.name,
			Kind:      s.kind,
			Size:      int64(rng.Intn(50_000_000) + 1024),
			Modified:  modified,
			Protected: s.protected,
		})
	}
	return records
}

// findRecord returns the record with the given ULID string, if present.
func findRecord(records []Record, id string) (Record, bool) {
	for _, r := range records {
		if r.ID.String() == id {
			return r, true
		}
	}
	return Record{}, false
}

// recordTarget is the navigation target for a record's detail view.
func recordTarget(r Record) string {
	return fmt.Sprintf("/records/%s", r.ID)
}
