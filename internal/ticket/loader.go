package ticket

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// ErrInputNotFound marks a missing ticket CSV so callers can report the
// path once and exit rather than retry.
var ErrInputNotFound = errors.New("input file not found")

// Load reads a ticket CSV with a header row. Required columns: Subject,
// Description, Reason for Contact, Ticket Type. Rows shorter than the
// header are padded with empty strings and the derived Text field is
// computed here.
func Load(path string) ([]Ticket, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	tickets, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", path, err)
	}
	return tickets, nil
}

// Parse reads ticket rows from r. Split from Load so tests and callers with
// non-file sources can feed readers directly.
func Parse(r io.Reader) ([]Ticket, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty csv")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx, err := headerIndexes(header)
	if err != nil {
		return nil, err
	}

	var tickets []Ticket
	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", len(tickets)+2, err)
		}

		t := Ticket{
			Subject:          valueAt(record, idx.subject),
			Description:      valueAt(record, idx.description),
			ReasonForContact: valueAt(record, idx.reason),
			Type:             valueAt(record, idx.ticketType),
		}
		t.Text = strings.ToLower(t.Subject + " " + t.Description)
		tickets = append(tickets, t)
	}
	return tickets, nil
}

type columnIndexes struct {
	subject     int
	description int
	reason      int
	ticketType  int
}

func headerIndexes(header []string) (columnIndexes, error) {
	idx := columnIndexes{subject: -1, description: -1, reason: -1, ticketType: -1}

	for i, col := range header {
		switch normalizeHeader(col) {
		case "subject":
			idx.subject = i
		case "description":
			idx.description = i
		case "reasonforcontact":
			idx.reason = i
		case "tickettype":
			idx.ticketType = i
		}
	}

	if idx.subject == -1 || idx.description == -1 || idx.reason == -1 || idx.ticketType == -1 {
		return columnIndexes{}, fmt.Errorf("missing required columns in header %v", header)
	}
	return idx, nil
}

func normalizeHeader(s string) string {
	s = strings.TrimSpace(strings.TrimPrefix(s, "\ufeff"))
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	return s
}

func valueAt(record []string, index int) string {
	if index < 0 || index >= len(record) {
		return ""
	}
	return record[index]
}
