package letter

import (
	"strings"
	"time"
)

// Content carries the derived display strings for one letter. It is never
// stored anywhere; callers recompute it from the current records before every
// render so both render targets always see the same values.
type Content struct {
	// Today is the letter date, formatted day.month.year.
	Today string
	// SenderName joins company and owner name with a middle dot. Empty when
	// neither is present; the letter still renders with an empty sender line.
	SenderName string
	// DateClause states when the contract ends.
	DateClause string
	// KindLabel is the termination-kind wording for the declaration sentence.
	KindLabel string
	// ContactLine joins email and phone with "oder". Empty when neither is set.
	ContactLine string
}

// DeriveContent derives the display strings for the current date.
func DeriveContent(c Customer) Content {
	return DeriveContentAt(c, time.Now())
}

// DeriveContentAt is the clock-injected variant of DeriveContent. Apart from
// the date it is a pure function of the customer record.
func DeriveContentAt(c Customer, now time.Time) Content {
	return Content{
		Today:       now.Format("02.01.2006"),
		SenderName:  senderName(c),
		DateClause:  dateClause(c),
		KindLabel:   c.TerminationKind.Label(),
		ContactLine: contactLine(c),
	}
}

func senderName(c Customer) string {
	segments := make([]string, 0, 2)
	if c.CompanyName != "" {
		segments = append(segments, c.CompanyName)
	}
	switch {
	case c.FirstName != "" && c.LastName != "":
		segments = append(segments, c.FirstName+" "+c.LastName)
	case c.FirstName != "":
		segments = append(segments, c.FirstName)
	case c.LastName != "":
		segments = append(segments, c.LastName)
	}
	return strings.Join(segments, " · ")
}

func dateClause(c Customer) string {
	switch {
	case c.TerminationImmediate:
		return "zum nächstmöglichen Zeitpunkt, hilfsweise fristgerecht zum nächstmöglichen Termin"
	case c.TerminationDate != "":
		return "zum " + c.TerminationDate
	default:
		return "zum nächstmöglichen Termin unter Einhaltung der vertraglichen Kündigungsfrist"
	}
}

func contactLine(c Customer) string {
	parts := make([]string, 0, 2)
	if c.Email != "" {
		parts = append(parts, c.Email)
	}
	if c.Phone != "" {
		parts = append(parts, c.Phone)
	}
	return strings.Join(parts, " oder ")
}
