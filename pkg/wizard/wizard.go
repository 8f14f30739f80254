// Package wizard sequences the data-collection stages of the assistant and
// gates progression on the validity of the records it owns.
package wizard

import (
	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/letter"
	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/render"
)

// Stage identifies one step of the assistant, in fixed forward order.
type Stage int

const (
	StageCustomer Stage = iota
	StageDisposer
	StagePreview
	StageSignature
	StageDone
)

var stageNames = [...]string{"Kundendaten", "Entsorger", "Vorschau", "Unterschrift", "Fertig"}

func (s Stage) String() string {
	if s < StageCustomer || int(s) >= len(stageNames) {
		return "unbekannt"
	}
	return stageNames[s]
}

// Stages lists all stages in order, for step indicators.
func Stages() []Stage {
	return []Stage{StageCustomer, StageDisposer, StagePreview, StageSignature, StageDone}
}

// Session owns the customer and disposer records for one assistant run and
// tracks the current stage. Records are created empty, mutated stage by stage
// and discarded with the session; nothing is persisted.
type Session struct {
	Customer letter.Customer
	Disposer letter.Disposer

	signature string
	stage     Stage
	reached   Stage
}

// NewSession starts a fresh run at the customer stage.
func NewSession() *Session {
	return &Session{
		Customer: letter.NewCustomer(),
		Disposer: letter.NewDisposer(),
	}
}

// Stage returns the current stage.
func (s *Session) Stage() Stage {
	return s.stage
}

// Gate reports whether the given stage's exit condition holds against the
// current records. The customer gate is deliberately permissive: an identity
// is enough, the address fields are encouraged but not required.
func (s *Session) Gate(stage Stage) bool {
	switch stage {
	case StageCustomer:
		return s.Customer.HasIdentity()
	case StageDisposer:
		return s.Disposer.Complete()
	case StagePreview:
		return true
	case StageSignature:
		return s.signature != ""
	default:
		return false
	}
}

// CanAdvance reports whether the current stage's gate holds. Done is
// terminal.
func (s *Session) CanAdvance() bool {
	return s.stage < StageDone && s.Gate(s.stage)
}

// Advance moves one stage forward when the current gate holds. A blocked
// advance is a no-op and returns false; it is never an error.
func (s *Session) Advance() bool {
	if !s.CanAdvance() {
		return false
	}
	s.stage++
	if s.stage > s.reached {
		s.reached = s.stage
	}
	return true
}

// Back moves one stage backward. Data is never cleared by going back.
func (s *Session) Back() bool {
	if s.stage == StageCustomer {
		return false
	}
	s.stage--
	return true
}

// GoTo jumps directly to a previously reached stage, as from a step
// indicator. Jumping to a stage the session has not reached is a no-op.
func (s *Session) GoTo(stage Stage) bool {
	if stage < StageCustomer || stage > s.reached {
		return false
	}
	s.stage = stage
	return true
}

// Reached reports whether the session has ever entered the given stage.
func (s *Session) Reached(stage Stage) bool {
	return stage <= s.reached
}

// Signature returns the captured signature image, empty when none exists.
func (s *Session) Signature() string {
	return s.signature
}

// HasSignature reports whether a signature has been captured.
func (s *Session) HasSignature() bool {
	return s.signature != ""
}

// SetSignature stores a confirmed signature image. Re-capturing overwrites
// the previous image in one step; an empty value is ignored so a failed
// capture can never erase a confirmed signature.
func (s *Session) SetSignature(dataURI string) {
	if dataURI == "" {
		return
	}
	s.signature = dataURI
}

// Document assembles the letter from the session's current records. Content
// is derived fresh on every call; it is never cached on the session.
func (s *Session) Document() render.Document {
	return render.Compose(s.Customer, s.Disposer, letter.DeriveContent(s.Customer), s.signature)
}
