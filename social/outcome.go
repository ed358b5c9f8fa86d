// File: outcome.go
// Role: Typed results of Network mutations and the console text they render to.

package social

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors mirrored by Outcome.Err for callers that prefer error handling.
var (
	ErrEmptyName           = errors.New("social: person name is empty")
	ErrDuplicatePerson     = errors.New("social: person already exists")
	ErrSelfFriendship      = errors.New("social: cannot friend yourself")
	ErrUnknownPerson       = errors.New("social: person does not exist")
	ErrDuplicateFriendship = errors.New("social: friendship already exists")
)

// Op identifies the mutation an Outcome belongs to.
type Op uint8

const (
	OpAddPerson Op = iota
	OpAddFriendship
)

func (o Op) String() string {
	switch o {
	case OpAddPerson:
		return "AddPerson"
	case OpAddFriendship:
		return "AddFriendship"
	default:
		return fmt.Sprintf("Op(%d)", uint8(o))
	}
}

// Status is the coarse result of a mutation.
type Status uint8

const (
	// Created means the person or friendship was added.
	Created Status = iota
	// DuplicateSkipped means it already existed; nothing changed.
	DuplicateSkipped
	// Rejected means the request was invalid; nothing changed. See Reason.
	Rejected
)

func (s Status) String() string {
	switch s {
	case Created:
		return "created"
	case DuplicateSkipped:
		return "duplicate_skipped"
	case Rejected:
		return "rejected"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// Reason qualifies a Rejected outcome.
type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonEmptyName
	ReasonSelfFriendship
	ReasonUnknownPerson
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonEmptyName:
		return "empty_name"
	case ReasonSelfFriendship:
		return "self_friendship"
	case ReasonUnknownPerson:
		return "unknown_person"
	default:
		return fmt.Sprintf("Reason(%d)", uint8(r))
	}
}

// Outcome reports what a mutation did.
//
// Subject holds the names passed to the call ([name] or [a, b]). Missing lists
// unregistered names in argument order and is set only for ReasonUnknownPerson.
type Outcome struct {
	Op      Op
	Status  Status
	Reason  Reason
	Subject []string
	Missing []string
}

// OK reports whether the mutation changed the network.
func (o Outcome) OK() bool { return o.Status == Created }

// Message renders the console line for the outcome. Created outcomes render "".
func (o Outcome) Message() string {
	switch o.Status {
	case DuplicateSkipped:
		if o.Op == OpAddPerson {
			return fmt.Sprintf("Person '%s' already exists. Skipping duplicate.", o.subject(0))
		}
		return fmt.Sprintf("Friendship between '%s' and '%s' already exists.", o.subject(0), o.subject(1))
	case Rejected:
		switch o.Reason {
		case ReasonEmptyName:
			return "Person not created. Name cannot be empty."
		case ReasonSelfFriendship:
			return "Friendship not created. Cannot friend yourself."
		case ReasonUnknownPerson:
			verb := "do"
			if len(o.Missing) == 1 {
				verb = "does"
			}
			return fmt.Sprintf("Friendship not created. %s %s not exist!", strings.Join(o.Missing, " & "), verb)
		}
	}

	return ""
}

// Err maps the outcome onto a sentinel error, or nil when Created.
func (o Outcome) Err() error {
	switch o.Status {
	case Created:
		return nil
	case DuplicateSkipped:
		if o.Op == OpAddPerson {
			return ErrDuplicatePerson
		}
		return ErrDuplicateFriendship
	}

	switch o.Reason {
	case ReasonEmptyName:
		return ErrEmptyName
	case ReasonSelfFriendship:
		return ErrSelfFriendship
	case ReasonUnknownPerson:
		return fmt.Errorf("%w: %s", ErrUnknownPerson, strings.Join(o.Missing, ", "))
	default:
		return fmt.Errorf("social: %s rejected", o.Op)
	}
}

func (o Outcome) subject(i int) string {
	if i < len(o.Subject) {
		return o.Subject[i]
	}

	return ""
}
