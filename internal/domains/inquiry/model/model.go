package model

import (
	"errors"
	"fmt"
	"serenity/shared/dto"
	"slices"
)

const (
	EntityName = "inquiry"

	TypeBooking = "booking"
	TypeGeneral = "general"
)

// Status is the staff-side lifecycle shared by inquiries and event inquiries.
type Status string

const (
	StatusNew      Status = "new"
	StatusRead     Status = "read"
	StatusReplied  Status = "replied"
	StatusArchived Status = "archived"
)

var Statuses = []Status{StatusNew, StatusRead, StatusReplied, StatusArchived}

type Action string

const (
	ActionMarkRead    Action = "mark-read"
	ActionMarkReplied Action = "mark-replied"
	ActionArchive     Action = "archive"
)

var ErrIllegalTransition = errors.New("illegal status transition")

var (
	actionTargets = map[Action]Status{
		ActionMarkRead:    StatusRead,
		ActionMarkReplied: StatusReplied,
		ActionArchive:     StatusArchived,
	}
	progress = map[Status]int{
		StatusNew:      0,
		StatusRead:     1,
		StatusReplied:  2,
		StatusArchived: 3,
	}
)

func (s Status) Valid() bool {
	_, ok := progress[s]
	return ok
}

// Target is the status an action moves a row to.
func (a Action) Target() (Status, bool) {
	status, ok := actionTargets[a]
	return status, ok
}

// Apply returns the status reached by action. changed is false when the row is
// already there or archived, in which case no request should be made.
func (s Status) Apply(action Action) (next Status, changed bool, err error) {
	target, ok := action.Target()
	if !ok {
		return s, false, fmt.Errorf("%w: unknown action %q", ErrIllegalTransition, action)
	}

	if s == StatusArchived || s == target {
		return s, false, nil
	}

	if progress[target] < progress[s] {
		return s, false, fmt.Errorf("%w: %s cannot go back to %s", ErrIllegalTransition, s, target)
	}

	return target, true, nil
}

// AvailableActions lists the actions that move s forward.
func (s Status) AvailableActions() []Action {
	actions := make([]Action, 0, len(actionTargets))
	for _, action := range []Action{ActionMarkRead, ActionMarkReplied, ActionArchive} {
		if _, changed, err := s.Apply(action); err == nil && changed {
			actions = append(actions, action)
		}
	}

	return actions
}

// Reachable lists every status reachable from s by one action.
func (s Status) Reachable() []Status {
	var out []Status
	for _, action := range s.AvailableActions() {
		target, _ := action.Target()
		if !slices.Contains(out, target) {
			out = append(out, target)
		}
	}

	return out
}

// Inquiry is a general or booking inquiry as listed for staff.
type Inquiry struct {
	ID          dto.ID `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Subject     string `json:"subject,omitempty"`
	InquiryType string `json:"inquiry_type,omitempty"`
	Message     string `json:"message"`
	CheckIn     string `json:"check_in,omitempty"`
	CheckOut    string `json:"check_out,omitempty"`
	Guests      int    `json:"guests,omitempty"`
	RoomID      dto.ID `json:"room_id,omitempty"`
	RoomName    string `json:"room_name,omitempty"`
	Status      Status `json:"status"`
	CreatedAt   string `json:"created_at,omitempty"`
}
