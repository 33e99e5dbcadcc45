package model

import "time"

const EventTicketOpened = "intake.ticket_opened"

// TicketOpenedEvent is published after a pending ticket is created.
type TicketOpenedEvent struct {
	EventID        string      `json:"event_id"`
	Type           string      `json:"type"`
	Email          string      `json:"email"`
	ContactID      string      `json:"contact_id"`
	TicketID       string      `json:"ticket_id"`
	HumanTicketID  string      `json:"human_ticket_id"`
	VisitorKind    VisitorKind `json:"visitor_kind"`
	TargetType     TargetType  `json:"consult_target_type"`
	SubjectAgeBand AgeBand     `json:"subject_age_band"`
	OccurredAt     time.Time   `json:"occurred_at"`
}
