package model

import (
	cModel "intake/internal/domains/consultation/model"
)

const (
	EntityName = "ticket"

	FieldPipeline      = "hs_pipeline"
	FieldPipelineStage = "hs_pipeline_stage"
	FieldSubject       = "subject"
	FieldHumanID       = "hs_ticket_id"
)

// Ticket is a pending service ticket for one booking attempt. It is never
// changed after creation.
type Ticket struct {
	ID             string
	HumanID        string
	ContactID      string
	TargetType     cModel.TargetType
	SubjectAgeBand cModel.AgeBand
}
