package dto

import (
	"intake/config"
	"intake/internal/domains/consultation/model"
	contactModel "intake/internal/domains/contact/model"
	ticketModel "intake/internal/domains/ticket/model"
)

// ConsultationRequest carries the answers about who the consultation is for.
// SubjectAgeBand is ignored when TargetType is SELF. Checked by
// model.Answers.Validate.
type ConsultationRequest struct {
	TargetType         model.TargetType `json:"consult_target_type"`
	OtherRelativeLabel string           `json:"consult_target_relation_other"`
	SubjectAgeBand     model.AgeBand    `json:"subject_age_band"`
}

func (r ConsultationRequest) ToAnswers() model.Answers {
	return model.Answers{
		TargetType:         r.TargetType,
		OtherRelativeLabel: r.OtherRelativeLabel,
		SubjectAgeBand:     r.SubjectAgeBand,
	}
}

// NewVisitorRequest is the onboarding form for an email with no contact yet.
type NewVisitorRequest struct {
	LastName      string        `json:"lastname"`
	FirstName     string        `json:"firstname"`
	LastNameKana  string        `json:"lastname_kana"`
	FirstNameKana string        `json:"firstname_kana"`
	PostalCode    string        `json:"zip"`
	AgeBand       model.AgeBand `json:"age_band"`
	ConsultationRequest
}

// ToProfile returns the normalized personal fields. Validation runs on the
// normalized value so hiragana readings are accepted.
func (r NewVisitorRequest) ToProfile() contactModel.Profile {
	return contactModel.Profile{
		LastName:      r.LastName,
		FirstName:     r.FirstName,
		LastNameKana:  r.LastNameKana,
		FirstNameKana: r.FirstNameKana,
		PostalCode:    r.PostalCode,
		AgeBand:       r.AgeBand,
	}.Normalized()
}

// ReturningVisitorRequest only carries the consultation answers; personal
// fields of an existing contact are never rewritten.
type ReturningVisitorRequest struct {
	ConsultationRequest
}

type IdentityResponse struct {
	Email       string            `json:"email"`
	VisitorKind model.VisitorKind `json:"visitor_kind"`
	AgeBand     model.AgeBand     `json:"age_band,omitempty"`
	NextStep    string            `json:"next_step"`
}

const (
	NextStepOnboard = "onboard"
	NextStepSession = "session"
)

func (r *IdentityResponse) FromLookup(email string, lookup contactModel.Lookup) {
	r.Email = email
	r.VisitorKind = lookup.Kind()
	r.NextStep = NextStepOnboard

	if lookup.Found {
		r.NextStep = NextStepSession

		if lookup.Contact.HasAgeBand {
			r.AgeBand = lookup.Contact.AgeBand
		}
	}
}

// HandoffResponse is returned once the ticket is open and the visitor can
// continue to the booking widget.
type HandoffResponse struct {
	VisitorKind    model.VisitorKind `json:"visitor_kind"`
	TicketID       string            `json:"ticket_id"`
	TargetType     model.TargetType  `json:"consult_target_type"`
	SubjectAgeBand model.AgeBand     `json:"subject_age_band"`
	Widget         WidgetResponse    `json:"widget"`
}

func (r *HandoffResponse) FromTicket(kind model.VisitorKind, ticket ticketModel.Ticket, widget WidgetResponse) {
	r.VisitorKind = kind
	r.TicketID = ticket.HumanID
	r.TargetType = ticket.TargetType
	r.SubjectAgeBand = ticket.SubjectAgeBand
	r.Widget = widget
}

// WidgetResponse is the booking widget bootstrap. Email and ticket number are
// prefilled and must not be editable by the visitor.
type WidgetResponse struct {
	ScriptURL string       `json:"script_url"`
	Config    WidgetConfig `json:"config"`
	ReadOnly  []string     `json:"read_only"`
}

type WidgetConfig struct {
	WidgetType string          `json:"widget_type"`
	URL        string          `json:"url"`
	Theme      string          `json:"theme"`
	Timeline   string          `json:"timeline"`
	Datepicker string          `json:"datepicker"`
	IsRTL      bool            `json:"is_rtl"`
	AppConfig  WidgetAppConfig `json:"app_config"`
}

type WidgetAppConfig struct {
	ClearSession     int              `json:"clear_session"`
	AllowSwitchToADA int              `json:"allow_switch_to_ada"`
	Predefined       WidgetPredefined `json:"predefined"`
}

type WidgetPredefined struct {
	Client struct {
		Email string `json:"email"`
	} `json:"client"`
	Fields map[string]string `json:"fields"`
}

// NewWidgetResponse prefills the widget with the verified email and the human
// ticket number.
func NewWidgetResponse(cfg *config.Config, email, ticketID string) WidgetResponse {
	widget := cfg.BookingWidget

	var predefined WidgetPredefined
	predefined.Client.Email = email
	predefined.Fields = map[string]string{widget.TicketField: ticketID}

	return WidgetResponse{
		ScriptURL: widget.ScriptURL,
		Config: WidgetConfig{
			WidgetType: "iframe",
			URL:        widget.URL,
			Theme:      widget.Theme,
			Timeline:   widget.Timeline,
			Datepicker: "inline_datepicker",
			AppConfig: WidgetAppConfig{
				Predefined: predefined,
			},
		},
		ReadOnly: []string{"email", widget.TicketField},
	}
}
