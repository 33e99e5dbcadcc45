package dto_test

import (
	"encoding/json"
	"testing"

	"intake/config"
	"intake/internal/domains/consultation/model"
	"intake/internal/domains/consultation/model/dto"
	contactModel "intake/internal/domains/contact/model"
	ticketModel "intake/internal/domains/ticket/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVisitorRequest_ToProfile(t *testing.T) {
	req := dto.NewVisitorRequest{
		LastName:      " 山田 ",
		FirstName:     "花子",
		LastNameKana:  "やまだ",
		FirstNameKana: "ﾊﾅｺ",
		PostalCode:    " 1500001",
		AgeBand:       model.AgeBand60to64,
	}

	profile := req.ToProfile()

	assert.Equal(t, "山田", profile.LastName)
	assert.Equal(t, "ヤマダ", profile.LastNameKana)
	assert.Equal(t, "ハナコ", profile.FirstNameKana)
	assert.Equal(t, "1500001", profile.PostalCode)
	assert.Equal(t, model.AgeBand60to64, profile.AgeBand)
}

func TestNewVisitorRequest_DecodesFlatJSON(t *testing.T) {
	body := `{
		"lastname": "山田",
		"firstname": "花子",
		"lastname_kana": "ヤマダ",
		"firstname_kana": "ハナコ",
		"zip": "1500001",
		"age_band": "AGE_60_64",
		"consult_target_type": "SELF"
	}`

	var req dto.NewVisitorRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, model.TargetSelf, req.TargetType)
	assert.Equal(t, model.TargetSelf, req.ToAnswers().TargetType)
	assert.Empty(t, req.SubjectAgeBand)
}

func TestIdentityResponse_FromLookup(t *testing.T) {
	var returning dto.IdentityResponse
	returning.FromLookup("b@x.com", contactModel.Lookup{
		Found:   true,
		Contact: contactModel.Contact{ID: "101", AgeBand: model.AgeBand70to74, HasAgeBand: true},
	})

	assert.Equal(t, model.VisitorReturning, returning.VisitorKind)
	assert.Equal(t, dto.NextStepSession, returning.NextStep)
	assert.Equal(t, model.AgeBand70to74, returning.AgeBand)

	var fresh dto.IdentityResponse
	fresh.FromLookup("a@x.com", contactModel.Lookup{})

	assert.Equal(t, model.VisitorNew, fresh.VisitorKind)
	assert.Equal(t, dto.NextStepOnboard, fresh.NextStep)
	assert.Empty(t, fresh.AgeBand)
}

func TestNewWidgetResponse(t *testing.T) {
	cfg := &config.Config{}
	cfg.BookingWidget.ScriptURL = "//widget.simplybook.asia/v2/widget/widget.js"
	cfg.BookingWidget.URL = "https://example.simplybook.asia"
	cfg.BookingWidget.Theme = "adacompliant"
	cfg.BookingWidget.Timeline = "modern_week"
	cfg.BookingWidget.TicketField = "ticket_id"

	widget := dto.NewWidgetResponse(cfg, "a@x.com", "9001")

	raw, err := json.Marshal(widget)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	appConfig := decoded["config"].(map[string]any)["app_config"].(map[string]any)
	predefined := appConfig["predefined"].(map[string]any)

	assert.Equal(t, "a@x.com", predefined["client"].(map[string]any)["email"])
	assert.Equal(t, "9001", predefined["fields"].(map[string]any)["ticket_id"])
	assert.ElementsMatch(t, []string{"email", "ticket_id"}, widget.ReadOnly)
}

func TestHandoffResponse_FromTicket(t *testing.T) {
	var resp dto.HandoffResponse
	resp.FromTicket(model.VisitorNew, ticketModel.Ticket{
		ID:             "5551",
		HumanID:        "T-77",
		TargetType:     model.TargetSelf,
		SubjectAgeBand: model.AgeBand60to64,
	}, dto.WidgetResponse{})

	assert.Equal(t, "T-77", resp.TicketID)
	assert.Equal(t, model.AgeBand60to64, resp.SubjectAgeBand)
}
