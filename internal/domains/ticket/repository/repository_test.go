package repository_test

import (
	"context"
	"net/http"
	"testing"

	"intake/config"
	"intake/infras/hubspot"
	hubspotMocks "intake/infras/hubspot/mocks"
	otelMocks "intake/infras/otel/mocks"
	cModel "intake/internal/domains/consultation/model"
	"intake/internal/domains/ticket/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.CRM.Ticket.PipelineID = "0"
	cfg.CRM.Ticket.PendingStageID = "1"
	cfg.CRM.Ticket.Subject = "仮予約 - オンライン相談"
	cfg.CRM.Ticket.AssociationCategory = "HUBSPOT_DEFINED"
	cfg.CRM.Ticket.AssociationTypeID = 16
	cfg.CRM.Ticket.TargetTypeProperty = "subject_target_type"
	cfg.CRM.Ticket.AgeBandProperty = "subject_age_band"

	return cfg
}

func TestTicketRepository_Insert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCRM := hubspotMocks.NewMockClient(ctrl)
	repo := repository.New(mockCRM, testConfig(), otelMocks.NewOtel())

	session := cModel.Session{
		Email:          "b@x.com",
		TargetType:     cModel.TargetParent,
		SubjectAgeBand: cModel.AgeBand80to84,
	}

	wantProperties := map[string]string{
		"hs_pipeline":         "0",
		"hs_pipeline_stage":   "1",
		"subject":             "仮予約 - オンライン相談",
		"subject_target_type": "PARENT",
		"subject_age_band":    "AGE_80_84",
	}
	wantAssociations := []hubspot.Association{hubspot.NewAssociation("101", "HUBSPOT_DEFINED", 16)}

	tests := []struct {
		name        string
		response    hubspot.Object
		err         error
		wantHumanID string
		wantErr     bool
	}{
		{
			name:        "human id from properties",
			response:    hubspot.Object{ID: "5551", Properties: map[string]string{"hs_ticket_id": "T-77"}},
			wantHumanID: "T-77",
		},
		{
			name:        "human id falls back to object id",
			response:    hubspot.Object{ID: "5551"},
			wantHumanID: "5551",
		},
		{
			name:    "crm failure",
			err:     &hubspot.APIError{Status: http.StatusBadRequest},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCRM.EXPECT().
				CreateTicket(gomock.Any(), wantProperties, wantAssociations).
				Return(tt.response, tt.err)

			ticket, err := repo.Insert(context.Background(), "101", session)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "5551", ticket.ID)
			assert.Equal(t, tt.wantHumanID, ticket.HumanID)
			assert.Equal(t, "101", ticket.ContactID)
			assert.Equal(t, cModel.AgeBand80to84, ticket.SubjectAgeBand)
		})
	}
}
