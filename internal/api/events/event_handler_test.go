package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/samandr77/microservices/crm/internal/api/events"
	"github.com/samandr77/microservices/crm/internal/entity"
	"github.com/samandr77/microservices/crm/internal/mocks"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEventHandler_OnLeadReceived(t *testing.T) {
	t.Parallel()

	owner := uuid.Must(uuid.NewV4())
	payload := `{"nom":"Dupont","prenom":"Jean","email":"jean@example.com","source":"site","collaborateur_en_charge":"` + owner.String() + `"}`

	tests := []struct {
		name      string
		value     string
		intakeErr error
		called    bool
		wantErr   bool
	}{
		{name: "stored", value: payload, called: true},
		{name: "invalid lead dropped", value: payload, intakeErr: entity.ErrValidationFailed, called: true},
		{name: "store failure", value: payload, intakeErr: errors.New("connection reset"), called: true, wantErr: true},
		{name: "not json", value: "{", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockLeadService(gomock.NewController(t))

			if tt.called {
				svc.EXPECT().IntakeLead(gomock.Any(), entity.Lead{
					Nom:                   "Dupont",
					Prenom:                "Jean",
					Email:                 "jean@example.com",
					Source:                "site",
					CollaborateurEnCharge: owner,
				}).Return(entity.Contact{ID: uuid.Must(uuid.NewV4())}, tt.intakeErr)
			}

			err := events.NewEventHandler(svc).OnLeadReceived(context.Background(), kafka.Message{Value: []byte(tt.value)})
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}
