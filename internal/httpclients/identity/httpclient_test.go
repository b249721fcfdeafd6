package identity_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/samandr77/microservices/crm/internal/entity"
	"github.com/samandr77/microservices/crm/internal/httpclients/identity"
	"github.com/stretchr/testify/require"
)

func TestClient_Validate(t *testing.T) {
	t.Parallel()

	userID := uuid.Must(uuid.NewV4())

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/validate" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var req struct {
			AccessToken string `json:"accessToken"`
		}

		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		switch req.AccessToken {
		case "valid":
			_, _ = fmt.Fprintf(w, `{"id":%q,"email":"jean@example.com"}`, userID)
		case "broken":
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	t.Cleanup(server.Close)

	c := identity.NewClient(server.URL)
	ctx := context.Background()

	session, err := c.Validate(ctx, "valid")
	require.NoError(t, err)
	require.Equal(t, entity.Session{UserID: userID, Email: "jean@example.com"}, session)

	_, err = c.Validate(ctx, "expired")
	require.ErrorIs(t, err, entity.ErrUnauthorized)

	_, err = c.Validate(ctx, "broken")
	require.Error(t, err)
	require.NotErrorIs(t, err, entity.ErrUnauthorized)
}
