package account

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Active(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		want   bool
	}{
		{name: "active tier", status: StatusActive, want: true},
		{name: "free tier", status: StatusFree, want: false},
		{name: "empty status", status: Status(""), want: false},
		{name: "unknown status", status: Status("trial"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.Active())
		})
	}
}

func TestClient_CurrentSubscription(t *testing.T) {
	expiresAt := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name              string
		mockServerHandler func(t *testing.T, w http.ResponseWriter, r *http.Request)

		want            Subscription
		wantError       bool
		wantErrorString string
	}{
		{
			name: "active subscription",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/billing/v1/subscription", r.URL.Path)
				assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{"user_id": "user-1", "status": "active", "expires_at": "2026-12-01T00:00:00Z"}`))
			},
			want: Subscription{
				UserID:    "user-1",
				Status:    StatusActive,
				ExpiresAt: lo.ToPtr(expiresAt),
			},
		},
		{
			name: "missing status defaults to free",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{"user_id": "user-1"}`))
			},
			want: Subscription{
				UserID: "user-1",
				Status: StatusFree,
			},
		},
		{
			name: "unauthorized",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error": "invalid token"}`))
			},
			wantError:       true,
			wantErrorString: "status code: 401",
		},
		{
			name: "invalid JSON body",
			mockServerHandler: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`not json`))
			},
			wantError:       true,
			wantErrorString: "json.Unmarshal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tt.mockServerHandler(t, w, r)
			}))
			defer server.Close()

			client := NewClient(server.URL, "test-token")

			got, gotErr := client.CurrentSubscription(context.Background())
			if tt.wantError {
				require.Error(t, gotErr)
				assert.Contains(t, gotErr.Error(), tt.wantErrorString)
				return
			}

			require.NoError(t, gotErr)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatic_CurrentSubscription(t *testing.T) {
	service := Static{Subscription: Subscription{Status: StatusFree}}

	got, gotErr := service.CurrentSubscription(context.Background())
	require.NoError(t, gotErr)
	assert.Equal(t, Subscription{Status: StatusFree}, got)
}
