package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitswitch/internal/membership"
	"fitswitch/internal/wallet"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return New(srv.URL, 5*time.Second), srv
}

func TestDo_SendsBearerToken(t *testing.T) {
	var gotAuth string
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})
	defer srv.Close()

	_, err := client.ListGyms(context.Background(), "secret-token")
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-token", gotAuth)
}

func TestDo_NoTokenMeansNoHeader(t *testing.T) {
	var hasAuth bool
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		_, hasAuth = r.Header["Authorization"]
		w.Write([]byte(`{"success":true,"message":"ok"}`))
	})
	defer srv.Close()

	_, err := client.ResendOtp(context.Background(), "a@b.com")
	require.NoError(t, err)
	assert.False(t, hasAuth)
}

func TestDo_NonOK_ParsesMessageBody(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"You already checked out today"}`))
	})
	defer srv.Close()

	_, err := client.MembershipSessions().CheckIn(context.Background(), "tok", 42)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "You already checked out today", apiErr.ServerMessage())
}

func TestDo_NonOK_FallsBackToErrorField(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":"Owner access required"}`))
	})
	defer srv.Close()

	_, err := client.ListOwnerGyms(context.Background(), "tok")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Owner access required", apiErr.Message)
}

func TestDo_NonOK_GarbageBody_EmptyMessage(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<html>Internal Server Error</html>`))
	})
	defer srv.Close()

	_, err := client.ListGyms(context.Background(), "tok")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Empty(t, apiErr.Message)
	assert.Contains(t, apiErr.Error(), "500")
}

func TestDo_TransportError_NotAPIError(t *testing.T) {
	client := New("http://127.0.0.1:1", 200*time.Millisecond)

	_, err := client.ListGyms(context.Background(), "tok")
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestMembershipSessions_CheckIn_PostsMembershipID(t *testing.T) {
	var gotPath string
	var gotBody map[string]interface{}
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"sessionId":7,"membershipId":42,"status":"ACTIVE","checkInTime":"2024-05-01T09:00:00Z"}`))
	})
	defer srv.Close()

	sess, err := client.MembershipSessions().CheckIn(context.Background(), "tok", 42)
	require.NoError(t, err)
	assert.Equal(t, "/user/membership-session/check-in", gotPath)
	assert.Equal(t, float64(42), gotBody["membershipId"])
	assert.Equal(t, int64(7), sess.ID)
}

func TestMembershipSessions_Current_NotFoundMeansNoSession(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"No session found"}`))
	})
	defer srv.Close()

	sess, err := client.MembershipSessions().Current(context.Background(), "tok", 42)
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestMembershipSessions_Current_EmptyBodyMeansNoSession(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	defer srv.Close()

	sess, err := client.MembershipSessions().Current(context.Background(), "tok", 42)
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestFacilitySessions_Current_UsesSubscriptionQuery(t *testing.T) {
	var gotQuery string
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"sessionId":9,"facilitySubscriptionId":5,"status":"ACTIVE","checkInTime":"2024-05-01T09:00:00Z"}`))
	})
	defer srv.Close()

	sess, err := client.FacilitySessions().Current(context.Background(), "tok", 5)
	require.NoError(t, err)
	assert.Equal(t, "facilitySubscriptionId=5", gotQuery)
	assert.Equal(t, int64(9), sess.ID)
}

func TestTotalEarnings_DecodesBareNumber(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`12345.50`))
	})
	defer srv.Close()

	total, err := client.TotalEarnings(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, 12345.50, total)
}

func TestWalletAddMoney_RoundTrip(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		var req wallet.AddMoneyRequest
		json.NewDecoder(r.Body).Decode(&req)
		resp := wallet.Wallet{ID: 1, UserID: 2, Balance: 500 + req.Amount}
		json.NewEncoder(w).Encode(resp)
	})
	defer srv.Close()

	w, err := client.AddMoney(context.Background(), "tok", wallet.AddMoneyRequest{Amount: 250})
	require.NoError(t, err)
	assert.Equal(t, 750.0, w.Balance)
}

func TestApproveUnsubscribe_PathAndBody(t *testing.T) {
	var gotPath string
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"id":11,"status":"APPROVED"}`))
	})
	defer srv.Close()

	rec, err := client.ApproveUnsubscribeRequest(context.Background(), "tok", 11, membership.ApprovalRequest{OwnerNotes: "ok"})
	require.NoError(t, err)
	assert.Equal(t, "/api/owner/unsubscribe-requests/11/approve", gotPath)
	assert.Equal(t, "APPROVED", rec.Status)
}
