package external

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"delivery-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetries(c *apiClient) {
	c.backoff = time.Millisecond
}

func TestUserClient_GetUserType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/7/type", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"userType":"COURIER"}`))
	}))
	defer server.Close()

	client := NewUserClient(server.URL+"/", time.Second)

	userType, err := client.GetUserType(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, models.UserTypeCourier, userType)
}

func TestUserClient_RetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"userType":"VENDOR"}`))
	}))
	defer server.Close()

	client := NewUserClient(server.URL, time.Second)
	fastRetries(client.api)

	userType, err := client.GetUserType(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, models.UserTypeVendor, userType)
	assert.Equal(t, int32(3), calls.Load())
}

func TestUserClient_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "no such user", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewUserClient(server.URL, time.Second)
	fastRetries(client.api)

	_, err := client.GetUserType(context.Background(), 99)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
	assert.Equal(t, int32(1), calls.Load())
}

func TestUserClient_GivesUpAfterMaxAttempts(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewUserClient(server.URL, time.Second)
	fastRetries(client.api)

	_, err := client.GetUserType(context.Background(), 1)
	assert.Error(t, err)
	assert.Equal(t, int32(4), calls.Load())
}

func TestUserClient_CancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"userType":"ADMIN"}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewUserClient(server.URL, time.Second).GetUserType(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestVendorDirectory_GetVendor(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/vendors/verified", r.URL.Path)
		w.Write([]byte(`[
			{"id": 3, "name": "Campus Kitchen", "location": {"country": "Netherlands", "city": "Delft", "postalCode": "2628 CD", "address": "Mekelweg 3"}},
			{"id": 5, "name": "Turfmarkt Deli", "location": {"country": "Netherlands", "city": "Delft", "postalCode": "2611 CP", "address": "Brabantse Turfmarkt 78"}}
		]`))
	}))
	defer server.Close()

	directory := NewVendorDirectory(NewVendorClient(server.URL, time.Second))

	vendor, err := directory.GetVendor(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "Brabantse Turfmarkt 78", vendor.Location.Address)

	_, err = directory.GetVendor(context.Background(), 4)
	require.Error(t, err)
	assert.True(t, models.IsEntityNotFound(err))
}

func TestFakes(t *testing.T) {
	ctx := context.Background()

	userType, err := FakeUserAPI{}.GetUserType(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, models.UserTypeAdmin, userType)

	vendor, err := NewVendorDirectory(FakeVendorAPI{}).GetVendor(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Mekelweg 3, 2628 CD Delft, Netherlands", vendor.Location.String())

	for _, entry := range FakeAddresses {
		assert.NoError(t, entry.Coordinate.Validate())
	}
}
