package external

import (
	"context"
	"fmt"
	"time"

	"delivery-service/internal/models"
)

// UserClient asks the user service for the role of a user id
type UserClient struct {
	api *apiClient
}

// NewUserClient creates a client for the user service at baseURL
func NewUserClient(baseURL string, timeout time.Duration) *UserClient {
	return &UserClient{api: newAPIClient(baseURL, timeout)}
}

type userTypeResponse struct {
	UserType models.UserType `json:"userType"`
}

func (c *UserClient) GetUserType(ctx context.Context, userID int64) (models.UserType, error) {
	var body userTypeResponse
	if err := c.api.getJSON(ctx, fmt.Sprintf("/users/%d/type", userID), &body); err != nil {
		return "", fmt.Errorf("external: failed to get type of user %d: %w", userID, err)
	}
	return body.UserType, nil
}
