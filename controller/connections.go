package controller

import (
	"context"
	"fmt"

	"github.com/mww/league_dashboard/model"
	"golang.org/x/oauth2"
)

func (c *controller) LinkStart(userID, platform string) (string, error) {
	config, err := c.linkConfig(platform)
	if err != nil {
		return "", err
	}

	state := generateRandomState()
	c.saveState(state, &oauthState{
		userID:   userID,
		platform: platform,
		expiry:   c.clock.Now().Add(oauthStateExpiry),
	})

	return config.AuthCodeURL(state, oauth2.AccessTypeOffline), nil
}

func (c *controller) LinkComplete(ctx context.Context, state, code string) (*model.Connection, error) {
	s, ok := c.takeState(state)
	if !ok {
		return nil, invalidf("invalid oauth state")
	}
	if s.platform == "" {
		return nil, invalidf("state is not from a link flow")
	}

	config, err := c.linkConfig(s.platform)
	if err != nil {
		return nil, err
	}

	token, err := config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("error exchanging auth code: %w", err)
	}

	conn := &model.Connection{
		UserID:       s.userID,
		Platform:     s.platform,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    token.Expiry,
		Active:       true,
	}
	if err := c.db.AddConnection(ctx, conn); err != nil {
		return nil, fmt.Errorf("error saving %s connection: %w", s.platform, err)
	}

	return conn, nil
}

func (c *controller) GetUserConnections(ctx context.Context, userID string) ([]model.Connection, error) {
	return c.db.GetUserConnections(ctx, userID)
}

// GetConnectionToken returns an oauth token for the user's platform
// connection. If the saved token has expired it is refreshed and the new
// token is written back to the database.
func (c *controller) GetConnectionToken(ctx context.Context, userID, platform string) (*oauth2.Token, error) {
	config, err := c.linkConfig(platform)
	if err != nil {
		return nil, err
	}

	conns, err := c.db.GetUserConnections(ctx, userID)
	if err != nil {
		return nil, err
	}

	var conn *model.Connection
	for i := range conns {
		if conns[i].Platform == platform {
			conn = &conns[i]
			break
		}
	}
	if conn == nil {
		return nil, fmt.Errorf("no active %s connection for user", platform)
	}

	token := &oauth2.Token{
		AccessToken:  conn.AccessToken,
		RefreshToken: conn.RefreshToken,
		Expiry:       conn.ExpiresAt,
	}

	// TokenSource refreshes automatically when the token has expired.
	newToken, err := config.TokenSource(ctx, token).Token()
	if err != nil {
		return nil, fmt.Errorf("error refreshing %s token: %w", platform, err)
	}

	if newToken.AccessToken != token.AccessToken {
		update := &model.ConnectionUpdate{
			AccessToken:  &newToken.AccessToken,
			RefreshToken: &newToken.RefreshToken,
			ExpiresAt:    &newToken.Expiry,
		}
		if _, err := c.db.UpdateConnection(ctx, conn.ID, update); err != nil {
			return nil, fmt.Errorf("error saving refreshed %s token: %w", platform, err)
		}
	}

	return newToken, nil
}

// linkConfig returns the oauth config used to link a platform account.
// Sleeper has no oauth API, and ESPN has no public one.
func (c *controller) linkConfig(platform string) (*oauth2.Config, error) {
	switch platform {
	case model.PlatformYahoo:
		if c.yahooConfig == nil {
			return nil, fmt.Errorf("no Yahoo oauth config provided")
		}
		return c.yahooConfig, nil
	default:
		return nil, invalidf("%s connections are not supported", platform)
	}
}
