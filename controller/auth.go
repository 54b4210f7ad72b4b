package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mww/league_dashboard/model"
	"golang.org/x/oauth2"
)

const (
	sessionDuration  = 7 * 24 * time.Hour
	oauthStateExpiry = 5 * time.Minute
)

func (c *controller) LoginStart() (string, error) {
	if c.identity == nil {
		return "", fmt.Errorf("no identity provider configured")
	}

	state := generateRandomState()
	c.saveState(state, &oauthState{expiry: c.clock.Now().Add(oauthStateExpiry)})

	return c.identity.Config.AuthCodeURL(state, oauth2.AccessTypeOffline), nil
}

func (c *controller) Login(ctx context.Context, state, code string) (*model.Session, error) {
	s, ok := c.takeState(state)
	if !ok {
		return nil, invalidf("invalid oauth state")
	}
	if s.platform != "" {
		return nil, invalidf("state is not from a login flow")
	}

	token, err := c.identity.Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("error exchanging auth code: %w", err)
	}

	user, err := c.fetchIdentity(ctx, token)
	if err != nil {
		return nil, err
	}

	if _, err := c.db.UpsertUser(ctx, user); err != nil {
		return nil, fmt.Errorf("error saving user %s: %w", user.ID, err)
	}

	session := &model.Session{
		ID:     uuid.NewString(),
		UserID: user.ID,
		Expire: c.clock.Now().Add(sessionDuration),
	}
	if err := c.db.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("error creating session for user %s: %w", user.ID, err)
	}

	return session, nil
}

// fetchIdentity asks the identity provider who the token belongs to.
func (c *controller) fetchIdentity(ctx context.Context, token *oauth2.Token) (*model.User, error) {
	client := c.identity.Config.Client(ctx, token)
	resp, err := client.Get(c.identity.UserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("error fetching user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user info request returned %s", resp.Status)
	}

	var claims struct {
		Sub        string `json:"sub"`
		Email      string `json:"email"`
		GivenName  string `json:"given_name"`
		FamilyName string `json:"family_name"`
		Picture    string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&claims); err != nil {
		return nil, fmt.Errorf("error parsing user info: %w", err)
	}
	if claims.Sub == "" {
		return nil, fmt.Errorf("user info response missing subject")
	}

	return &model.User{
		ID:              claims.Sub,
		Email:           claims.Email,
		FirstName:       claims.GivenName,
		LastName:        claims.FamilyName,
		ProfileImageURL: claims.Picture,
	}, nil
}

func (c *controller) Logout(ctx context.Context, sid string) error {
	return c.db.DeleteSession(ctx, sid)
}

func (c *controller) GetSessionUser(ctx context.Context, sid string) (*model.User, error) {
	session, err := c.db.GetSession(ctx, sid)
	if err != nil {
		return nil, err
	}

	if c.clock.Now().After(session.Expire) {
		if err := c.db.DeleteSession(ctx, sid); err != nil {
			log.Printf("error deleting expired session: %v", err)
		}
		return nil, fmt.Errorf("session expired")
	}

	return c.db.GetUser(ctx, session.UserID)
}

func (c *controller) GetUser(ctx context.Context, id string) (*model.User, error) {
	return c.db.GetUser(ctx, id)
}

// RunPeriodicSessionCleanup deletes expired sessions on a timer until shutdown
// is closed. Run it in a goroutine from main.
func (c *controller) RunPeriodicSessionCleanup(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	defer wg.Done()

	ticker := time.NewTicker(frequency)
	defer ticker.Stop()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			n, err := c.db.DeleteExpiredSessions(ctx)
			cancel()
			if err != nil {
				log.Printf("error deleting expired sessions: %v", err)
			} else if n > 0 {
				log.Printf("deleted %d expired sessions", n)
			}
		}
	}
}
