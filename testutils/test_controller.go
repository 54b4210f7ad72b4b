package testutils

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/itbasis/go-clock"
	"golang.org/x/oauth2"
)

type TestController struct {
	Clock          *clock.Mock
	IdentityConfig *oauth2.Config
	YahooConfig    *oauth2.Config
	fakeSleeper    *FakeSleeperServer
	fakeOAuth      *httptest.Server
}

func (c *TestController) Close() {
	c.fakeSleeper.Close()
	c.fakeOAuth.Close()
}

func (c *TestController) SleeperURL() string {
	return c.fakeSleeper.URL()
}

func (c *TestController) OAuthURL() string {
	return c.fakeOAuth.URL
}

func NewTestController(db *TestDB) *TestController {
	mock := clock.NewMock()
	mock.Set(time.Now())

	fakeOAuthServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		switch r.URL.Path {
		case "/userinfo":
			w.Write([]byte(`{
				"sub": "u-commish",
				"email": "commish@example.com",
				"given_name": "Casey",
				"family_name": "Commish",
				"picture": "https://example.com/commish.png"
			}`))
		default:
			w.Write([]byte(`{
				"access_token": "access_token",
				"refresh_token": "refresh_token",
				"token_type": "bearer",
				"expires_in": 3600
			}`))
		}
	}))

	fakeConfig := func() *oauth2.Config {
		return &oauth2.Config{
			ClientID:     "fakeClientID",
			ClientSecret: "fakeClientSecret",
			Endpoint: oauth2.Endpoint{
				AuthURL:  fmt.Sprintf("%s/auth", fakeOAuthServer.URL),
				TokenURL: fmt.Sprintf("%s/token", fakeOAuthServer.URL),
			},
			RedirectURL: fmt.Sprintf("%s/redirect", fakeOAuthServer.URL),
		}
	}

	return &TestController{
		Clock:          mock,
		IdentityConfig: fakeConfig(),
		YahooConfig:    fakeConfig(),
		fakeSleeper:    NewFakeSleeperServer(),
		fakeOAuth:      fakeOAuthServer,
	}
}
