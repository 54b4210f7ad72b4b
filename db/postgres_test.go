package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/mww/league_dashboard/containers"
	"github.com/mww/league_dashboard/model"
)

var (
	// A test global db instance to use for all of the tests instead of setting up a new one each time.
	testDB DB

	// a counter to generate unique ids for each test. To help keep them separated.
	idCtr = int32(0)
)

// TestMain controls the main for the tests and allows for setup and shutdown of the tests
func TestMain(m *testing.M) {
	container := containers.NewDBContainer()

	clock := clock.New()

	defer func() {
		// Catch all panics to make sure the shutdown is successfully run
		if r := recover(); r != nil {
			if container != nil {
				container.Shutdown()
			}
			fmt.Println("panic")
		}
	}()

	var err error
	testDB, err = New(context.Background(), container.ConnectionString(), clock)
	if err != nil {
		fmt.Printf("error connecting to db: %v", err)
		os.Exit(-1)
	}

	code := m.Run()
	container.Shutdown()
	os.Exit(code)
}

func TestUsers_upsertAndGet(t *testing.T) {
	ctx := context.Background()
	u := getUser()

	res, err := testDB.UpsertUser(ctx, u)
	assertFatalf(t, err == nil, "error upserting user: %v", err)

	assertEquals(t, "ID", u.ID, res.ID)
	assertEquals(t, "Email", u.Email, res.Email)
	assertEquals(t, "FirstName", u.FirstName, res.FirstName)
	assertEquals(t, "LastName", u.LastName, res.LastName)
	assertEquals(t, "ProfileImageURL", u.ProfileImageURL, res.ProfileImageURL)

	// A fresh insert has a created time but no updated time.
	if res.Created.IsZero() {
		t.Errorf("expected created time to not be zero")
	}
	if !res.Updated.IsZero() {
		t.Errorf("expected updated time to be zero")
	}

	// Upsert again with a changed name, the same row must be updated.
	u.FirstName = "Updated"
	res2, err := testDB.UpsertUser(ctx, u)
	assertFatalf(t, err == nil, "error upserting user again: %v", err)
	assertEquals(t, "FirstName", "Updated", res2.FirstName)
	assertEquals(t, "Created", res.Created, res2.Created)
	if res2.Updated.IsZero() {
		t.Errorf("expected updated time to not be zero after second upsert")
	}

	got, err := testDB.GetUser(ctx, u.ID)
	assertFatalf(t, err == nil, "error getting user: %v", err)
	assertEquals(t, "FirstName", "Updated", got.FirstName)

	// Lookup a user that doesn't exist
	missing, err := testDB.GetUser(ctx, "no-such-user")
	assertFatalf(t, err != nil, "expected an error getting a missing user")
	assertEquals(t, "error type", true, errors.Is(err, ErrUserNotFound))
	if missing != nil {
		t.Errorf("expected missing user to be nil, but was %v", missing)
	}
}

func TestSessions(t *testing.T) {
	ctx := context.Background()
	u := mustUpsertUser(t)

	s := &model.Session{
		ID:     fmt.Sprintf("sid-%d", nextID()),
		UserID: u.ID,
		Expire: time.Now().UTC().Add(time.Hour).Truncate(time.Microsecond),
	}
	if err := testDB.CreateSession(ctx, s); err != nil {
		t.Fatalf("error creating session: %v", err)
	}

	got, err := testDB.GetSession(ctx, s.ID)
	assertFatalf(t, err == nil, "error getting session: %v", err)
	assertEquals(t, "UserID", u.ID, got.UserID)
	if !got.Expire.Equal(s.Expire) {
		t.Errorf("expire - expected: %v, got: %v", s.Expire, got.Expire)
	}

	if err := testDB.DeleteSession(ctx, s.ID); err != nil {
		t.Fatalf("error deleting session: %v", err)
	}

	_, err = testDB.GetSession(ctx, s.ID)
	assertEquals(t, "error type", true, errors.Is(err, ErrSessionNotFound))

	// Deleting a session that doesn't exist is not an error.
	if err := testDB.DeleteSession(ctx, s.ID); err != nil {
		t.Errorf("unexpected error deleting a deleted session: %v", err)
	}
}

func TestDeleteExpiredSessions(t *testing.T) {
	ctx := context.Background()
	u := mustUpsertUser(t)

	expired := &model.Session{
		ID:     fmt.Sprintf("sid-%d", nextID()),
		UserID: u.ID,
		Expire: time.Now().UTC().Add(-time.Hour),
	}
	live := &model.Session{
		ID:     fmt.Sprintf("sid-%d", nextID()),
		UserID: u.ID,
		Expire: time.Now().UTC().Add(time.Hour),
	}
	if err := errors.Join(testDB.CreateSession(ctx, expired), testDB.CreateSession(ctx, live)); err != nil {
		t.Fatalf("error creating sessions: %v", err)
	}

	if _, err := testDB.DeleteExpiredSessions(ctx); err != nil {
		t.Fatalf("error deleting expired sessions: %v", err)
	}

	_, err := testDB.GetSession(ctx, expired.ID)
	assertEquals(t, "expired session gone", true, errors.Is(err, ErrSessionNotFound))

	if _, err := testDB.GetSession(ctx, live.ID); err != nil {
		t.Errorf("live session should still exist: %v", err)
	}
}

func TestLeagues(t *testing.T) {
	ctx := context.Background()

	l1 := getLeague("Office League")
	l2 := getLeague("Dynasty League")

	if err := testDB.AddLeague(ctx, l1); err != nil {
		t.Fatalf("unexpected error adding league: %v", err)
	}
	if l1.ID <= 0 {
		t.Errorf("league ID was not set as expected: %d", l1.ID)
	}
	if l1.Created.IsZero() {
		t.Errorf("expected created time to not be zero")
	}

	if err := testDB.AddLeague(ctx, l2); err != nil {
		t.Fatalf("unexpected error adding league: %v", err)
	}

	leagues, err := testDB.ListLeagues(ctx)
	if err != nil {
		t.Fatalf("unexpected error listing leagues: %v", err)
	}
	// Newest created first, and both test leagues present.
	if len(leagues) < 2 {
		t.Fatalf("expected at least 2 leagues, got %d", len(leagues))
	}
	for i := 1; i < len(leagues); i++ {
		if leagues[i].Created.After(leagues[i-1].Created) {
			t.Errorf("leagues are not ordered newest first at index %d", i)
		}
	}

	r1, err := testDB.GetLeague(ctx, l1.ID)
	if err != nil {
		t.Fatalf("error getting league by id: %v", err)
	}
	assertEquals(t, "Name", l1.Name, r1.Name)
	assertEquals(t, "Platform", l1.Platform, r1.Platform)
	assertEquals(t, "Sport", l1.Sport, r1.Sport)
	assertEquals(t, "Season", l1.Season, r1.Season)
	assertEquals(t, "ExternalID", l1.ExternalID, r1.ExternalID)

	// Lookup a league that doesn't exist
	missing, err := testDB.GetLeague(ctx, 999999)
	assertFatalf(t, err != nil, "expected an error getting a missing league")
	assertEquals(t, "error type", true, errors.Is(err, ErrLeagueNotFound))
	if missing != nil {
		t.Errorf("expected missing league to be nil, but was %v", missing)
	}
}

func TestLeagueSettings(t *testing.T) {
	ctx := context.Background()

	l := getLeague("Settings League")
	l.Settings = []byte(`{"scoring": "ppr", "teams": 12}`)

	if err := testDB.AddLeague(ctx, l); err != nil {
		t.Fatalf("error adding league: %v", err)
	}

	got, err := testDB.GetLeague(ctx, l.ID)
	if err != nil {
		t.Fatalf("error getting league: %v", err)
	}
	if len(got.Settings) == 0 {
		t.Fatalf("expected settings to round-trip, got none")
	}
}

func nextID() int32 {
	return atomic.AddInt32(&idCtr, 1)
}

func getUser() *model.User {
	id := nextID()

	return &model.User{
		ID:              fmt.Sprintf("user-%d", id),
		Email:           fmt.Sprintf("user%d@example.com", id),
		FirstName:       "Jordan",
		LastName:        "Fisher",
		ProfileImageURL: "https://example.com/avatar.png",
	}
}

func getLeague(name string) *model.League {
	return &model.League{
		Name:       name,
		Platform:   model.PlatformESPN,
		Sport:      "NFL",
		Season:     "2024",
		ExternalID: fmt.Sprintf("%d", nextID()),
	}
}

func mustUpsertUser(t *testing.T) *model.User {
	t.Helper()
	u, err := testDB.UpsertUser(context.Background(), getUser())
	if err != nil {
		t.Fatalf("error upserting user: %v", err)
	}
	return u
}

func mustAddLeague(t *testing.T, name string) *model.League {
	t.Helper()
	l := getLeague(name)
	if err := testDB.AddLeague(context.Background(), l); err != nil {
		t.Fatalf("error adding league: %v", err)
	}
	return l
}

func assertFatalf(t *testing.T, c bool, f string, args ...any) {
	t.Helper()
	if !c {
		t.Fatalf(f, args...)
	}
}

func assertEquals(t *testing.T, field string, expected, actual any) {
	t.Helper()
	if expected != actual {
		t.Errorf("%s - expected: '%v', got: '%v'", field, expected, actual)
	}
}
