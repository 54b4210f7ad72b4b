package sleeper

import (
	"reflect"
	"testing"

	"github.com/mww/league_dashboard/model"
	"github.com/mww/league_dashboard/testutils"
)

func TestGetUserID(t *testing.T) {
	fake := testutils.NewFakeSleeperServer()
	defer fake.Close()
	client := NewForTest(fake.URL())

	tests := map[string]struct {
		username string
		exUserID string
		exErrMsg string
	}{
		"known user":   {username: "sleeperuser", exUserID: "12345678"},
		"unknown user": {username: "nobody", exErrMsg: "user not found"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			userID, err := client.GetUserID(tc.username)
			if tc.exErrMsg == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if userID != tc.exUserID {
					t.Errorf("expected user id %s, got: %s", tc.exUserID, userID)
				}
			} else {
				if err == nil || err.Error() != tc.exErrMsg {
					t.Errorf("expected error message: %s, got: %v", tc.exErrMsg, err)
				}
			}
		})
	}
}

func TestGetLeaguesForUser(t *testing.T) {
	fake := testutils.NewFakeSleeperServer()
	defer fake.Close()
	client := NewForTest(fake.URL())

	leagues, err := client.GetLeaguesForUser("12345678", "2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []model.League{
		{Name: "Footclan & Friends Dynasty", ExternalID: "924039165950484480", Season: "2024", Sport: "NFL", Platform: model.PlatformSleeper},
		{Name: "The Megalabowl", ExternalID: "1005178517580746753", Season: "2024", Sport: "NFL", Platform: model.PlatformSleeper},
	}
	if !reflect.DeepEqual(expected, leagues) {
		t.Errorf("leagues are not as expected, got: %v", leagues)
	}

	none, err := client.GetLeaguesForUser("12345678", "2020")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no leagues for 2020, got: %v", none)
	}
}
