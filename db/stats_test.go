package db

import (
	"context"
	"testing"

	"github.com/mww/league_dashboard/model"
	"github.com/shopspring/decimal"
)

func TestWeeklyStats(t *testing.T) {
	ctx := context.Background()
	u := mustUpsertUser(t)
	l := mustAddLeague(t, "Stats League")

	team := &model.Team{UserID: u.ID, LeagueID: l.ID, Name: "Stats Team", ExternalID: "ext-stats", Active: true}
	if err := testDB.AddTeam(ctx, team); err != nil {
		t.Fatalf("error adding team: %v", err)
	}

	// Insert out of order across two years to check the (year, week) ordering.
	weeks := []struct {
		week, year int
		points     string
		result     model.Result
	}{
		{week: 3, year: 2024, points: "101.50", result: model.ResultWin},
		{week: 1, year: 2024, points: "88.00", result: model.ResultLoss},
		{week: 17, year: 2023, points: "120.25", result: model.ResultWin},
		{week: 2, year: 2024, points: "95.75", result: model.ResultTie},
	}
	for _, w := range weeks {
		s := &model.WeeklyStats{
			TeamID:         team.ID,
			Week:           w.week,
			Year:           w.year,
			Points:         decimal.RequireFromString(w.points),
			OpponentPoints: decimal.RequireFromString("90.00"),
			Result:         w.result,
		}
		if err := testDB.AddWeeklyStats(ctx, s); err != nil {
			t.Fatalf("error adding weekly stats for week %d: %v", w.week, err)
		}
	}

	stats, err := testDB.GetTeamWeeklyStats(ctx, team.ID)
	if err != nil {
		t.Fatalf("error getting weekly stats: %v", err)
	}
	assertFatalf(t, len(stats) == 4, "expected 4 stats rows, got %d", len(stats))

	expected := []struct {
		week, year int
	}{
		{week: 17, year: 2023},
		{week: 1, year: 2024},
		{week: 2, year: 2024},
		{week: 3, year: 2024},
	}
	for i, ex := range expected {
		assertEquals(t, "year", ex.year, stats[i].Year)
		assertEquals(t, "week", ex.week, stats[i].Week)
	}
	assertEquals(t, "Result", model.ResultWin, stats[0].Result)
	if !stats[0].Points.Equal(decimal.RequireFromString("120.25")) {
		t.Errorf("Points - expected 120.25, got: %s", stats[0].Points)
	}
}

func TestWeeklyStats_duplicateWeeksAllowed(t *testing.T) {
	ctx := context.Background()
	u := mustUpsertUser(t)
	l := mustAddLeague(t, "Dup Stats League")

	team := &model.Team{UserID: u.ID, LeagueID: l.ID, Name: "Dup Team", ExternalID: "ext-dup", Active: true}
	if err := testDB.AddTeam(ctx, team); err != nil {
		t.Fatalf("error adding team: %v", err)
	}

	// There is no uniqueness constraint on (team, week, year).
	for i := 0; i < 2; i++ {
		s := &model.WeeklyStats{
			TeamID: team.ID,
			Week:   4,
			Year:   2024,
			Points: decimal.RequireFromString("100.00"),
			Result: model.ResultWin,
		}
		if err := testDB.AddWeeklyStats(ctx, s); err != nil {
			t.Fatalf("error adding duplicate weekly stats: %v", err)
		}
	}

	stats, err := testDB.GetTeamWeeklyStats(ctx, team.ID)
	if err != nil {
		t.Fatalf("error getting weekly stats: %v", err)
	}
	assertEquals(t, "num stats rows", 2, len(stats))
}
