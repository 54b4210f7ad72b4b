package testutils

import (
	"context"
	"log"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/mww/league_dashboard/containers"
	"github.com/mww/league_dashboard/db"
	"github.com/mww/league_dashboard/model"
)

var (
	CommishUser = &model.User{
		ID:        "u-commish",
		Email:     "commish@example.com",
		FirstName: "Casey",
		LastName:  "Commish",
	}
	RivalUser = &model.User{
		ID:        "u-rival",
		Email:     "rival@example.com",
		FirstName: "Riley",
		LastName:  "Rival",
	}
)

type TestDB struct {
	container *containers.DBContainer
	DB        db.DB
	Clock     clock.Clock
}

func NewTestDB() *TestDB {
	container := containers.NewDBContainer()
	clock := clock.New()

	db, err := db.New(context.Background(), container.ConnectionString(), clock)
	if err != nil {
		log.Fatalf("error connecting to db in test container: %v", err)
	}

	if err := InsertTestUsers(db); err != nil {
		log.Fatalf("error populating db in test container: %v", err)
	}

	return &TestDB{
		container: container,
		DB:        db,
		Clock:     clock,
	}
}

func (db *TestDB) Shutdown() {
	db.container.Shutdown()
}

func InsertTestUsers(db db.DB) error {
	users := []*model.User{
		CommishUser,
		RivalUser,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, u := range users {
		if _, err := db.UpsertUser(ctx, u); err != nil {
			return err
		}
	}

	return nil
}
