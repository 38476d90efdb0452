//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"creditguard/internal/creditreport/models"
	"creditguard/internal/creditreport/store"
	"creditguard/pkg/platform/sentinel"
	"creditguard/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = store.NewPostgresStore(s.postgres.DB, time.Hour)
	s.Require().NoError(s.store.EnsureSchema(context.Background()))
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "credit_profiles"))
}

func (s *PostgresStoreSuite) TestLatestSnapshotWins() {
	ctx := context.Background()
	first := models.EmptyProfile(models.BureauEquifax)
	first.Provider = "EFX"
	second := models.EmptyProfile(models.BureauEquifax)
	second.Provider = "EQUIFAX"

	s.Require().NoError(s.store.Save(ctx, "user-1", &first))
	s.Require().NoError(s.store.Save(ctx, "user-1", &second))

	got, err := s.store.FindLatest(ctx, "user-1", models.BureauEquifax)
	s.Require().NoError(err)
	s.Equal("EQUIFAX", got.Provider)
}

func (s *PostgresStoreSuite) TestNotFound() {
	_, err := s.store.FindLatest(context.Background(), "nobody", models.BureauExperian)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestExpiredSnapshotsAreIgnored() {
	ctx := context.Background()
	p := models.EmptyProfile(models.BureauExperian)
	s.Require().NoError(s.store.Save(ctx, "user-1", &p))
	_, err := s.postgres.Exec(ctx, `UPDATE credit_profiles SET stored_at = now() - interval '2 hours'`)
	s.Require().NoError(err)

	_, err = s.store.FindLatest(ctx, "user-1", models.BureauExperian)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestListLatestPerBureau() {
	ctx := context.Background()
	for _, b := range []models.Bureau{models.BureauTransUnion, models.BureauEquifax, models.BureauTransUnion} {
		p := models.EmptyProfile(b)
		s.Require().NoError(s.store.Save(ctx, "user-1", &p))
	}
	other := models.EmptyProfile(models.BureauExperian)
	s.Require().NoError(s.store.Save(ctx, "user-2", &other))

	list, err := s.store.ListLatest(ctx, "user-1")
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal(models.BureauEquifax, list[0].Bureau)
	s.Equal(models.BureauTransUnion, list[1].Bureau)
}
