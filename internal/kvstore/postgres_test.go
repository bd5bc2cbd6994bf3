package kvstore_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront-client/internal/kvstore"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

type postgresSuite struct {
	suite.Suite

	container *postgres.PostgresContainer
	pool      *pgxpool.Pool
	kv        *kvstore.Postgres
}

func TestPostgresSuite(t *testing.T) {
	suite.Run(t, new(postgresSuite))
}

func (suite *postgresSuite) SetupSuite() {
	ctx := suite.T().Context()

	var (
		connStr string
		err     error
	)

	suite.container, connStr, err = startPostgres(ctx)
	suite.Require().NoError(err)

	suite.kv, suite.pool, err = kvstore.OpenPostgres(ctx, connStr)
	suite.Require().NoError(err)
}

func (suite *postgresSuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
	if suite.container != nil {
		suite.NoError(testcontainers.TerminateContainer(suite.container))
	}
}

func (suite *postgresSuite) TestContract() {
	testKeyValueStore(suite.T(), suite.kv)
}

func (suite *postgresSuite) TestEmptyKey() {
	ctx := suite.T().Context()

	_, _, err := suite.kv.Get(ctx, "")
	suite.Error(err)

	suite.Error(suite.kv.Set(ctx, "", "v"))
	suite.Error(suite.kv.Remove(ctx, ""))
}

func (suite *postgresSuite) TestWithTx_Rollback() {
	ctx := suite.T().Context()

	tx, err := suite.pool.Begin(ctx)
	suite.Require().NoError(err)

	txKV := kvstore.NewPostgresWithTx(tx)
	suite.Require().NoError(txKV.Set(ctx, "cartItems", "[]"))

	_, ok, err := txKV.Get(ctx, "cartItems")
	suite.Require().NoError(err)
	suite.True(ok)

	suite.Require().NoError(tx.Rollback(ctx))

	_, ok, err = suite.kv.Get(ctx, "cartItems")
	suite.Require().NoError(err)
	suite.False(ok)
}

func startPostgres(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	postgresContainer, err := postgres.Run(ctx, "postgres:17.6-alpine3.22",
		postgres.BasicWaitStrategies(),
		postgres.WithInitScripts(
			"../migrations/01_kv_entries.up.sql"),
	)
	if err != nil {
		return nil, "", fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", fmt.Errorf("pc.ConnectionString: %w", err)
	}

	return postgresContainer, connStr, nil
}
