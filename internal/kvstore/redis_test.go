package kvstore_test

import (
	"testing"

	"github.com/nikolayk812/storefront-client/internal/kvstore"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

type redisSuite struct {
	suite.Suite

	container *tcredis.RedisContainer
	addr      string
	kv        *kvstore.Redis
}

func TestRedisSuite(t *testing.T) {
	suite.Run(t, new(redisSuite))
}

func (suite *redisSuite) SetupSuite() {
	ctx := suite.T().Context()

	var err error

	suite.container, err = tcredis.Run(ctx, "redis:7-alpine")
	suite.Require().NoError(err)

	suite.addr, err = suite.container.ConnectionString(ctx)
	suite.Require().NoError(err)

	suite.kv, err = kvstore.OpenRedis(ctx, suite.addr, "storefront:")
	suite.Require().NoError(err)
}

func (suite *redisSuite) TearDownSuite() {
	if suite.kv != nil {
		suite.NoError(suite.kv.Close())
	}
	if suite.container != nil {
		suite.NoError(testcontainers.TerminateContainer(suite.container))
	}
}

func (suite *redisSuite) TestContract() {
	testKeyValueStore(suite.T(), suite.kv)
}

func (suite *redisSuite) TestPrefixIsolation() {
	ctx := suite.T().Context()

	other, err := kvstore.OpenRedis(ctx, suite.addr, "other:")
	suite.Require().NoError(err)
	defer func() { suite.NoError(other.Close()) }()

	suite.Require().NoError(suite.kv.Set(ctx, "mode", "dark"))

	_, ok, err := other.Get(ctx, "mode")
	suite.Require().NoError(err)
	suite.False(ok)
}
