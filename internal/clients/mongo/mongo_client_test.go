package mongo

import (
	"context"
	"sync"
	"testing"

	"volta-cms/internal/config"
	"volta-cms/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	msgClientShouldBeNil = "client should be nil on connection failure"
	msgDBShouldBeNil     = "db should be nil on connection failure"
	mongoTestURI         = "mongodb://invalid/?connectTimeoutMS=1&serverSelectionTimeoutMS=1"
)

// failingDriver fails immediately to avoid retry delays
type failingDriver struct{}

func (failingDriver) Connect(_ context.Context, _ *options.ClientOptions) (*mongo.Client, error) {
	return nil, context.DeadlineExceeded
}

func (failingDriver) Ping(_ context.Context, _ *mongo.Client) error {
	return context.DeadlineExceeded
}

func (failingDriver) Disconnect(_ context.Context, _ *mongo.Client) error { return nil }

// okDriver hands out a lazily-connecting client and pretends the ping worked
type okDriver struct{}

func (okDriver) Connect(_ context.Context, opts *options.ClientOptions) (*mongo.Client, error) {
	return mongo.Connect(opts)
}

func (okDriver) Ping(_ context.Context, _ *mongo.Client) error { return nil }

func (okDriver) Disconnect(ctx context.Context, cli *mongo.Client) error {
	return cli.Disconnect(ctx)
}

// reset clears the singleton state so each test starts clean.
func reset() {
	mu.Lock()
	defer mu.Unlock()
	client = nil
	db = nil
	initErr = nil
}

func withDriver(t *testing.T, d driver) func() {
	t.Helper()
	old := drv
	drv = d
	return func() { drv = old }
}

func testCfg() config.Config {
	return config.Config{
		MongoURI:    mongoTestURI,
		MongoDBName: "test",
		LogLevel:    "error",
		LogFormat:   "json",
	}
}

func TestMongoClientIdempotency(t *testing.T) {
	defer withDriver(t, failingDriver{})()
	reset()
	defer reset()

	cfg := testCfg()
	log, err := logger.Init(cfg)
	require.NoError(t, err)

	ctx := context.Background()

	client1, db1, err1 := Init(ctx, cfg, log)
	client2, db2, err2 := Init(ctx, cfg, log)

	assert.Nil(t, client1, msgClientShouldBeNil)
	assert.Nil(t, db1, msgDBShouldBeNil)
	assert.Nil(t, client2, msgClientShouldBeNil)
	assert.Nil(t, db2, msgDBShouldBeNil)
	assert.Error(t, err1)
	assert.Error(t, err2)
}

func TestMongoClientSuccessPath(t *testing.T) {
	defer withDriver(t, okDriver{})()
	reset()
	defer reset()

	cfg := testCfg()
	log, err := logger.Init(cfg)
	require.NoError(t, err)

	ctx := context.Background()

	client1, db1, err := Init(ctx, cfg, log)
	require.NoError(t, err)
	require.NotNil(t, client1)
	require.NotNil(t, db1)
	assert.Equal(t, "test", db1.Name())

	client2, db2, err := Init(ctx, cfg, log)
	require.NoError(t, err)
	assert.Same(t, client1, client2, "second Init should return the cached client")
	assert.Same(t, db1, db2, "second Init should return the cached database")

	assert.Same(t, client1, Client())
	assert.Same(t, db1, DB())

	require.NoError(t, Shutdown(ctx))
	assert.Nil(t, Client())
	assert.Nil(t, DB())
}

func TestMongoClientShutdownIdempotency(t *testing.T) {
	defer withDriver(t, failingDriver{})()
	reset()
	defer reset()

	cfg := testCfg()
	log, err := logger.Init(cfg)
	require.NoError(t, err)

	ctx := context.Background()

	_, _, err = Init(ctx, cfg, log)
	require.Error(t, err)

	// never connected, so every Shutdown is a no-op
	assert.NoError(t, Shutdown(ctx))
	assert.NoError(t, Shutdown(ctx))

	assert.Nil(t, Client())
	assert.Nil(t, DB())
}

func TestMongoClientConcurrency(t *testing.T) {
	defer withDriver(t, failingDriver{})()
	reset()
	defer reset()

	cfg := testCfg()
	log, err := logger.Init(cfg)
	require.NoError(t, err)

	ctx := context.Background()

	const goroutines = 10
	var wg sync.WaitGroup
	clients := make([]*mongo.Client, goroutines)
	dbs := make([]*mongo.Database, goroutines)

	wg.Add(goroutines)

	for i := range goroutines {
		go func(index int) {
			defer wg.Done()
			client, db, err := Init(ctx, cfg, log)
			if err == nil {
				t.Errorf("Init should fail: %v", err)
			}
			clients[index] = client
			dbs[index] = db
		}(i)
	}

	wg.Wait()

	require.Nil(t, clients[0])
	require.Nil(t, dbs[0])

	for i := 1; i < goroutines; i++ {
		assert.Equal(t, clients[0], clients[i], "all clients should be nil")
		assert.Equal(t, dbs[0], dbs[i], "all databases should be nil")
	}
}
