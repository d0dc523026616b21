//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"

	"supplier-marketplace/cmd/bootstrap"
	"supplier-marketplace/cmd/bootstrap/components"
	"supplier-marketplace/internal/infra/db"
	"supplier-marketplace/internal/pkg/config"
	"supplier-marketplace/migrations"
	"supplier-marketplace/tests/common/dbtest"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
	pgPort     = nat.Port("5432/tcp")
)

// durability is irrelevant for throwaway test data
var pgSettings = map[string]string{
	"fsync":              "off",
	"full_page_writes":   "off",
	"synchronous_commit": "off",
	"shared_buffers":     "256MB",
	"max_connections":    "200",
	"log_statement":      "none",
	"log_checkpoints":    "off",
}

// pgServer is the postgres container shared by every suite in one test binary. Ryuk reaps it
// when the process exits.
type pgServer struct {
	container testcontainers.Container
	host      string
	port      nat.Port
}

var (
	serverOnce sync.Once
	server     *pgServer
	serverErr  error
)

func (p *pgServer) dsn(database string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		pgUser, pgPassword, p.host, p.port.Port(), database)
}

func sharedServer(t *testing.T) *pgServer {
	t.Helper()
	serverOnce.Do(func() {
		server, serverErr = startServer()
	})
	require.NoError(t, serverErr, "postgres container unavailable")
	return server
}

func startServer() (*pgServer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	cmd := []string{"postgres"}
	for k, v := range pgSettings {
		cmd = append(cmd, "-c", k+"="+v)
	}

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{string(pgPort)},
			Env: map[string]string{
				"POSTGRES_USER":     pgUser,
				"POSTGRES_PASSWORD": pgPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs:  map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
			Cmd:    cmd,
			Labels: map[string]string{"purpose": "supplier-marketplace-e2e"},
			WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
				return (&pgServer{host: host, port: port}).dsn("postgres")
			}).WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return nil, err
	}

	host, err := c.Host(ctx)
	if err != nil {
		return nil, err
	}
	port, err := c.MappedPort(ctx, pgPort)
	if err != nil {
		return nil, err
	}
	return &pgServer{container: c, host: host, port: port}, nil
}

// createDatabase makes a fresh database and drops it on cleanup. CREATE DATABASE can race with
// template1 being in use right after start, hence the retries.
func (p *pgServer) createDatabase(t *testing.T) string {
	t.Helper()
	name := "e2e_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, p.dsn("postgres"))
	require.NoError(t, err, "admin connection")
	defer admin.Close()

	backoff := 250 * time.Millisecond
	for attempt := 1; ; attempt++ {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
		if err == nil || attempt == 5 {
			break
		}
		slog.Warn("create database failed, retrying", "attempt", attempt, "error", err.Error())
		time.Sleep(backoff)
		backoff = min(backoff*2, 3*time.Second)
	}
	require.NoError(t, err, "create test database")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, p.dsn("postgres"))
		if err != nil {
			slog.Warn("drop database: connect", "database", name, "error", err.Error())
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("drop database", "database", name, "error", err.Error())
		}
	})
	return name
}

func (p *pgServer) dbConfig(name string) config.DBConfig {
	return config.DBConfig{
		Host:     p.host,
		Port:     p.port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "Europe/Moscow",
		MaxConns: 10,
	}
}

func migrate(pool *pgxpool.Pool) error {
	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()
	return migrations.Up(sqlDB)
}

// startApp wires the production modules around an already migrated pool. The test config
// replaces env loading, so SERVICES is "all" and events go to the no-op publisher.
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()

	var router *gin.Engine
	app := fx.New(
		fx.Supply(pool, cfg),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.ClockModule,
		bootstrap.JWTModule,
		bootstrap.EventsModule,
		components.PersistenceModule,
		components.ClientModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "start fx app")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("stop fx app", "error", err.Error())
		}
	})
	return router
}

// SharedSuite gives each e2e suite its own migrated database and a router over the full
// application graph. Tables are truncated before every test and subtest.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	srv := sharedServer(t)
	dbCfg := srv.dbConfig(srv.createDatabase(t))

	pool, err := db.Connect(context.Background(), dbCfg)
	require.NoError(t, err, "connect test database")
	t.Cleanup(pool.Close)
	require.NoError(t, migrate(pool), "apply migrations")

	s.Config = config.NewTestConfig()
	s.Config.DB = dbCfg
	s.DB = pool
	s.Router = startApp(t, pool, s.Config)
}

func (s *SharedSuite) SetupTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "reset database")
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "reset database")
}
