package integration

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	_ "github.com/lib/pq"
)

func init() {
	// POSTGRES_DSN in a local .env skips starting a container.
	_ = godotenv.Load(".env")
}

func setupPQ(t *testing.T) *sql.DB {
	t.Helper()

	var db *sql.DB
	setupDatabase(t, func(dsn string) error {
		var err error
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 12*time.Second)
		defer cancel()
		return db.PingContext(ctx)
	})
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func setupSQLX(t *testing.T) *sqlx.DB {
	t.Helper()

	var db *sqlx.DB
	setupDatabase(t, func(dsn string) error {
		var err error
		db, err = sqlx.Connect("postgres", dsn)
		return err
	})
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func setupPGX(t *testing.T) *pgxpool.Pool {
	t.Helper()

	var db *pgxpool.Pool
	setupDatabase(t, func(dsn string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 12*time.Second)
		defer cancel()
		var err error
		db, err = pgxpool.New(ctx, dsn)
		if err != nil {
			return err
		}
		return db.Ping(ctx)
	})
	t.Cleanup(func() {
		db.Close() //nolint:errcheck
	})

	return db
}

func setupDatabase(t *testing.T, connect func(string) error) {
	t.Helper()

	if dsn := os.Getenv("POSTGRES_DSN"); dsn != "" {
		if err := connect(dsn); err != nil {
			t.Fatalf("Could not connect to %s: %s", dsn, err)
		}
		return
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("Could not construct pool: %s", err)
	}

	err = pool.Client.Ping()
	if err != nil {
		t.Fatalf("Could not connect to Docker: %s", err)
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=test",
			"POSTGRES_USER=test",
			"POSTGRES_DB=test",
			"listen_addresses='*'",
			"fsync='off'",
			"full_page_writes='off'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("Could not start resource: %s", err)
	}
	resource.Expire(120) //nolint:errcheck

	dsn := fmt.Sprintf("postgres://test:test@%s/test?sslmode=disable", resource.GetHostPort("5432/tcp"))

	pool.MaxWait = 120 * time.Second
	if err = pool.Retry(func() error {
		return connect(dsn)
	}); err != nil {
		t.Fatalf("Could not connect to docker: %s", err)
	}

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Fatalf("Could not purge resource: %s", err)
		}
	})
}

// playersTable (re)creates a players table with 10 players.
const playersTable = `
	DROP TABLE IF EXISTS players;
	CREATE TABLE players (
		"id" serial PRIMARY KEY,
		"name" text,
		"level" int,
		"class" text,
		"mount" text,
		"joined" date
	);
	INSERT INTO players
		("id", "name",    "level", "class",   "mount",   "joined") VALUES
		(1,    'Alice',   10,      'warrior', 'horse',   '2011-01-15'),
		(2,    'Bob',     20,      'mage',    'horse',   '2011-03-02'),
		(3,    'Charlie', 30,      'rogue',   NULL,      '2011-06-30'),
		(4,    'David',   40,      'warrior', NULL,      '2011-07-01'),
		(5,    'Eve',     50,      'mage',    'griffon', '2012-02-29'),
		(6,    'Frank',   60,      'rogue',   'griffon', '2012-05-05'),
		(7,    'Grace',   70,      'warrior', 'dragon',  '2013-01-01'),
		(8,    'Hank',    80,      'mage',    'dragon',  '2013-08-12'),
		(9,    'Ivy',     90,      'rogue',   'phoenix', '2014-04-20'),
		(10,   'O''Neil', 100,     'warrior', 'phoenix', '2015-12-31');
`

func createPlayersTable(t *testing.T, db *sql.DB) {
	t.Helper()

	if _, err := db.Exec(playersTable); err != nil {
		t.Fatal(err)
	}
}
