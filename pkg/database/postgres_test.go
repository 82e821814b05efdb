package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgreSQLOptions_convertToConnectionURL(t *testing.T) {
	t.Parallel()

	opts := PostgreSQLOptions{
		User:     "postgres",
		Password: "secret",
		Database: "currencies",
		Host:     "localhost",
		Port:     "5432",
		SSLMode:  "disable",
	}

	assert.Equal(t, "user=postgres password=secret dbname=currencies host=localhost port=5432 sslmode=disable", opts.convertToConnectionURL())
}

var errUnreachable = errors.New("connection refused")

// unreachableDriver fails every connection attempt and counts closed connectors.
type unreachableDriver struct {
	closed atomic.Int32
}

func (d *unreachableDriver) Open(string) (driver.Conn, error) {
	return nil, errUnreachable
}

func (d *unreachableDriver) OpenConnector(string) (driver.Connector, error) {
	return &unreachableConnector{driver: d}, nil
}

type unreachableConnector struct {
	driver *unreachableDriver
}

func (c *unreachableConnector) Connect(context.Context) (driver.Conn, error) {
	return nil, errUnreachable
}

func (c *unreachableConnector) Driver() driver.Driver {
	return c.driver
}

func (c *unreachableConnector) Close() error {
	c.driver.closed.Add(1)
	return nil
}

func TestNewPostgreSQL_ClosesConnectionWhenPingFails(t *testing.T) {
	t.Parallel()

	unreachable := &unreachableDriver{}
	sql.Register("unreachable-postgres", unreachable)

	db, err := newPostgreSQL("unreachable-postgres", PostgreSQLOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errUnreachable)
	assert.Nil(t, db)
	assert.Equal(t, int32(1), unreachable.closed.Load())
}
