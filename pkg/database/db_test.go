package database

import (
	"path/filepath"
	"testing"
	"time"

	"Scribe/config"
	"Scribe/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{dsn: "scribe.db", want: "scribe.db?_foreign_keys=on"},
		{dsn: "file:scribe.db?cache=shared", want: "file:scribe.db?cache=shared&_foreign_keys=on"},
		{dsn: "scribe.db?_foreign_keys=off", want: "scribe.db?_foreign_keys=off"},
		{dsn: "scribe.db?_fk=1", want: "scribe.db?_fk=1"},
	}
	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			assert.Equal(t, tt.want, sqliteDSN(tt.dsn))
		})
	}
}

func TestNewDBCascadesRecommendations(t *testing.T) {
	conf := &config.Config{
		App: &config.App{},
		Database: &config.Database{
			Driver:          config.DriverSQLite,
			Database:        filepath.Join(t.TempDir(), "scribe.db"),
			MaxOpenConns:    1,
			MaxIdleConns:    1,
			ConnMaxLifetime: time.Minute,
		},
	}
	db, cleanup, err := NewDB(conf)
	require.NoError(t, err)
	defer cleanup()
	require.NoError(t, Migrate(db))

	u := &models.User{Name: "Alice", Username: "alice", Password: "x"}
	require.NoError(t, db.Create(u).Error)
	blog := &models.Blog{Title: "t", Content: "c", AuthorID: u.ID}
	require.NoError(t, db.Create(blog).Error)
	require.NoError(t, db.Create(&models.Recommendation{UserID: u.ID, BlogID: blog.ID, Action: models.ActionIncrease}).Error)

	require.NoError(t, db.Delete(&models.Blog{}, blog.ID).Error)

	var n int64
	require.NoError(t, db.Model(&models.Recommendation{}).Where("blog_id = ?", blog.ID).Count(&n).Error)
	assert.Zero(t, n)
}
