package db

import (
	"path/filepath"
	"testing"

	"bitwise74/review-api/model"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// Cascade deletes must hold on every connection the pool hands out, not
// just the one that was open at startup.
func TestSqliteCascadeAcrossPooledConnections(t *testing.T) {
	viper.Set("database.driver", "sqlite")
	viper.Set("database.dsn", filepath.Join(t.TempDir(), "cascade.db"))

	d, err := New()
	require.NoError(t, err)

	// no idle connections: every statement below runs on a freshly
	// opened one
	sqlDB, err := d.DB()
	require.NoError(t, err)
	sqlDB.SetMaxIdleConns(0)

	user := &model.User{Username: "cascader", Email: "cascader@example.com", Role: model.RoleUser}
	require.NoError(t, d.Create(user).Error)

	category := &model.Category{Name: "Movies", Slug: "movies"}
	require.NoError(t, d.Create(category).Error)

	title := &model.Title{Name: "Doomed", Year: 2000, CategoryID: category.ID}
	require.NoError(t, d.Create(title).Error)

	review := &model.Review{TitleID: title.ID, AuthorID: user.ID, Text: "short lived", Score: 5}
	require.NoError(t, d.Create(review).Error)

	comment := &model.Comment{ReviewID: review.ID, AuthorID: user.ID, Text: "shorter lived"}
	require.NoError(t, d.Create(comment).Error)

	require.NoError(t, d.Delete(title).Error)

	var reviews, comments int64
	require.NoError(t, d.Model(&model.Review{}).Count(&reviews).Error)
	require.NoError(t, d.Model(&model.Comment{}).Count(&comments).Error)
	require.Zero(t, reviews, "reviews must cascade with their title")
	require.Zero(t, comments, "comments must cascade with their review")
}

func TestUnsupportedDriver(t *testing.T) {
	viper.Set("database.driver", "oracle")
	viper.Set("database.dsn", "whatever")

	_, err := New()
	require.Error(t, err)

	viper.Set("database.driver", "sqlite")
}
