package database

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shashiranjanraj/maison/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	ID   uint `gorm:"primarykey"`
	Body string
}

func TestOpenRejectsUnsupportedDriver(t *testing.T) {
	_, err := Open("oracle", "whatever")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported DB_DRIVER")
}

func TestOpenInstrumentsQueries(t *testing.T) {
	db, err := Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&note{}))

	require.NoError(t, db.Create(&note{Body: "hello"}).Error)
	var out []note
	require.NoError(t, db.Find(&out).Error)
	require.NoError(t, db.Model(&note{}).Where("id = ?", 1).Update("body", "bye").Error)
	require.NoError(t, db.Delete(&note{}, 1).Error)

	// One histogram series per operation: select, insert, update, delete.
	assert.GreaterOrEqual(t, testutil.CollectAndCount(metrics.DBQueryDuration), 4)
}
