package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/diewo77/devis-board/internal/models"
)

func memoryDB(t *testing.T) *gorm.DB {
	t.Helper()
	d, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := d.DB()
	require.NoError(t, err)
	// every pooled connection would get its own empty in-memory database
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, Migrate(d))
	return d
}

func TestSeedIdempotent(t *testing.T) {
	d := memoryDB(t)
	require.NoError(t, Seed(d))
	require.NoError(t, Seed(d))

	counts := map[any]int64{
		&models.Quote{}:           3,
		&models.QuoteItem{}:       3,
		&models.QuoteItemOption{}: 3,
		&models.Customer{}:        3,
		&models.TourFormula{}:     3,
		&models.Tour{}:            2,
		&models.MotoLocation{}:    3,
		&models.Option{}:          3,
	}
	for model, want := range counts {
		var got int64
		require.NoError(t, d.Model(model).Count(&got).Error)
		assert.Equal(t, want, got, "%T", model)
	}
}

func TestSeed_RelationsLoad(t *testing.T) {
	d := memoryDB(t)
	require.NoError(t, Seed(d))

	var q models.Quote
	require.NoError(t, d.Preload("Items.Options").First(&q, 1).Error)
	require.Len(t, q.Items, 2)
	assert.Len(t, q.Items[0].Options, 1)
	require.NotNil(t, q.LockedTotalPrice)
	assert.Equal(t, "4978", q.LockedTotalPrice.String())

	var tf models.TourFormula
	require.NoError(t, d.Preload("Tour").Preload("Formula").First(&tf, 2).Error)
	assert.Equal(t, "Grand Atlas", tf.Tour.Name)
	assert.Equal(t, "Liberté", tf.Formula.Name)
}

func TestNormalizeDSN(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"  'postgres://u:p@h:5432/db'  ", "postgres://u:p@h:5432/db"},
		{"host=h   user=u dbname=d", "host=h user=u dbname=d sslmode=disable"},
		{"host=h user=u dbname=d sslmode=require", "host=h user=u dbname=d sslmode=require"},
		{"devis.db", "devis.db"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeDSN(tt.in), tt.in)
	}
}
