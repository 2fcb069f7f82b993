package catalogsource

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tool-rental-pos/internal/config"
	"tool-rental-pos/internal/domain"
	"tool-rental-pos/internal/logger"
	"tool-rental-pos/internal/repository/postgres"
)

var toolRowColumns = []string{"code", "type", "brand", "daily_charge", "weekday_charge", "weekend_charge", "holiday_charge"}

func TestMain(m *testing.M) {
	logger.InitializeWithWriter(io.Discard, "error", "text")
	os.Exit(m.Run())
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("Shipped CSV catalog", func(t *testing.T) {
		cfg := &config.Config{Catalog: config.CatalogConfig{
			Source:             config.CatalogSourceCSV,
			ToolInfoPath:       "../../../data/tool_info.csv",
			ToolsAvailablePath: "../../../data/tools_available.csv",
		}}

		catalog, err := Open(ctx, cfg)
		require.NoError(t, err)
		defer catalog.Close()

		assert.True(t, catalog.Reloadable())
		codes, err := catalog.ListCodes(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"CHNS", "JAKD", "JAKR", "LADW"}, codes)
		assert.NoError(t, catalog.Reload(ctx))
	})

	t.Run("Missing CSV file", func(t *testing.T) {
		cfg := &config.Config{Catalog: config.CatalogConfig{
			Source:             config.CatalogSourceCSV,
			ToolInfoPath:       "does-not-exist.csv",
			ToolsAvailablePath: "does-not-exist.csv",
		}}

		_, err := Open(ctx, cfg)
		assert.Error(t, err)
	})

	t.Run("Unsupported source", func(t *testing.T) {
		_, err := Open(ctx, &config.Config{Catalog: config.CatalogConfig{Source: "s3"}})
		assert.ErrorContains(t, err, "unsupported catalog source")
	})
}

func TestPostgresCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("Live lookups query the database", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)

		catalog, err := postgresCatalog(ctx, postgres.NewStore(db), true, db.Close)
		require.NoError(t, err)
		assert.False(t, catalog.Reloadable())
		assert.NoError(t, catalog.Reload(ctx))

		mock.ExpectQuery("SELECT code FROM tools ORDER BY code").
			WillReturnRows(sqlmock.NewRows([]string{"code"}).AddRow("JAKR"))
		codes, err := catalog.ListCodes(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"JAKR"}, codes)

		mock.ExpectQuery("SELECT (.+) WHERE t.code = \\$1").
			WithArgs("JAKR").
			WillReturnRows(sqlmock.NewRows(toolRowColumns).AddRow("JAKR", "Jackhammer", "Ridgid", "2.99", true, false, false))
		tool, err := catalog.GetByCode(ctx, "JAKR")
		require.NoError(t, err)
		assert.Equal(t, "Ridgid", tool.Brand)

		mock.ExpectQuery("SELECT (.+) WHERE t.code = \\$1").
			WithArgs("NOPE").
			WillReturnRows(sqlmock.NewRows(toolRowColumns))
		_, err = catalog.GetByCode(ctx, "NOPE")
		assert.ErrorIs(t, err, domain.ErrToolNotFound)

		mock.ExpectClose()
		require.NoError(t, catalog.Close())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Snapshot loads once and serves from memory", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT (.+) ORDER BY t.code").
			WillReturnRows(sqlmock.NewRows(toolRowColumns).AddRow("CHNS", "Chainsaw", "Stihl", "1.49", true, false, true))

		catalog, err := postgresCatalog(ctx, postgres.NewStore(db), false, db.Close)
		require.NoError(t, err)
		assert.True(t, catalog.Reloadable())

		tool, err := catalog.GetByCode(ctx, "CHNS")
		require.NoError(t, err)
		assert.True(t, tool.HolidayCharge)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
