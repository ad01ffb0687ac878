package db_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/ChiniHendi2004/appointment-api/internal/db"
)

// The listing queries join these tables by name, so the migrated schema
// has to use the exact singular forms.
func TestMigrateTableNames(t *testing.T) {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(gdb))

	for _, table := range []string{
		"users",
		"personal_information",
		"educational_information",
		"work_information",
		"business_information",
		"unavailable_slots",
		"appointments",
		"audit_logs",
	} {
		assert.True(t, gdb.Migrator().HasTable(table), "missing table %s", table)
	}

	assert.False(t, gdb.Migrator().HasTable("personal_informations"))
}
