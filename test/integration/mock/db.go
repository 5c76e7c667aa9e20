package mock

import (
	"database/sql"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finbot/backend/internal/integration/persistence/model"
)

var dbOnce sync.Once
var db *Db

// Db wraps a shared in-memory SQLite connection for integration tests.
type Db struct {
	DbConn *gorm.DB
}

// NewDb opens (once) the shared in-memory database with the dataset schema
// migrated. Scenarios call Reset between runs instead of reopening.
func NewDb() *Db {
	dbOnce.Do(func() {
		db = open()
	})
	return db
}

func open() *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// A single connection keeps every session on the same in-memory store.
	dbSQL.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to open test database: " + err.Error())
	}

	if err := conn.AutoMigrate(&model.DatasetModel{}, &model.DatasetRowModel{}); err != nil {
		panic("failed to migrate test database: " + err.Error())
	}

	return &Db{DbConn: conn}
}

// Reset removes every dataset so scenarios start from a clean slate.
func (d *Db) Reset() error {
	session := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true})
	if err := session.Delete(&model.DatasetRowModel{}).Error; err != nil {
		return err
	}
	return session.Delete(&model.DatasetModel{}).Error
}
