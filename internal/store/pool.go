package store

import (
	"database/sql"
	"fmt"
	"runtime"
	"time"

	"github.com/PauloHFS/prosa/internal/config"
)

// DualPool separa leituras e escritas. SQLite aceita um único escritor por
// vez; travar o pool de escrita em uma conexão evita SQLITE_BUSY sob carga,
// enquanto as leituras escalam com o número de CPUs.
type DualPool struct {
	Read  *sql.DB
	Write *sql.DB
}

func NewDualPool(driver, dsn string) (*DualPool, error) {
	sqliteCfg := config.GetSQLiteConfig()

	readDB, err := openPool(driver, dsn, sqliteCfg, runtime.NumCPU()*2, runtime.NumCPU())
	if err != nil {
		return nil, fmt.Errorf("read pool: %w", err)
	}

	writeDB, err := openPool(driver, dsn, sqliteCfg, 1, 1)
	if err != nil {
		readDB.Close()
		return nil, fmt.Errorf("write pool: %w", err)
	}

	return &DualPool{Read: readDB, Write: writeDB}, nil
}

func openPool(driver, dsn string, cfg config.SQLiteConfig, maxOpen, maxIdle int) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(time.Hour)

	if err := cfg.ApplyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}
	return db, nil
}

func (p *DualPool) Close() error {
	var errs []error
	if p.Read != nil {
		if err := p.Read.Close(); err != nil {
			errs = append(errs, fmt.Errorf("read pool close: %w", err))
		}
	}
	if p.Write != nil {
		if err := p.Write.Close(); err != nil {
			errs = append(errs, fmt.Errorf("write pool close: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("errors closing pools: %v", errs)
	}
	return nil
}

func (p *DualPool) Queries() *Queries {
	return New(p.Read)
}

func (p *DualPool) QueriesWrite() *Queries {
	return New(p.Write)
}
