package config

import (
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// SQLiteConfig reúne os pragmas de afinação do driver. Os defaults servem
// bem uma instância pequena; tudo é sobrescrevível por env.
type SQLiteConfig struct {
	CacheSizeKB int    // negativo = KB, positivo = páginas
	TempStore   string // MEMORY ou FILE
	WALMode     bool
	SyncLevel   string // OFF, NORMAL, FULL, EXTRA
	BusyTimeout int    // ms aguardando lock antes de SQLITE_BUSY
}

func GetSQLiteConfig() SQLiteConfig {
	return SQLiteConfig{
		CacheSizeKB: envInt("SQLITE_CACHE_SIZE", autoCacheSize()),
		TempStore:   envEnum("SQLITE_TEMP_STORE", "MEMORY", "MEMORY", "FILE"),
		WALMode:     envBool("SQLITE_WAL_MODE", true),
		SyncLevel:   envEnum("SQLITE_SYNC_LEVEL", "NORMAL", "OFF", "NORMAL", "FULL", "EXTRA"),
		BusyTimeout: envInt("SQLITE_BUSY_TIMEOUT", 5000),
	}
}

func envInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		return v == "1" || strings.EqualFold(v, "true")
	}
	return fallback
}

func envEnum(key, fallback string, allowed ...string) string {
	if v, ok := os.LookupEnv(key); ok {
		v = strings.ToUpper(v)
		for _, a := range allowed {
			if v == a {
				return v
			}
		}
	}
	return fallback
}

// autoCacheSize reserva ~2% da RAM detectada para o page cache, entre 8MB
// e 256MB; sem leitura de RAM, usa 16MB.
func autoCacheSize() int {
	ramMB := detectRAMMB()
	if ramMB <= 0 {
		return -16000
	}
	cacheMB := ramMB / 50
	cacheMB = max(cacheMB, 8)
	cacheMB = min(cacheMB, 256)
	return -cacheMB * 1024
}

func detectRAMMB() int {
	if v, ok := os.LookupEnv("SYSTEM_RAM_MB"); ok {
		if mb, err := strconv.Atoi(v); err == nil && mb > 0 {
			return mb
		}
	}

	data, err := os.ReadFile("/proc/meminfo")
	if err != nil {
		return 0
	}
	for line := range strings.SplitSeq(string(data), "\n") {
		if !strings.HasPrefix(line, "MemTotal:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0
		}
		kb, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return 0
		}
		return int(kb / 1024)
	}
	return 0
}

func (c SQLiteConfig) ApplyPragmas(db *sql.DB) error {
	journalMode := "DELETE"
	if c.WALMode {
		journalMode = "WAL"
	}

	pragmas := [][2]string{
		{"journal_mode", journalMode},
		{"wal_autocheckpoint", "1000"},
		{"synchronous", c.SyncLevel},
		{"busy_timeout", strconv.Itoa(c.BusyTimeout)},
		{"cache_size", strconv.Itoa(c.CacheSizeKB)},
		{"temp_store", c.TempStore},
		{"foreign_keys", "ON"},
		{"mmap_size", "268435456"},
	}

	for _, p := range pragmas {
		if _, err := db.Exec(fmt.Sprintf("PRAGMA %s = %s", p[0], p[1])); err != nil {
			return fmt.Errorf("failed to set PRAGMA %s: %w", p[0], err)
		}
	}
	return nil
}
