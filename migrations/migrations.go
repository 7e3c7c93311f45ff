// Package migrations embeds the SQL schema for every supported database driver.
package migrations

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed postgresql/*.sql mysql/*.sql
var files embed.FS

// ForDriver returns the migration files of a database driver ("postgres" or "mysql").
func ForDriver(driver string) (fs.FS, error) {
	switch driver {
	case "postgres":
		return fs.Sub(files, "postgresql")
	case "mysql":
		return fs.Sub(files, "mysql")
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
}
