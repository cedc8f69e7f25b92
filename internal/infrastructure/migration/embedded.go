package migration

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

// Embedded lists the names of the compiled-in migrations in version order,
// without their .up.sql suffix
func Embedded() ([]string, error) {
	entries, err := fs.ReadDir(embedded, "sql")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded migrations: %w", err)
	}

	var names []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".up.sql"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}
