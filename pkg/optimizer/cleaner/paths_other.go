//go:build !windows

package cleaner

import "os"

func platformCategories() []Category {
	return []Category{
		{
			ID:    "user_temp",
			Name:  "User Temp",
			Paths: []string{os.TempDir()},
		},
	}
}
