//go:build windows

package cleaner

import (
	"os"
	"path/filepath"
)

func platformCategories() []Category {
	windir := os.Getenv("SystemRoot")
	if windir == "" {
		windir = `C:\Windows`
	}

	cats := []Category{
		{
			ID:    "windows_temp",
			Name:  "Windows Temp",
			Paths: []string{filepath.Join(windir, "Temp")},
		},
		{
			ID:    "prefetch",
			Name:  "Prefetch Data",
			Paths: []string{filepath.Join(windir, "Prefetch")},
		},
		{
			ID:   "update_cache",
			Name: "Windows Update Cache",
			Paths: []string{
				filepath.Join(windir, "SoftwareDistribution", "Download"),
			},
		},
	}

	if userTemp := os.Getenv("TEMP"); userTemp != "" {
		cats = append(cats, Category{
			ID:    "user_temp",
			Name:  "User Temp",
			Paths: []string{userTemp},
		})
	}

	if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
		cats = append(cats, Category{
			ID:   "thumbnail_cache",
			Name: "Thumbnail Cache",
			Paths: []string{
				filepath.Join(localAppData, "Microsoft", "Windows", "Explorer"),
			},
		})
	}

	return cats
}
