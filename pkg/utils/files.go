package utils

import (
	"fmt"
	"path/filepath"
	"strings"
)

// RecipeExtensions are the file extensions a recipe may carry.
var RecipeExtensions = []string{".baguette", ".croissant"}

func GetPathInfo(relPath string) (fullPath string, parentDir string, err error) {
	// Convert to absolute path (resolves ../../ and cleans the path)
	fullPath, err = filepath.Abs(relPath)
	if err != nil {
		return "", "", err
	}

	// Get the directory containing the file
	parentDir = filepath.Dir(fullPath)

	return fullPath, parentDir, nil
}

// CheckRecipeExtension returns an error unless path ends in one of RecipeExtensions.
func CheckRecipeExtension(path string) error {
	ext := filepath.Ext(path)
	for _, want := range RecipeExtensions {
		if ext == want {
			return nil
		}
	}
	return fmt.Errorf("invalid file extension %q: want %s", ext, strings.Join(RecipeExtensions, " or "))
}

// ReplaceExt swaps the extension of path for ext (which includes the dot).
func ReplaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
