package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunValidateAction(t *testing.T) {
	// Save and restore command globals
	origFormat, origOut, origJobs := validateFormat, validateOut, validateJobs
	defer func() {
		validateFormat, validateOut, validateJobs = origFormat, origOut, origJobs
	}()

	t.Run("clean font", func(t *testing.T) {
		fontPath := writeTestFont(t, cleanFont)
		outPath := filepath.Join(t.TempDir(), "report.json")
		validateFormat = "json"
		validateOut = outPath
		validateJobs = 1

		require.NoError(t, runValidateAction(fontPath))

		_, err := os.Stat(outPath)
		assert.NoError(t, err, "report is written even for clean fonts")
	})

	t.Run("font with issues", func(t *testing.T) {
		fontPath := writeTestFont(t, brokenFont)
		validateFormat = "json"
		validateOut = filepath.Join(t.TempDir(), "report.json")
		validateJobs = 1

		err := runValidateAction(fontPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed: 1 issues")
	})
}
