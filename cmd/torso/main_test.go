package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/xob0t/torso/pkg/generator"
	"github.com/xob0t/torso/pkg/typeface"
)

func TestRunWritesSlide(t *testing.T) {
	cfg := generator.DefaultConfig()
	cfg.Output = filepath.Join(t.TempDir(), generator.DefaultOutput)
	cfg.Source = typeface.MemorySource{Data: goregular.TTF}

	require.NoError(t, run(cfg))
	_, err := os.Stat(cfg.Output)
	assert.NoError(t, err)
}

func TestRunFontFailureReported(t *testing.T) {
	cfg := generator.DefaultConfig()
	cfg.Output = filepath.Join(t.TempDir(), generator.DefaultOutput)
	cfg.Source = typeface.MemorySource{}

	err := run(cfg)
	require.ErrorIs(t, err, typeface.ErrFontResolution)

	var stderr bytes.Buffer
	report(&stderr, err)
	assert.Contains(t, stderr.String(), "Error: font resolution failed")

	_, err = os.Stat(cfg.Output)
	assert.True(t, os.IsNotExist(err))
}

func TestReportSuccessIsSilent(t *testing.T) {
	var stderr bytes.Buffer
	report(&stderr, nil)
	assert.Empty(t, stderr.String())
}
