package handler

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestRootDir(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("SEGMETA_ROOT", "")

	assert.Equal(t, "./data", RootDir())

	viper.Set("segmeta.root", "/configured")
	assert.Equal(t, "/configured", RootDir())

	// environment overrides configuration
	t.Setenv("SEGMETA_ROOT", "/from-env")
	assert.Equal(t, "/from-env", RootDir())
}

func TestRegisteredFiles(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	assert.Empty(t, RegisteredFiles())

	viper.Set("segmeta.files", []string{"line", "survey"})
	assert.Equal(t, []string{"line", "survey"}, RegisteredFiles())
}
