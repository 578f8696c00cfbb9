package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "https://nominatim.openstreetmap.org", cfg.NominatimURL)
	assert.Equal(t, "https://overpass-api.de", cfg.OverpassURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 120, cfg.SearchRadiusM)
	assert.Equal(t, 5, cfg.MinRoadLabelLen)
	assert.Equal(t, "eng", cfg.OCRLanguage)
	assert.Equal(t, 180, cfg.OCRThreshold)
	assert.Equal(t, "#ffcc00", cfg.AnnotateColor)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server_address: ":9000"
search_radius_m: 250
min_road_label_len: 3
ocr_language: deu
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.ServerAddress)
	assert.Equal(t, 250, cfg.SearchRadiusM)
	assert.Equal(t, 3, cfg.MinRoadLabelLen)
	assert.Equal(t, "deu", cfg.OCRLanguage)
	// Untouched keys keep their defaults.
	assert.Equal(t, "https://overpass-api.de", cfg.OverpassURL)
	assert.Equal(t, 180, cfg.OCRThreshold)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ORIENT_SEARCH_RADIUS_M", "300")
	t.Setenv("ORIENT_ANNOTATE_COLOR", "#00ff00")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 300, cfg.SearchRadiusM)
	assert.Equal(t, "#00ff00", cfg.AnnotateColor)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("search_radius_m: -5\n"), 0o644))
	_, err := Load(dir)
	assert.Error(t, err)

	dir2 := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir2, "config.yaml"),
		[]byte("ocr_threshold: 999\n"), 0o644))
	_, err = Load(dir2)
	assert.Error(t, err)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("{{not yaml"), 0o644))
	_, err := Load(dir)
	assert.Error(t, err)
}
