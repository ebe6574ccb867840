package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dwdeck-core/state"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "36S(d,p)@ 8MeV", cfg.Title)
	assert.Greater(t, cfg.Policies.Bound.RMax, 0.0)
	assert.Less(t, cfg.Policies.Unbound.RMax, 0.0)
}

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesKeepDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reaction.yaml")
	doc := `
title: "40Ca(d,p)@ 10MeV"
beam_energy_mev: 10.0
constants:
  q_ground_mev: 3.5
  bind_ground_mev: -6.1
ejectile:
  channel:
    ref_energy_mev: 13.5
    slopes:
      real: 0.32
      surf_imag: -0.25
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "40Ca(d,p)@ 10MeV", cfg.Title)
	assert.Equal(t, 10.0, cfg.BeamEnergyMeV)
	assert.Equal(t, state.Constants{QGroundMeV: 3.5, BindGroundMeV: -6.1}, cfg.Constants)
	assert.Equal(t, 0.32, cfg.Ejectile.Channel.Slopes.Real)
	// Untouched sections keep the reference values.
	assert.Equal(t, Default().Projectile, cfg.Projectile)
	assert.Equal(t, Default().Policies, cfg.Policies)
}

func TestLoad_RejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("policies:\n  unbound:\n    rmax: 15.0\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDump_RoundTrips(t *testing.T) {
	out, err := Dump(Default())
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "roundtrip.yaml")
	require.NoError(t, os.WriteFile(path, out, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
