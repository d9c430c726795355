package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DavidOG03/crack-analyst/internal/infrastructure/vision"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":8000", cfg.HTTPAddr)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, vision.DefaultParams(), cfg.Pipeline)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9100")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SCALE_KERNELS", "5, 11, 21")
	t.Setenv("MIN_COMPONENT_AREA", "90")
	t.Setenv("MIN_ELONGATION", "3.5")
	t.Setenv("MAX_DENSITY", "0.4")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":9100", cfg.HTTPAddr)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, []int{5, 11, 21}, cfg.Pipeline.ScaleKernels)
	require.Equal(t, 90, cfg.Pipeline.MinComponentArea)
	require.Equal(t, 3.5, cfg.Pipeline.MinElongation)
	require.Equal(t, 0.4, cfg.Pipeline.MaxDensity)

	// Остальные пороги остаются по умолчанию
	require.Equal(t, vision.DefaultParams().MinSkeletonLength, cfg.Pipeline.MinSkeletonLength)
	require.Equal(t, vision.DefaultParams().CLAHEClip, cfg.Pipeline.CLAHEClip)
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	t.Setenv("MIN_COMPONENT_AREA", "sixty")
	t.Setenv("SCALE_KERNELS", "7,large,25")
	t.Setenv("MAX_WIDTH_STDDEV", "wide")

	cfg, err := Load()
	require.NoError(t, err)

	defaults := vision.DefaultParams()
	require.Equal(t, defaults.MinComponentArea, cfg.Pipeline.MinComponentArea)
	require.Equal(t, defaults.ScaleKernels, cfg.Pipeline.ScaleKernels)
	require.Equal(t, defaults.MaxWidthStdDev, cfg.Pipeline.MaxWidthStdDev)
}
