package cmd

import (
	"testing"

	"github.com/apex/log"
	"github.com/fatih/color"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersistentFlagsReachViper(t *testing.T) {
	logger := log.Log.(*log.Logger)
	level, noColor := logger.Level, color.NoColor
	t.Cleanup(func() {
		logger.Level, color.NoColor = level, noColor
		rootCmd.PersistentFlags().Set("verbose", "false")
		rootCmd.PersistentFlags().Set("no-color", "false")
	})

	require.NoError(t, rootCmd.PersistentFlags().Set("verbose", "true"))
	require.NoError(t, rootCmd.PersistentFlags().Set("no-color", "true"))
	assert.True(t, viper.GetBool("verbose"))

	rootCmd.PersistentPreRun(rootCmd, nil)
	assert.Equal(t, log.DebugLevel, logger.Level)
	assert.True(t, color.NoColor)
}
