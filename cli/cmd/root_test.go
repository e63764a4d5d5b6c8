package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rosjava/android-apps/cli/create"
	"github.com/rosjava/android-apps/cli/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootFlags(t *testing.T) {
	rootCmd = NewCmdRoot()
	require.NoError(t, rootCmd.ParseFlags([]string{"--cfg", "one.yaml", "-d", "/opt/apps",
		"--var", "A=1", "--var", "B=2", "-q", "--template", "tmpl", "Rover"}))
	assert.Equal(t, "one.yaml", configPath)
	assert.Equal(t, "/opt/apps", createCtx.DestinationDir)
	assert.Equal(t, []string{"A=1", "B=2"}, createCtx.VarsFromCli)
	assert.Equal(t, "tmpl", createCtx.TemplatePath)
	assert.True(t, createCtx.SilentMode)
	assert.Equal(t, []string{"Rover"}, rootCmd.Flags().Args())
}

func TestCreateWrongArgsCount(t *testing.T) {
	for _, args := range [][]string{{}, {"Rover", "Extra"}} {
		rootCmd = NewCmdRoot()
		err := internalCreateModule(rootCmd, args)
		var argError *util.ArgError
		require.True(t, errors.As(err, &argError), "args: %v", args)
	}
}

func TestCreateBuiltinTemplate(t *testing.T) {
	dstDir := t.TempDir()
	rootCmd = NewCmdRoot()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	require.NoError(t, rootCmd.ParseFlags([]string{"--dst", dstDir, "--var", "ORG=osrf"}))

	require.NoError(t, internalCreateModule(rootCmd, []string{"Rover"}))

	appDir := filepath.Join(dstDir, "rover")
	mainActivity := filepath.Join(appDir, "src", "org", "ros", "osrf", "rover",
		"MainActivity.java")
	content, err := os.ReadFile(mainActivity)
	require.NoError(t, err)
	assert.Contains(t, string(content), "package org.ros.osrf.rover;")
	assert.Contains(t, string(content), `super("Rover", "Rover");`)
	assert.NotContains(t, string(content), "@APPNAME_")
	assert.Contains(t, out.String(), appDir)

	// Second run must not touch the existing application.
	rootCmd = NewCmdRoot()
	require.NoError(t, rootCmd.ParseFlags([]string{"--dst", dstDir}))
	err = internalCreateModule(rootCmd, []string{"Rover"})
	assert.ErrorIs(t, err, create.ErrDestinationExists)
}

func TestCreateQuietMode(t *testing.T) {
	dstDir := t.TempDir()
	rootCmd = NewCmdRoot()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	require.NoError(t, rootCmd.ParseFlags([]string{"--dst", dstDir, "--quiet"}))

	require.NoError(t, internalCreateModule(rootCmd, []string{"Teleop"}))
	assert.DirExists(t, filepath.Join(dstDir, "teleop"))
	assert.Empty(t, out.String())
}

func TestCreateMissingConfig(t *testing.T) {
	rootCmd = NewCmdRoot()
	require.NoError(t, rootCmd.ParseFlags([]string{"--cfg",
		filepath.Join(t.TempDir(), "missing.yaml"), "--dst", t.TempDir()}))
	err := internalCreateModule(rootCmd, []string{"Rover"})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
