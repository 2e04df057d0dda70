// SPDX-FileCopyrightText: © 2025 Diva360 authors
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	BindEnv(v)

	conf := FromViper(v)
	assert.Equal(t, "./data", conf.Fetch.BasePath)
	assert.Equal(t, "short-default", conf.Fetch.Subset)
	assert.Equal(t, "diva360", conf.Fetch.Bucket)
	assert.Equal(t, "s3", conf.Fetch.Transport)
	assert.Equal(t, "us-east-1", conf.S3.Region)
	assert.True(t, conf.S3.Anonymous())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DIVA360_SUBSET", "full")
	t.Setenv("DIVA360_BASE_PATH", "/datasets/diva360")
	t.Setenv("AWS_REGION", "eu-west-1")

	v := viper.New()
	BindEnv(v)

	conf := FromViper(v)
	assert.Equal(t, "full", conf.Fetch.Subset)
	assert.Equal(t, "/datasets/diva360", conf.Fetch.BasePath)
	assert.Equal(t, "eu-west-1", conf.S3.Region)
}

func TestPrefixedAwsEnvWins(t *testing.T) {
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("DIVA360_AWS_REGION", "ap-south-1")

	v := viper.New()
	BindEnv(v)

	assert.Equal(t, "ap-south-1", v.GetString(KeyRegion))
}

func TestCredentialsSwitchOffAnonymous(t *testing.T) {
	conf := S3Config{AccessKey: "ak", SecretKey: "sk"}
	assert.False(t, conf.Anonymous())
}

func TestIniRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), IniName)

	src := viper.New()
	BindEnv(src)
	src.Set(KeyBasePath, "/mnt/scratch")
	src.Set(KeySubset, "short")
	src.Set(KeyAccessKey, "should-not-persist")
	require.NoError(t, SaveIni(src, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "should-not-persist")

	dst := viper.New()
	BindEnv(dst)
	require.NoError(t, LoadIni(dst, path))

	conf := FromViper(dst)
	assert.Equal(t, "/mnt/scratch", conf.Fetch.BasePath)
	assert.Equal(t, "short", conf.Fetch.Subset)
}

func TestLoadIniMissingFile(t *testing.T) {
	v := viper.New()
	BindEnv(v)
	require.NoError(t, LoadIni(v, filepath.Join(t.TempDir(), "nope.ini")))
}

func TestIniValuesSitBelowEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), IniName)

	src := viper.New()
	BindEnv(src)
	src.Set(KeySubset, "short")
	require.NoError(t, SaveIni(src, path))

	t.Setenv("DIVA360_SUBSET", "full")

	dst := viper.New()
	BindEnv(dst)
	require.NoError(t, LoadIni(dst, path))
	assert.Equal(t, "full", dst.GetString(KeySubset))
}
