// SPDX-FileCopyrightText: © 2025 Diva360 authors
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/ini.v1"
)

// IniName is the optional profile file in the user's home directory.
const IniName = ".diva360fetch.ini"

// EnvPrefix is prepended to canonical env names: DIVA360_BASE_PATH etc.
const EnvPrefix = "DIVA360"

// Viper keys. Flags bind to the same keys so precedence is
// flags > env > ini profile > defaults.
const (
	KeyBasePath    = "base_path"
	KeySubset      = "subset"
	KeyBucket      = "bucket"
	KeyTransport   = "transport"
	KeyHTTPBaseURL = "http_base_url"
	KeyLogFormat   = "log_format"
	KeyAccessKey   = "aws_access_key_id"
	KeySecretKey   = "aws_secret_access_key"
	KeySessionTok  = "aws_session_token"
	KeyRegion      = "aws_region"
	KeyEndpointURL = "aws_endpoint_url"
)

// envSchema holds all logical keys. Tags:
// - vkey: viper key
// - env: canonical env name (UPPER_SNAKE). If empty, derived from vkey
// - persist: "true" to write the key into the INI profile
// - default: optional default set when the key is unset
// - secret: "true" if sensitive (kept out of `config show`)
type envSchema struct {
	BasePath           string `vkey:"base_path"             env:"BASE_PATH"             persist:"true" default:"./data"`
	Subset             string `vkey:"subset"                env:"SUBSET"                persist:"true" default:"short-default"`
	Bucket             string `vkey:"bucket"                env:"BUCKET"                persist:"true" default:"diva360"`
	Transport          string `vkey:"transport"             env:"TRANSPORT"             persist:"true" default:"s3"`
	HTTPBaseURL        string `vkey:"http_base_url"         env:"HTTP_BASE_URL"         persist:"true"`
	LogFormat          string `vkey:"log_format"            env:"LOG_FORMAT"            persist:"true" default:"text"`
	AwsAccessKeyID     string `vkey:"aws_access_key_id"     env:"AWS_ACCESS_KEY_ID"     persist:"false" secret:"true"`
	AwsSecretAccessKey string `vkey:"aws_secret_access_key" env:"AWS_SECRET_ACCESS_KEY" persist:"false" secret:"true"`
	AwsSessionToken    string `vkey:"aws_session_token"     env:"AWS_SESSION_TOKEN"     persist:"false" secret:"true"`
	AwsRegion          string `vkey:"aws_region"            env:"AWS_REGION"            persist:"true" default:"us-east-1"`
	AwsEndpointURL     string `vkey:"aws_endpoint_url"      env:"AWS_ENDPOINT_URL"      persist:"true"`
}

// BindEnv binds every schema key to its env var and installs defaults.
// AWS_* keys are bound both bare and with the DIVA360_ prefix so standard
// AWS tooling env still works.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	rt := reflect.TypeOf(envSchema{})
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)

		key := f.Tag.Get("vkey")
		if key == "" {
			continue
		}
		env := f.Tag.Get("env")
		if env == "" {
			env = strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		}
		if strings.HasPrefix(env, "AWS_") {
			_ = v.BindEnv(key, EnvPrefix+"_"+env, env)
		} else {
			_ = v.BindEnv(key, EnvPrefix+"_"+env)
		}

		if def := f.Tag.Get("default"); def != "" && !v.IsSet(key) {
			v.SetDefault(key, def)
		}
	}
}

// FromViper assembles the runtime Config from bound keys.
func FromViper(v *viper.Viper) Config {
	return Config{
		Fetch: FetchConfig{
			BasePath:    v.GetString(KeyBasePath),
			Subset:      v.GetString(KeySubset),
			Bucket:      v.GetString(KeyBucket),
			Transport:   v.GetString(KeyTransport),
			HTTPBaseURL: v.GetString(KeyHTTPBaseURL),
			LogFormat:   v.GetString(KeyLogFormat),
		},
		S3: S3Config{
			AccessKey:   v.GetString(KeyAccessKey),
			SecretKey:   v.GetString(KeySecretKey),
			AccessToken: v.GetString(KeySessionTok),
			Region:      v.GetString(KeyRegion),
			EndpointURL: v.GetString(KeyEndpointURL),
		},
	}
}

func IniPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, IniName)
}

// LoadIni merges the profile file into viper. A missing file is not an
// error: the tool works out of the box against the public bucket.
func LoadIni(v *viper.Viper, path string) error {
	cfg, err := ini.Load(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read profile %s: %w", path, err)
	}
	// Profile values sit below flags and env in precedence.
	for _, key := range cfg.Section("").Keys() {
		v.SetDefault(key.Name(), key.Value())
	}
	return nil
}

// SaveIni writes the persistable keys to the profile file.
func SaveIni(v *viper.Viper, path string) error {
	cfg := ini.Empty()
	sec := cfg.Section("")

	rt := reflect.TypeOf(envSchema{})
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if f.Tag.Get("persist") != "true" {
			continue
		}
		key := f.Tag.Get("vkey")
		if key == "" {
			continue
		}
		if val := v.GetString(key); val != "" {
			sec.Key(key).SetValue(val)
		}
	}
	if err := cfg.SaveTo(path); err != nil {
		return fmt.Errorf("failed to write profile %s: %w", path, err)
	}
	return nil
}

// PersistableKeys lists the non-secret keys shown by `config show`.
func PersistableKeys() []string {
	var keys []string
	rt := reflect.TypeOf(envSchema{})
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if f.Tag.Get("secret") == "true" {
			continue
		}
		if key := f.Tag.Get("vkey"); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}
