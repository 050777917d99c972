package config_test

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcbinspect/client/config"
)

func TestBindFlag(t *testing.T) {
	flags := pflag.NewFlagSet("login", pflag.ContinueOnError)
	flags.String("email", "", "")
	flags.Bool("auto-login", true, "")

	require.NoError(t, config.BindFlag("test.email", flags.Lookup("email")))
	require.NoError(t, config.BindFlag("test.autoLogin", flags.Lookup("auto-login")))
	assert.NoError(t, config.BindFlag("test.missing", flags.Lookup("missing")))

	assert.Equal(t, "", config.GetString("test.email"))
	assert.True(t, config.GetBool("test.autoLogin"))

	require.NoError(t, flags.Parse([]string{"--email", "dir@acme.test", "--auto-login=false"}))
	assert.Equal(t, "dir@acme.test", config.GetString("test.email"))
	assert.False(t, config.GetBool("test.autoLogin"))
	assert.Equal(t, "", config.GetString("test.missing"))
}

func TestInitConfigDefaults(t *testing.T) {
	t.Setenv("PCB_API_BASEURL", "http://backend.test/api")
	t.Setenv("PCB_STORAGE_BACKEND", "memory")
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, config.InitConfig())
	cfg := config.GetConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "http://backend.test/api", cfg.API.BaseURL)
	assert.Equal(t, "memory", cfg.Storage.Backend)
	assert.Equal(t, "pcb-client-audit", cfg.Audit.Index)
}
