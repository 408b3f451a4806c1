package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StricklySoft/stricklysoft-glfw/internal/testutil"
	sserr "github.com/StricklySoft/stricklysoft-glfw/pkg/errors"
)

// ===========================================================================
// Test Types
// ===========================================================================

type logSection struct {
	Level  string `env:"LEVEL" envDefault:"info" yaml:"level" json:"level"`
	Format string `env:"FORMAT" envDefault:"text" yaml:"format" json:"format"`
}

type hostConfig struct {
	Handler  string        `env:"HANDLER" envDefault:"log" yaml:"handler" json:"handler"`
	Simulate bool          `env:"SIMULATE" envDefault:"false" yaml:"simulate" json:"simulate"`
	Retries  int32         `env:"RETRIES" envDefault:"3" yaml:"retries" json:"retries"`
	Poll     time.Duration `env:"POLL" envDefault:"16ms" yaml:"poll" json:"poll"`
	Hints    []string      `env:"HINTS" yaml:"hints" json:"hints"`
	Log      logSection    `env:"LOG" yaml:"log" json:"log"`
}

type requiredConfig struct {
	Display string `env:"DISPLAY_NAME" required:"true"`
	Nested  struct {
		Socket string `env:"SOCKET" required:"true"`
	} `env:"WAYLAND"`
}

type validatedConfig struct {
	Handler string `env:"HANDLER" envDefault:"log"`
	err     error
}

func (c *validatedConfig) Validate() error { return c.err }

type unsupportedConfig struct {
	Ratio float64 `env:"RATIO" envDefault:"0.5"`
}

// ===========================================================================
// Argument Tests
// ===========================================================================

// TestLoader_Load_RejectsNonStructPointers verifies argument checking.
func TestLoader_Load_RejectsNonStructPointers(t *testing.T) {
	t.Parallel()
	var n int
	var nilCfg *hostConfig
	for name, arg := range map[string]any{
		"nil":            nil,
		"non-pointer":    hostConfig{},
		"nil pointer":    nilCfg,
		"pointer to int": &n,
	} {
		arg := arg
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			testutil.AssertErrorCode(t, New().Load(arg), sserr.CodeInternalConfiguration)
		})
	}
}

// ===========================================================================
// Layering Tests
// ===========================================================================

// TestLoader_Load_Defaults verifies envDefault tags for every supported
// kind, including nested structs.
func TestLoader_Load_Defaults(t *testing.T) {
	t.Parallel()
	var cfg hostConfig
	require.NoError(t, New().WithEnvPrefix("DEFAULTS_ONLY_TEST").Load(&cfg))

	assert.Equal(t, "log", cfg.Handler)
	assert.False(t, cfg.Simulate)
	assert.Equal(t, int32(3), cfg.Retries)
	assert.Equal(t, 16*time.Millisecond, cfg.Poll)
	assert.Nil(t, cfg.Hints)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

// TestLoader_Load_DefaultsKeepPresetValues verifies that defaults never
// overwrite non-zero fields.
func TestLoader_Load_DefaultsKeepPresetValues(t *testing.T) {
	t.Parallel()
	cfg := hostConfig{Handler: "last"}
	require.NoError(t, New().WithEnvPrefix("PRESET_TEST").Load(&cfg))
	assert.Equal(t, "last", cfg.Handler)
}

// TestLoader_Load_YAMLFile verifies that file values override defaults.
func TestLoader_Load_YAMLFile(t *testing.T) {
	t.Parallel()
	path := testutil.TempConfigFile(t, `
handler: last
simulate: true
hints: [a, b]
log:
  level: debug
`, ".yaml")

	var cfg hostConfig
	require.NoError(t, New().WithEnvPrefix("YAML_FILE_TEST").WithFile(path).Load(&cfg))

	assert.Equal(t, "last", cfg.Handler)
	assert.True(t, cfg.Simulate)
	assert.Equal(t, []string{"a", "b"}, cfg.Hints)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format, "unset file values keep their default")
}

// TestLoader_Load_JSONFile verifies JSON decoding.
func TestLoader_Load_JSONFile(t *testing.T) {
	t.Parallel()
	path := testutil.TempConfigFile(t, `{"handler":"last","log":{"format":"json"}}`, ".json")

	var cfg hostConfig
	require.NoError(t, New().WithEnvPrefix("JSON_FILE_TEST").WithFile(path).Load(&cfg))
	assert.Equal(t, "last", cfg.Handler)
	assert.Equal(t, "json", cfg.Log.Format)
}

// TestLoader_Load_MissingFileIgnored verifies that file configuration is
// optional.
func TestLoader_Load_MissingFileIgnored(t *testing.T) {
	t.Parallel()
	var cfg hostConfig
	err := New().WithEnvPrefix("MISSING_FILE_TEST").WithFile(t.TempDir() + "/absent.yaml").Load(&cfg)
	require.NoError(t, err)
	assert.Equal(t, "log", cfg.Handler)
}

// TestLoader_Load_EnvOverridesFile verifies env vars win over file values,
// with the prefix and nested struct tags composing the variable name.
func TestLoader_Load_EnvOverridesFile(t *testing.T) {
	path := testutil.TempConfigFile(t, "handler: last\nlog:\n  level: warn\n", ".yml")
	testutil.SetEnv(t, "GLFWERR_LOG_LEVEL", "error")
	testutil.SetEnv(t, "GLFWERR_HINTS", " x , y ")
	testutil.SetEnv(t, "GLFWERR_POLL", "1s")
	testutil.SetEnv(t, "GLFWERR_RETRIES", "7")

	var cfg hostConfig
	require.NoError(t, New().WithEnvPrefix("glfwerr").WithFile(path).Load(&cfg))

	assert.Equal(t, "last", cfg.Handler)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, []string{"x", "y"}, cfg.Hints)
	assert.Equal(t, time.Second, cfg.Poll)
	assert.Equal(t, int32(7), cfg.Retries)
}

// ===========================================================================
// Failure Tests
// ===========================================================================

// TestLoader_Load_FileErrors verifies file-related failures.
func TestLoader_Load_FileErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"traversal", func(*testing.T) string { return "../etc/bridge.yaml" }},
		{"extension", func(t *testing.T) string { return testutil.TempConfigFile(t, "x=1", ".toml") }},
		{"bad yaml", func(t *testing.T) string { return testutil.TempConfigFile(t, "log: [unclosed", ".yaml") }},
		{"bad json", func(t *testing.T) string { return testutil.TempConfigFile(t, "{", ".json") }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var cfg hostConfig
			err := New().WithEnvPrefix("FILE_ERRORS_TEST").WithFile(tt.path(t)).Load(&cfg)
			testutil.AssertErrorCode(t, err, sserr.CodeInternalConfiguration)
		})
	}
}

// TestLoader_Load_InvalidEnvValue verifies that unparsable env values name
// the variable.
func TestLoader_Load_InvalidEnvValue(t *testing.T) {
	testutil.SetEnv(t, "BADENV_SIMULATE", "maybe")

	var cfg hostConfig
	err := New().WithEnvPrefix("BADENV").Load(&cfg)
	testutil.RequireErrorCode(t, err, sserr.CodeInternalConfiguration)
	assert.Contains(t, err.Error(), "BADENV_SIMULATE")
}

// TestLoader_Load_UnsupportedType verifies that unsupported field kinds are
// reported rather than silently skipped.
func TestLoader_Load_UnsupportedType(t *testing.T) {
	t.Parallel()
	var cfg unsupportedConfig
	testutil.RequireErrorCode(t, New().Load(&cfg), sserr.CodeInternalConfiguration)
}

// ===========================================================================
// Validation Tests
// ===========================================================================

// TestLoader_Load_RequiredMissing verifies the required tag, reporting the
// dotted path of the first empty field.
func TestLoader_Load_RequiredMissing(t *testing.T) {
	testutil.SetEnv(t, "REQ_DISPLAY_NAME", ":0")

	var cfg requiredConfig
	err := New().WithEnvPrefix("REQ").Load(&cfg)
	testutil.RequireErrorCode(t, err, sserr.CodeValidationRequired)
	assert.Contains(t, err.Error(), `"Nested.Socket"`)

	ssErr, _ := sserr.AsError(err)
	assert.Equal(t, "Nested.Socket", ssErr.Details["field"])
}

// TestLoader_Load_RequiredSatisfied verifies nested env prefixes satisfy
// required fields.
func TestLoader_Load_RequiredSatisfied(t *testing.T) {
	testutil.SetEnv(t, "REQOK_DISPLAY_NAME", ":0")
	testutil.SetEnv(t, "REQOK_WAYLAND_SOCKET", "wayland-0")

	var cfg requiredConfig
	require.NoError(t, New().WithEnvPrefix("REQOK").Load(&cfg))
	assert.Equal(t, "wayland-0", cfg.Nested.Socket)
}

// TestLoader_Load_Validator verifies custom validation and its error
// wrapping.
func TestLoader_Load_Validator(t *testing.T) {
	t.Parallel()

	ok := &validatedConfig{}
	require.NoError(t, New().WithEnvPrefix("VALIDATOR_TEST").Load(ok))

	plain := &validatedConfig{err: errors.New("handler unknown")}
	testutil.RequireErrorCode(t, New().WithEnvPrefix("VALIDATOR_TEST").Load(plain), sserr.CodeValidation)

	typed := &validatedConfig{err: sserr.New(sserr.CodeValidationFormat, "bad handler")}
	err := New().WithEnvPrefix("VALIDATOR_TEST").Load(typed)
	assert.Same(t, typed.err, err)
}

// ===========================================================================
// MustLoad Tests
// ===========================================================================

// TestMustLoad verifies the success and panic paths.
func TestMustLoad(t *testing.T) {
	t.Parallel()
	cfg := MustLoad[hostConfig](New().WithEnvPrefix("MUSTLOAD_TEST"))
	assert.Equal(t, "log", cfg.Handler)

	assert.PanicsWithValue(t,
		`config: MustLoad failed: VAL_002: config: required field "Display" is empty`,
		func() { MustLoad[requiredConfig](New().WithEnvPrefix("MUSTLOAD_TEST")) },
	)
}
