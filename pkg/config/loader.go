// Package config loads host configuration from struct tag defaults, an
// optional YAML or JSON file, and environment variables, in increasing
// order of priority:
//
//	envDefault struct tags  (lowest)
//	YAML/JSON config file
//	environment variables   (highest)
//
// The bridge packages read no configuration themselves; this package serves
// host programs that wire a bridge, such as examples/bridge.
//
// # Struct Tags
//
//   - `env:"NAME"` maps a field to an environment variable. On a nested
//     struct the tag becomes a prefix for the struct's fields.
//   - `envDefault:"value"` is applied when the field is still zero.
//   - `required:"true"` fails validation if the field is zero after loading.
//
// File loading uses the `yaml` and `json` tags of the respective decoders.
//
// # Usage
//
//	type HostConfig struct {
//	    Handler string `env:"HANDLER" envDefault:"log" yaml:"handler"`
//	    Log     struct {
//	        Level string `env:"LEVEL" envDefault:"info" yaml:"level"`
//	    } `env:"LOG" yaml:"log"`
//	}
//
//	cfg := config.MustLoad[HostConfig](
//	    config.New().WithEnvPrefix("glfwerr").WithFile("bridge.yaml"),
//	)
//
// Here GLFWERR_LOG_LEVEL overrides log.level from bridge.yaml.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	sserr "github.com/StricklySoft/stricklysoft-glfw/pkg/errors"
)

var durationType = reflect.TypeOf(time.Duration(0))

// Loader resolves configuration into a struct. Build one with [New] and
// the With* methods, then call [Loader.Load]. A Loader is not safe for
// concurrent configuration changes.
type Loader struct {
	envPrefix string
	filePath  string
}

// New returns a Loader that reads environment variables only, with no
// prefix and no file.
func New() *Loader {
	return &Loader{}
}

// WithEnvPrefix prepends prefix and an underscore to every environment
// variable name. The prefix is uppercased.
func (l *Loader) WithEnvPrefix(prefix string) *Loader {
	l.envPrefix = strings.ToUpper(prefix)
	return l
}

// WithFile sets a YAML (.yaml, .yml) or JSON (.json) file to read. A
// missing file is not an error. Paths containing ".." are rejected by
// [Loader.Load].
func (l *Loader) WithFile(path string) *Loader {
	l.filePath = path
	return l
}

// Load fills the struct pointed to by cfg and validates it. Loading
// failures carry [sserr.CodeInternalConfiguration]; a missing required
// field carries [sserr.CodeValidationRequired]; a failing [Validator]
// carries [sserr.CodeValidation] unless it already returned an
// [*sserr.Error].
func (l *Loader) Load(cfg any) error {
	rv := reflect.ValueOf(cfg)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return sserr.New(sserr.CodeInternalConfiguration,
			"config: Load requires a non-nil pointer to a struct")
	}
	rv = rv.Elem()

	err := walk(rv, "", "", func(f field) error {
		def, ok := f.tag.Lookup("envDefault")
		if !ok || !f.value.IsZero() {
			return nil
		}
		if err := setField(f.value, def); err != nil {
			return sserr.Wrapf(err, sserr.CodeInternalConfiguration,
				"config: invalid default for field %q", f.path)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if l.filePath != "" {
		if err := l.loadFile(cfg); err != nil {
			return err
		}
	}

	err = walk(rv, "", l.envPrefix, func(f field) error {
		if f.envKey == "" {
			return nil
		}
		val, ok := os.LookupEnv(f.envKey)
		if !ok {
			return nil
		}
		if err := setField(f.value, val); err != nil {
			return sserr.Wrapf(err, sserr.CodeInternalConfiguration,
				"config: invalid value in %s for field %q", f.envKey, f.path)
		}
		return nil
	})
	if err != nil {
		return err
	}

	return validate(cfg, rv)
}

// MustLoad loads a T and panics on failure. Intended for func main, where
// a bad configuration should stop the program.
func MustLoad[T any](loader *Loader) T {
	var cfg T
	if err := loader.Load(&cfg); err != nil {
		panic(fmt.Sprintf("config: MustLoad failed: %v", err))
	}
	return cfg
}

func (l *Loader) loadFile(cfg any) error {
	if strings.Contains(l.filePath, "..") {
		return sserr.New(sserr.CodeInternalConfiguration,
			"config: file path must not contain \"..\"")
	}

	data, err := os.ReadFile(l.filePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return sserr.Wrapf(err, sserr.CodeInternalConfiguration,
			"config: failed to read %q", l.filePath)
	}

	switch ext := strings.ToLower(filepath.Ext(l.filePath)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".json":
		err = json.Unmarshal(data, cfg)
	default:
		return sserr.Newf(sserr.CodeInternalConfiguration,
			"config: unsupported file extension %q (use .yaml, .yml or .json)", ext)
	}
	if err != nil {
		return sserr.Wrapf(err, sserr.CodeInternalConfiguration,
			"config: failed to parse %q", l.filePath)
	}
	return nil
}

// field is one settable leaf of a config struct.
type field struct {
	value  reflect.Value
	tag    reflect.StructTag
	path   string // dotted Go field path, e.g. "Log.Level"
	envKey string // full environment variable name, "" if untagged
}

// walk calls fn for every settable non-struct field of rv, descending into
// nested structs. Nested structs extend the env prefix with their own env
// tag.
func walk(rv reflect.Value, path, envPrefix string, fn func(field) error) error {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		fv := rv.Field(i)
		if !fv.CanSet() {
			continue
		}

		fieldPath := sf.Name
		if path != "" {
			fieldPath = path + "." + sf.Name
		}
		envTag := sf.Tag.Get("env")

		if fv.Kind() == reflect.Struct && sf.Type != durationType {
			if err := walk(fv, fieldPath, joinEnv(envPrefix, envTag), fn); err != nil {
				return err
			}
			continue
		}

		var envKey string
		if envTag != "" {
			envKey = joinEnv(envPrefix, envTag)
		}
		if err := fn(field{value: fv, tag: sf.Tag, path: fieldPath, envKey: envKey}); err != nil {
			return err
		}
	}
	return nil
}

func joinEnv(prefix, name string) string {
	switch {
	case prefix == "":
		return name
	case name == "":
		return prefix
	default:
		return prefix + "_" + name
	}
}

// setField parses s into v. Supported kinds: string (including named
// string types), bool, signed integers, time.Duration and []string
// (comma separated).
func setField(v reflect.Value, s string) error {
	if v.Type() == durationType {
		d, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		v.SetInt(int64(d))
		return nil
	}

	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Slice:
		if v.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice element type %s", v.Type().Elem())
		}
		parts := strings.Split(s, ",")
		out := reflect.MakeSlice(v.Type(), len(parts), len(parts))
		for i, p := range parts {
			out.Index(i).SetString(strings.TrimSpace(p))
		}
		v.Set(out)
	default:
		return fmt.Errorf("unsupported field type %s", v.Type())
	}
	return nil
}
