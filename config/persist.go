package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"github.com/vidresolve/vidresolve/constant"
	"github.com/vidresolve/vidresolve/where"
)

// ErrUnknownKey is returned for keys that are not registered in Default.
var ErrUnknownKey = errors.New("unknown key")

// Path returns the location of the config file, whether it exists or not.
func Path() string {
	return filepath.Join(where.Config(), constant.App+".toml")
}

// Coerce converts raw command line values into the type of the key's default.
func Coerce(k string, raw []string) (any, error) {
	field, ok := Default[k]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, k)
	}

	if _, ok := field.Value.([]string); ok {
		return raw, nil
	}

	if len(raw) == 0 {
		return nil, fmt.Errorf("%s: value is required", k)
	}

	var (
		value any
		err   error
	)

	switch field.Value.(type) {
	case string:
		value = raw[0]
	case int:
		value, err = cast.ToIntE(raw[0])
	case bool:
		value, err = cast.ToBoolE(raw[0])
	default:
		err = fmt.Errorf("unsupported type %T", field.Value)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: invalid %s value %q", k, field.typeName(), raw[0])
	}

	return value, nil
}

// Assign sets the keys and keeps the change only if the whole configuration
// still validates. On failure every key is restored to its previous value.
func Assign(values map[string]any) error {
	previous := make(map[string]any, len(values))
	for k, v := range values {
		previous[k] = viper.Get(k)
		viper.Set(k, v)
	}

	if err := Validate(); err != nil {
		for k, v := range previous {
			viper.Set(k, v)
		}
		return err
	}

	return nil
}

// Write persists the in-memory configuration, creating the file if needed.
func Write() error {
	err := viper.WriteConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfigAs(Path())
	}

	return err
}
