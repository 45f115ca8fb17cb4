package config

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path"

	"github.com/kardianos/osext"
	"github.com/pkg/errors"
)

const (
	// Maximum distance at which a point is considered to lie on a boundary edge
	DefaultEpsilon = 0.1

	// Length of the segment standing in for a ray; must exceed the extent of any boundary
	DefaultRayLength = 9999.0
)

type Config struct {
	Epsilon   float64 `json:"epsilon"`
	RayLength float64 `json:"rayLength"`
}

func DefaultConfig() Config {
	return Config{
		Epsilon:   DefaultEpsilon,
		RayLength: DefaultRayLength,
	}
}

func (conf Config) GetEpsilon() float64 {
	return conf.Epsilon
}

func (conf Config) GetRayLength() float64 {
	return conf.RayLength
}

func (conf Config) Validate() error {
	if !(conf.Epsilon > 0) {
		return errors.Errorf("epsilon must be positive, got %v", conf.Epsilon)
	}

	if !(conf.RayLength > 0) {
		return errors.Errorf("rayLength must be positive, got %v", conf.RayLength)
	}

	return nil
}

// LoadConfig reads a JSON config file; keys absent from the file keep their default value.
func LoadConfig(configpath string) (Config, error) {
	resolved, err := resolvePath(configpath)
	if err != nil {
		return Config{}, err
	}

	buf, err := ioutil.ReadFile(resolved)
	if err != nil {
		return Config{}, errors.Wrapf(err, "Cannot read config file (%s)", resolved)
	}

	return ParseConfig(buf)
}

func ParseConfig(buf []byte) (Config, error) {
	config := DefaultConfig()
	if err := json.Unmarshal(buf, &config); err != nil {
		return Config{}, errors.Wrap(err, "Invalid JSON in config file")
	}

	if err := config.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "Invalid config")
	}

	return config, nil
}

// resolvePath looks for relative paths in the working directory first, then next to the executable.
func resolvePath(configpath string) (string, error) {
	if _, err := os.Stat(configpath); err == nil || path.IsAbs(configpath) {
		return configpath, nil
	}

	exfolder, err := osext.ExecutableFolder()
	if err != nil {
		return "", errors.Wrap(err, "Could not locate executable folder")
	}

	candidate := path.Join(exfolder, configpath)
	if _, err := os.Stat(candidate); os.IsNotExist(err) {
		return "", errors.New("Missing config file: " + configpath)
	}

	return candidate, nil
}
