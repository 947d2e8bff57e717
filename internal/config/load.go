package config

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"gitlab.com/nunet/vkinfo/vulkan"
)

const configFile = "vkinfo_config.json"

// configuration reading order: working directory, then /etc/vkinfo
var configPaths = []string{".", "/etc/vkinfo"}

func getViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("vkinfo_config")
	v.SetConfigType("json")
	return v
}

func setDefaultConfig() *viper.Viper {
	v := getViper()
	v.SetDefault("general.debug", false)
	v.SetDefault("vulkan.library", vulkan.DefaultLibrary)
	return v
}

// Load reads the first config file found in the search paths on the given
// filesystem, on top of the defaults. A missing file is not an error. When
// the file cannot be read or parsed the defaults are returned together with
// the error.
func Load(fsys afero.Fs) (Config, error) {
	var c Config
	v := setDefaultConfig()

	config, err := findConfig(fsys, configPaths, configFile)
	if err != nil {
		if errors.Is(err, errNotFound) {
			err = nil
		}
		if uerr := v.Unmarshal(&c); uerr != nil {
			return Config{}, errors.Wrap(uerr, "unable to decode default config")
		}
		return c, err
	}

	if err = v.ReadConfig(bytes.NewBuffer(removeComments(config))); err != nil {
		setDefaultConfig().Unmarshal(&c)
		return c, errors.Wrap(err, "unable to parse "+configFile)
	}

	if err = v.Unmarshal(&c); err != nil {
		setDefaultConfig().Unmarshal(&c)
		return c, errors.Wrap(err, "unable to decode "+configFile)
	}
	return c, nil
}

var errNotFound = fmt.Errorf("file not found in any of the paths")

func findConfig(fsys afero.Fs, paths []string, filename string) ([]byte, error) {
	for _, path := range paths {
		fullPath := filepath.Join(path, filename)
		if _, err := fsys.Stat(fullPath); err != nil {
			continue
		}
		config, err := afero.ReadFile(fsys, fullPath)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to read %s", fullPath)
		}
		return config, nil
	}
	return nil, errNotFound
}

func removeComments(configBytes []byte) []byte {
	re := regexp.MustCompile("(?m)^\\s*//.*$") // whole-line only
	return re.ReplaceAll(configBytes, nil)
}
