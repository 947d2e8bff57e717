package config

type Config struct {
	General `mapstructure:"general"`
	Vulkan  `mapstructure:"vulkan"`
}

type General struct {
	Debug bool `mapstructure:"debug"` // development logger on stderr
}

type Vulkan struct {
	Library string `mapstructure:"library"` // loader library passed to dlopen
}
