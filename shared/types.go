package shared

type Config struct {
	Server   ServerConfig    `mapstructure:"server" validate:"required"`
	Logging  LoggingConfig   `mapstructure:"logging"`
	Contacts []PresetContact `mapstructure:"contacts" validate:"dive"`
}

type ServerConfig struct {
	Port int `mapstructure:"port" validate:"required,min=1,max=65535"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level" validate:"omitempty,log_level"`
}

// PresetContact is a contact listed in the config file that can be loaded
// into a new session. It goes through the same checks as one typed in by hand.
type PresetContact struct {
	Name  string `mapstructure:"name"`
	Phone string `mapstructure:"phone"`
}
