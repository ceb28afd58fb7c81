package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLConfig represents the structure of the config.yaml file.
// Response wording and intent names change more often than deploy settings,
// so they live here rather than in env vars.
type YAMLConfig struct {
	Intents   IntentsConfig   `yaml:"intents"`
	Responses ResponsesConfig `yaml:"responses"`
}

// IntentsConfig names the intents routed to structured handlers.
type IntentsConfig struct {
	Finance    string `yaml:"finance"`
	Dashboard  string `yaml:"dashboard"`
	Attendance string `yaml:"attendance"`
}

// ResponsesConfig holds text/template sources for every response the dispatcher can produce.
type ResponsesConfig struct {
	Finance          string `yaml:"finance"`
	Dashboard        string `yaml:"dashboard"`
	Attendance       string `yaml:"attendance"`
	MissingStudentID string `yaml:"missing_student_id"`
	StudentNotFound  string `yaml:"student_not_found"`
	Unavailable      string `yaml:"unavailable"`
	Unknown          string `yaml:"unknown"`
}

// DefaultYAMLConfig returns the built-in intent names and response wording.
func DefaultYAMLConfig() *YAMLConfig {
	cfg := &YAMLConfig{}
	cfg.applyDefaults()
	return cfg
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns the defaults without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	path := getEnv("CONFIG_FILE", "config.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return DefaultYAMLConfig(), nil
		}
		return nil, err
	}

	return ParseYAMLConfig(data)
}

// ParseYAMLConfig parses YAML config data and fills unset fields with defaults.
func ParseYAMLConfig(data []byte) (*YAMLConfig, error) {
	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *YAMLConfig) applyDefaults() {
	setDefault(&c.Intents.Finance, "FinanceIntent")
	setDefault(&c.Intents.Dashboard, "DashboardIntent")
	setDefault(&c.Intents.Attendance, "AttendanceIntent")

	setDefault(&c.Responses.Finance,
		`Hi {{.Name}}, your total fees are ₹{{money .FeesTotal}}, you have paid ₹{{money .FeesPaid}} and ₹{{money .FeesDue}} is due{{with .FeesDueDate}} by {{date .}}{{end}}.`)
	setDefault(&c.Responses.Dashboard,
		`Hi {{.Name}}, your average mark is {{printf "%.1f" .AverageMark}}{{range $subject, $mark := .Marks}}, {{$subject}}: {{printf "%.1f" $mark}}{{end}}.`)
	setDefault(&c.Responses.Attendance,
		`Hi {{.Name}}, your attendance is {{printf "%.1f" .AttendancePercent}}%.`)
	setDefault(&c.Responses.MissingStudentID,
		"Please share your student ID so I can look that up.")
	setDefault(&c.Responses.StudentNotFound,
		"Sorry, I couldn't find a student with ID {{.}}.")
	setDefault(&c.Responses.Unavailable,
		"Sorry, student records are unavailable right now. Please try again later.")
	setDefault(&c.Responses.Unknown,
		"Sorry, I don't know the answer to that yet. Please contact the college office.")
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}
