package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"workspace-simulator/internal/database/models"
	apperrors "workspace-simulator/internal/errors"
	"workspace-simulator/internal/timegen"
)

// DepartmentShare weights one department in the team and user split.
type DepartmentShare struct {
	Department string  `mapstructure:"department"`
	Share      float64 `mapstructure:"share"`
}

// RoleShare weights one seniority level in the user mix.
type RoleShare struct {
	Role  string  `mapstructure:"role"`
	Share float64 `mapstructure:"share"`
}

// CompletionRate bounds the completed-task share for one project type.
type CompletionRate struct {
	ProjectType string  `mapstructure:"project_type"`
	Low         float64 `mapstructure:"low"`
	High        float64 `mapstructure:"high"`
}

// CountBucket draws a count in [Min, Max] with probability Share.
type CountBucket struct {
	Min   int     `mapstructure:"min"`
	Max   int     `mapstructure:"max"`
	Share float64 `mapstructure:"share"`
}

// ValueShare weights one custom field value.
type ValueShare struct {
	Value string  `mapstructure:"value"`
	Share float64 `mapstructure:"share"`
}

// CustomFieldSpec declares one org-wide custom field and how its values
// are drawn.
type CustomFieldSpec struct {
	Name         string       `mapstructure:"name"`
	FieldType    string       `mapstructure:"field_type"`
	Options      []string     `mapstructure:"options"`
	Distribution []ValueShare `mapstructure:"distribution"`
}

// TagSpec declares one org-wide tag.
type TagSpec struct {
	Name  string `mapstructure:"name"`
	Color string `mapstructure:"color"`
}

// Config holds all knobs for a generation run
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Organization
	OrganizationName   string `mapstructure:"ORGANIZATION_NAME" validate:"required"`
	OrganizationDomain string `mapstructure:"ORGANIZATION_DOMAIN" validate:"required,fqdn"`

	// Scale
	NumUsers            int     `mapstructure:"NUM_USERS" validate:"gt=0"`
	InactiveUserRate    float64 `mapstructure:"INACTIVE_USER_RATE" validate:"gte=0,lte=1"`
	NumTeams            int     `mapstructure:"NUM_TEAMS" validate:"gt=0"`
	MinTeamSize         int     `mapstructure:"MIN_TEAM_SIZE" validate:"gt=0"`
	MaxTeamSize         int     `mapstructure:"MAX_TEAM_SIZE" validate:"gtefield=MinTeamSize"`
	NumProjects         int     `mapstructure:"NUM_PROJECTS" validate:"gt=0"`
	ArchivedProjectRate float64 `mapstructure:"ARCHIVED_PROJECT_RATE" validate:"gte=0,lte=1"`
	NumTasks            int     `mapstructure:"NUM_TASKS" validate:"gt=0"`
	SubtaskRate         float64 `mapstructure:"SUBTASK_RATE" validate:"gte=0,lte=1"`

	// Temporal window. SIMULATION_END is RFC3339; empty means the
	// current time, a fixed value makes runs reproducible.
	HistoryMonths int    `mapstructure:"HISTORY_MONTHS" validate:"gt=0"`
	SimulationEnd string `mapstructure:"SIMULATION_END"`

	// Distributions
	DepartmentDistribution []DepartmentShare     `mapstructure:"DEPARTMENT_DISTRIBUTION"`
	RoleDistribution       []RoleShare           `mapstructure:"ROLE_DISTRIBUTION"`
	UnassignedTaskRate     float64               `mapstructure:"UNASSIGNED_TASK_RATE" validate:"gte=0,lte=1"`
	EmptyDescriptionRate   float64               `mapstructure:"EMPTY_DESCRIPTION_RATE" validate:"gte=0,lte=1"`
	DueDateDistribution    timegen.DueDateShares `mapstructure:"DUE_DATE_DISTRIBUTION"`
	CompletionRates        []CompletionRate      `mapstructure:"COMPLETION_RATES"`
	CycleTime              []timegen.CycleBucket `mapstructure:"CYCLE_TIME"`
	CommentDistribution    []CountBucket         `mapstructure:"COMMENT_DISTRIBUTION"`
	SubtaskCounts          []CountBucket         `mapstructure:"SUBTASK_COUNTS"`
	CustomFields           []CustomFieldSpec     `mapstructure:"CUSTOM_FIELDS"`
	Tags                   []TagSpec             `mapstructure:"TAGS"`

	// Rates and tuning constants
	FieldCoverageRate  float64 `mapstructure:"FIELD_COVERAGE_RATE" validate:"gte=0,lte=1"`
	TagRate            float64 `mapstructure:"TAG_RATE" validate:"gte=0,lte=1"`
	ExtraTagRate       float64 `mapstructure:"EXTRA_TAG_RATE" validate:"gte=0,lte=1"`
	CrossTeamRate      float64 `mapstructure:"CROSS_TEAM_RATE" validate:"gte=0,lte=1"`
	SubtaskDoneBase    float64 `mapstructure:"SUBTASK_DONE_BASE" validate:"gte=0,lte=1"`
	SubtaskDoneDecay   float64 `mapstructure:"SUBTASK_DONE_DECAY" validate:"gte=0,lte=1"`
	SubtaskOpenBase    float64 `mapstructure:"SUBTASK_OPEN_BASE" validate:"gte=0,lte=1"`
	SubtaskOpenRamp    float64 `mapstructure:"SUBTASK_OPEN_RAMP" validate:"gte=0,lte=1"`
	CommentWindowSlack float64 `mapstructure:"COMMENT_WINDOW_SLACK" validate:"gte=0,lte=1"`

	// Plumbing
	RandomSeed     int64  `mapstructure:"RANDOM_SEED"`
	DataDir        string `mapstructure:"DATA_DIR"`
	DatabaseDriver string `mapstructure:"DATABASE_DRIVER"`
	DatabasePath   string `mapstructure:"DATABASE_PATH"`
	BatchSize      int    `mapstructure:"BATCH_SIZE" validate:"gt=0"`

	// Database connection (postgres driver)
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// Derived from HISTORY_MONTHS and SIMULATION_END
	SimulationEndTime time.Time `mapstructure:"-"`
	SimulationStart   time.Time `mapstructure:"-"`
	OrgCreatedAt      time.Time `mapstructure:"-"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Distribution tables and field catalogs fall back to built-ins
	applyTableDefaults(&config)

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	if err := config.DeriveWindow(); err != nil {
		return nil, err
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// Default returns the built-in configuration with the simulation window
// derived from the current time.
func Default() *Config {
	config := &Config{
		Environment: "development",
		LogLevel:    "info",

		OrganizationName:   "Cloudvance Technologies",
		OrganizationDomain: "cloudvance.com",

		NumUsers:            500,
		InactiveUserRate:    0.05,
		NumTeams:            35,
		MinTeamSize:         8,
		MaxTeamSize:         20,
		NumProjects:         100,
		ArchivedProjectRate: 0.30,
		NumTasks:            5000,
		SubtaskRate:         0.25,

		HistoryMonths: 18,

		UnassignedTaskRate:   0.15,
		EmptyDescriptionRate: 0.20,

		FieldCoverageRate:  0.80,
		TagRate:            0.40,
		ExtraTagRate:       0.30,
		CrossTeamRate:      0.20,
		SubtaskDoneBase:    0.90,
		SubtaskDoneDecay:   0.05,
		SubtaskOpenBase:    0.30,
		SubtaskOpenRamp:    0.10,
		CommentWindowSlack: 0.20,

		RandomSeed:     42,
		DataDir:        "data",
		DatabaseDriver: "sqlite",
		DatabasePath:   "output/workspace.sqlite",
		BatchSize:      1000,

		DatabaseHost:     "localhost",
		DatabasePort:     "5432",
		DatabaseUser:     "postgres",
		DatabasePassword: "postgres",
		DatabaseName:     "workspace_sim",
		DatabaseSSLMode:  "disable",
	}

	applyTableDefaults(config)
	config.DatabaseURL = buildDatabaseURL(config)

	// an empty SIMULATION_END derives from the clock and cannot fail
	_ = config.DeriveWindow()

	return config
}

// DeriveWindow computes the simulation window from SIMULATION_END and
// HISTORY_MONTHS. The organization is founded 180 days before history
// starts so teams and hires predate the first project.
func (c *Config) DeriveWindow() error {
	end := time.Now().UTC().Truncate(time.Second)
	if c.SimulationEnd != "" {
		parsed, err := time.Parse(time.RFC3339, c.SimulationEnd)
		if err != nil {
			return apperrors.ErrInvalidSimulationEnd
		}
		end = parsed.UTC().Truncate(time.Second)
	}

	c.SimulationEndTime = end
	c.SimulationStart = end.AddDate(0, 0, -c.HistoryMonths*30)
	c.OrgCreatedAt = c.SimulationStart.AddDate(0, 0, -180)
	return nil
}

func setDefaults() {
	defaults := Default()

	viper.SetDefault("ENVIRONMENT", defaults.Environment)
	viper.SetDefault("LOG_LEVEL", defaults.LogLevel)

	viper.SetDefault("ORGANIZATION_NAME", defaults.OrganizationName)
	viper.SetDefault("ORGANIZATION_DOMAIN", defaults.OrganizationDomain)

	// Scale defaults
	viper.SetDefault("NUM_USERS", defaults.NumUsers)
	viper.SetDefault("INACTIVE_USER_RATE", defaults.InactiveUserRate)
	viper.SetDefault("NUM_TEAMS", defaults.NumTeams)
	viper.SetDefault("MIN_TEAM_SIZE", defaults.MinTeamSize)
	viper.SetDefault("MAX_TEAM_SIZE", defaults.MaxTeamSize)
	viper.SetDefault("NUM_PROJECTS", defaults.NumProjects)
	viper.SetDefault("ARCHIVED_PROJECT_RATE", defaults.ArchivedProjectRate)
	viper.SetDefault("NUM_TASKS", defaults.NumTasks)
	viper.SetDefault("SUBTASK_RATE", defaults.SubtaskRate)

	// Temporal defaults
	viper.SetDefault("HISTORY_MONTHS", defaults.HistoryMonths)
	viper.SetDefault("SIMULATION_END", "")

	// Rate defaults
	viper.SetDefault("UNASSIGNED_TASK_RATE", defaults.UnassignedTaskRate)
	viper.SetDefault("EMPTY_DESCRIPTION_RATE", defaults.EmptyDescriptionRate)
	viper.SetDefault("FIELD_COVERAGE_RATE", defaults.FieldCoverageRate)
	viper.SetDefault("TAG_RATE", defaults.TagRate)
	viper.SetDefault("EXTRA_TAG_RATE", defaults.ExtraTagRate)
	viper.SetDefault("CROSS_TEAM_RATE", defaults.CrossTeamRate)
	viper.SetDefault("SUBTASK_DONE_BASE", defaults.SubtaskDoneBase)
	viper.SetDefault("SUBTASK_DONE_DECAY", defaults.SubtaskDoneDecay)
	viper.SetDefault("SUBTASK_OPEN_BASE", defaults.SubtaskOpenBase)
	viper.SetDefault("SUBTASK_OPEN_RAMP", defaults.SubtaskOpenRamp)
	viper.SetDefault("COMMENT_WINDOW_SLACK", defaults.CommentWindowSlack)

	// Plumbing defaults
	viper.SetDefault("RANDOM_SEED", defaults.RandomSeed)
	viper.SetDefault("DATA_DIR", defaults.DataDir)
	viper.SetDefault("DATABASE_DRIVER", defaults.DatabaseDriver)
	viper.SetDefault("DATABASE_PATH", defaults.DatabasePath)
	viper.SetDefault("BATCH_SIZE", defaults.BatchSize)

	// Database defaults
	viper.SetDefault("DB_HOST", defaults.DatabaseHost)
	viper.SetDefault("DB_PORT", defaults.DatabasePort)
	viper.SetDefault("DB_USER", defaults.DatabaseUser)
	viper.SetDefault("DB_PASSWORD", defaults.DatabasePassword)
	viper.SetDefault("DB_NAME", defaults.DatabaseName)
	viper.SetDefault("DB_SSL_MODE", defaults.DatabaseSSLMode)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if err := validator.New().Struct(config); err != nil {
		return err
	}

	if config.DatabaseDriver != "sqlite" && config.DatabaseDriver != "postgres" {
		return apperrors.ErrUnknownDatabaseDriver
	}

	if len(config.DepartmentDistribution) == 0 {
		return apperrors.ErrEmptyDistribution
	}
	deptTotal := 0.0
	for _, dept := range config.DepartmentDistribution {
		if dept.Department == "" {
			return apperrors.NewConfigurationError("DEPARTMENT_DISTRIBUTION", "department name cannot be empty")
		}
		if dept.Share < 0 {
			return apperrors.NewConfigurationError("DEPARTMENT_DISTRIBUTION", fmt.Sprintf("share for %s cannot be negative", dept.Department))
		}
		deptTotal += dept.Share
	}
	if deptTotal <= 0 {
		return apperrors.NewConfigurationError("DEPARTMENT_DISTRIBUTION", "shares must sum to a positive value")
	}

	if len(config.RoleDistribution) == 0 {
		return apperrors.NewConfigurationError("ROLE_DISTRIBUTION", "distribution table is empty")
	}
	roleTotal := 0.0
	for _, role := range config.RoleDistribution {
		if !models.UserRole(role.Role).IsValid() {
			return apperrors.NewConfigurationError("ROLE_DISTRIBUTION", fmt.Sprintf("unknown role %q", role.Role))
		}
		if role.Share < 0 {
			return apperrors.NewConfigurationError("ROLE_DISTRIBUTION", fmt.Sprintf("share for %s cannot be negative", role.Role))
		}
		roleTotal += role.Share
	}
	if roleTotal <= 0 {
		return apperrors.NewConfigurationError("ROLE_DISTRIBUTION", "shares must sum to a positive value")
	}

	if err := validateDueDateShares(config.DueDateDistribution); err != nil {
		return err
	}

	for _, rate := range config.CompletionRates {
		if rate.Low < 0 || rate.High > 1 || rate.Low > rate.High {
			return apperrors.NewConfigurationError("COMPLETION_RATES", fmt.Sprintf("invalid range for %q", rate.ProjectType))
		}
	}

	cycleTotal := 0.0
	for _, bucket := range config.CycleTime {
		if bucket.MinDays < 0 || bucket.MinDays > bucket.MaxDays {
			return apperrors.NewConfigurationError("CYCLE_TIME", fmt.Sprintf("invalid day range for %q", bucket.Name))
		}
		if bucket.Share < 0 {
			return apperrors.NewConfigurationError("CYCLE_TIME", fmt.Sprintf("share for %q cannot be negative", bucket.Name))
		}
		cycleTotal += bucket.Share
	}
	if len(config.CycleTime) > 0 && cycleTotal <= 0 {
		return apperrors.NewConfigurationError("CYCLE_TIME", "shares must sum to a positive value")
	}

	if err := validateCountBuckets("COMMENT_DISTRIBUTION", config.CommentDistribution); err != nil {
		return err
	}
	if err := validateCountBuckets("SUBTASK_COUNTS", config.SubtaskCounts); err != nil {
		return err
	}

	for _, field := range config.CustomFields {
		if field.Name == "" {
			return apperrors.NewConfigurationError("CUSTOM_FIELDS", "field name cannot be empty")
		}
		if !models.FieldType(field.FieldType).IsValid() {
			return apperrors.NewConfigurationError("CUSTOM_FIELDS", fmt.Sprintf("unknown field type %q for %s", field.FieldType, field.Name))
		}
		if field.FieldType == string(models.FieldTypeEnum) && len(field.Options) == 0 {
			return apperrors.NewConfigurationError("CUSTOM_FIELDS", fmt.Sprintf("enum field %s needs options", field.Name))
		}
	}

	seenTags := make(map[string]struct{}, len(config.Tags))
	for _, tag := range config.Tags {
		if tag.Name == "" {
			return apperrors.NewConfigurationError("TAGS", "tag name cannot be empty")
		}
		if _, dup := seenTags[tag.Name]; dup {
			return apperrors.NewConfigurationError("TAGS", fmt.Sprintf("duplicate tag %q", tag.Name))
		}
		seenTags[tag.Name] = struct{}{}
	}

	return nil
}

func validateDueDateShares(shares timegen.DueDateShares) error {
	total := 0.0
	for _, share := range []float64{shares.NoDate, shares.Overdue, shares.WithinWeek, shares.WithinMonth, shares.WithinQuarter} {
		if share < 0 || share > 1 {
			return apperrors.NewConfigurationError("DUE_DATE_DISTRIBUTION", "each share must be between 0 and 1")
		}
		total += share
	}
	if total <= 0 || total > 1+1e-9 {
		return apperrors.NewConfigurationError("DUE_DATE_DISTRIBUTION", "shares must sum to at most 1")
	}
	return nil
}

func validateCountBuckets(field string, buckets []CountBucket) error {
	total := 0.0
	for _, bucket := range buckets {
		if bucket.Min < 0 || bucket.Min > bucket.Max {
			return apperrors.NewConfigurationError(field, fmt.Sprintf("invalid count range %d..%d", bucket.Min, bucket.Max))
		}
		if bucket.Share < 0 {
			return apperrors.NewConfigurationError(field, "share cannot be negative")
		}
		total += bucket.Share
	}
	if len(buckets) > 0 && total <= 0 {
		return apperrors.NewConfigurationError(field, "shares must sum to a positive value")
	}
	return nil
}

// DSN returns the connection string for the configured driver.
func (c *Config) DSN() string {
	if c.DatabaseDriver == "sqlite" {
		return c.DatabasePath
	}
	return c.DatabaseURL
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
