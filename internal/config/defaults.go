package config

import "workspace-simulator/internal/timegen"

// applyTableDefaults fills any distribution table left empty by the
// config file and environment with the built-in values.
func applyTableDefaults(config *Config) {
	if len(config.DepartmentDistribution) == 0 {
		config.DepartmentDistribution = defaultDepartmentDistribution()
	}
	if len(config.RoleDistribution) == 0 {
		config.RoleDistribution = defaultRoleDistribution()
	}
	if config.DueDateDistribution == (timegen.DueDateShares{}) {
		config.DueDateDistribution = defaultDueDateDistribution()
	}
	if len(config.CompletionRates) == 0 {
		config.CompletionRates = defaultCompletionRates()
	}
	if len(config.CycleTime) == 0 {
		config.CycleTime = defaultCycleTime()
	}
	if len(config.CommentDistribution) == 0 {
		config.CommentDistribution = defaultCommentDistribution()
	}
	if len(config.SubtaskCounts) == 0 {
		config.SubtaskCounts = defaultSubtaskCounts()
	}
	if len(config.CustomFields) == 0 {
		config.CustomFields = defaultCustomFields()
	}
	if len(config.Tags) == 0 {
		config.Tags = defaultTags()
	}
}

func defaultDepartmentDistribution() []DepartmentShare {
	return []DepartmentShare{
		{Department: "Engineering", Share: 0.40},
		{Department: "Product", Share: 0.15},
		{Department: "Marketing", Share: 0.15},
		{Department: "Sales", Share: 0.15},
		{Department: "Operations", Share: 0.10},
		{Department: "HR", Share: 0.05},
	}
}

func defaultRoleDistribution() []RoleShare {
	return []RoleShare{
		{Role: "junior", Share: 0.40},
		{Role: "mid", Share: 0.35},
		{Role: "senior", Share: 0.20},
		{Role: "lead", Share: 0.05},
	}
}

func defaultDueDateDistribution() timegen.DueDateShares {
	return timegen.DueDateShares{
		WithinWeek:    0.25,
		WithinMonth:   0.40,
		WithinQuarter: 0.20,
		NoDate:        0.10,
		Overdue:       0.05,
	}
}

// Completion rate bands follow agile delivery benchmarks per project type.
func defaultCompletionRates() []CompletionRate {
	return []CompletionRate{
		{ProjectType: "sprint", Low: 0.70, High: 0.85},
		{ProjectType: "ongoing", Low: 0.40, High: 0.50},
		{ProjectType: "campaign", Low: 0.60, High: 0.75},
		{ProjectType: "planning", Low: 0.30, High: 0.45},
		{ProjectType: "default", Low: 0.50, High: 0.70},
	}
}

// Cycle time buckets follow DORA-style elite-to-slow bands.
func defaultCycleTime() []timegen.CycleBucket {
	return []timegen.CycleBucket{
		{Name: "elite", MinDays: 1, MaxDays: 2, Share: 0.15},
		{Name: "good", MinDays: 2, MaxDays: 4, Share: 0.40},
		{Name: "median", MinDays: 4, MaxDays: 7, Share: 0.30},
		{Name: "slow", MinDays: 7, MaxDays: 14, Share: 0.12},
		{Name: "very_slow", MinDays: 14, MaxDays: 30, Share: 0.03},
	}
}

func defaultCommentDistribution() []CountBucket {
	return []CountBucket{
		{Min: 0, Max: 0, Share: 0.30},
		{Min: 1, Max: 3, Share: 0.40},
		{Min: 4, Max: 10, Share: 0.20},
		{Min: 10, Max: 25, Share: 0.10},
	}
}

func defaultSubtaskCounts() []CountBucket {
	return []CountBucket{
		{Min: 2, Max: 3, Share: 0.50},
		{Min: 4, Max: 5, Share: 0.30},
		{Min: 6, Max: 10, Share: 0.20},
	}
}

func defaultCustomFields() []CustomFieldSpec {
	return []CustomFieldSpec{
		{
			Name:      "Priority",
			FieldType: "enum",
			Options:   []string{"P0 - Critical", "P1 - High", "P2 - Medium", "P3 - Low"},
			Distribution: []ValueShare{
				{Value: "P0 - Critical", Share: 0.05},
				{Value: "P1 - High", Share: 0.20},
				{Value: "P2 - Medium", Share: 0.50},
				{Value: "P3 - Low", Share: 0.25},
			},
		},
		{
			Name:      "Effort",
			FieldType: "enum",
			Options:   []string{"XS", "S", "M", "L", "XL"},
			Distribution: []ValueShare{
				{Value: "XS", Share: 0.15},
				{Value: "S", Share: 0.30},
				{Value: "M", Share: 0.35},
				{Value: "L", Share: 0.15},
				{Value: "XL", Share: 0.05},
			},
		},
		{
			Name:      "Type",
			FieldType: "enum",
			Options:   []string{"Feature", "Bug", "Chore", "Spike"},
			Distribution: []ValueShare{
				{Value: "Feature", Share: 0.45},
				{Value: "Bug", Share: 0.30},
				{Value: "Chore", Share: 0.20},
				{Value: "Spike", Share: 0.05},
			},
		},
		{
			Name:      "Sprint",
			FieldType: "text",
		},
		{
			Name:      "Story Points",
			FieldType: "number",
			Distribution: []ValueShare{
				{Value: "1", Share: 0.10},
				{Value: "2", Share: 0.25},
				{Value: "3", Share: 0.30},
				{Value: "5", Share: 0.25},
				{Value: "8", Share: 0.08},
				{Value: "13", Share: 0.02},
			},
		},
	}
}

// Tag colors follow the Asana palette.
func defaultTags() []TagSpec {
	return []TagSpec{
		{Name: "bug", Color: "#E53935"},
		{Name: "feature", Color: "#43A047"},
		{Name: "enhancement", Color: "#1E88E5"},
		{Name: "blocked", Color: "#FB8C00"},
		{Name: "needs-review", Color: "#8E24AA"},
		{Name: "p0", Color: "#D32F2F"},
		{Name: "p1", Color: "#F57C00"},
		{Name: "tech-debt", Color: "#757575"},
		{Name: "documentation", Color: "#0288D1"},
		{Name: "security", Color: "#C62828"},
		{Name: "performance", Color: "#00ACC1"},
		{Name: "ux", Color: "#7B1FA2"},
		{Name: "mobile", Color: "#5E35B1"},
		{Name: "api", Color: "#00897B"},
		{Name: "infrastructure", Color: "#6D4C41"},
		{Name: "testing", Color: "#FDD835"},
		{Name: "breaking-change", Color: "#E91E63"},
		{Name: "wontfix", Color: "#9E9E9E"},
		{Name: "duplicate", Color: "#BDBDBD"},
		{Name: "good-first-issue", Color: "#4CAF50"},
	}
}
