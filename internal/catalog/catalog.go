package catalog

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	apperrors "workspace-simulator/internal/errors"
)

// WeightedName pairs a name with its census-derived draw weight.
type WeightedName struct {
	Name   string  `json:"name" yaml:"name"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// DepartmentList holds an ordered list of phrases for one department.
type DepartmentList struct {
	Department string   `json:"department" yaml:"department"`
	Items      []string `json:"items" yaml:"items"`
}

// DepartmentText holds a single format string for one department.
type DepartmentText struct {
	Department string `json:"department" yaml:"department"`
	Text       string `json:"text" yaml:"text"`
}

// CommentSet groups comment texts of one conversational kind together
// with the weight at which that kind is drawn.
type CommentSet struct {
	Kind   string   `json:"kind" yaml:"kind"`
	Weight float64  `json:"weight" yaml:"weight"`
	Texts  []string `json:"texts" yaml:"texts"`
}

// Vocabulary binds a template placeholder to its substitution values.
// Scope separates placeholders that share a name across template sets.
type Vocabulary struct {
	Scope       string   `json:"scope" yaml:"scope"`
	Placeholder string   `json:"placeholder" yaml:"placeholder"`
	Values      []string `json:"values" yaml:"values"`
}

// TagRule maps task-name keywords to the tag applied when any matches.
type TagRule struct {
	Keywords []string `json:"keywords" yaml:"keywords"`
	Tag      string   `json:"tag" yaml:"tag"`
}

// Placeholder scopes.
const (
	ScopeProject = "project"
	ScopeTask    = "task"
	ScopeSubtask = "subtask"
)

// Catalog carries every static phrase pool the generator draws from.
// All collections are ordered slices so draws stay reproducible.
type Catalog struct {
	FirstNames       []WeightedName   `json:"first_names" yaml:"first_names"`
	LastNames        []WeightedName   `json:"last_names" yaml:"last_names"`
	TeamTemplates    []DepartmentList `json:"team_templates" yaml:"team_templates"`
	TeamDescriptions []DepartmentText `json:"team_descriptions" yaml:"team_descriptions"`
	ProjectTemplates []DepartmentList `json:"project_templates" yaml:"project_templates"`
	TaskTemplates    []DepartmentList `json:"task_templates" yaml:"task_templates"`
	SectionTemplates []DepartmentList `json:"section_templates" yaml:"section_templates"`
	SubtaskPatterns  []string         `json:"subtask_patterns" yaml:"subtask_patterns"`
	CommentTemplates []CommentSet     `json:"comment_templates" yaml:"comment_templates"`
	Placeholders     []Vocabulary     `json:"placeholders" yaml:"placeholders"`
	TagRules         []TagRule        `json:"tag_rules" yaml:"tag_rules"`
}

// Load builds a catalog from the built-in defaults, overriding any list
// that has a <name>.yaml, <name>.yml or <name>.json file in dir. An empty
// or missing dir means all built-ins.
func Load(dir string) (*Catalog, error) {
	cat := Default()

	if dir != "" {
		overlays := []struct {
			name string
			dst  any
		}{
			{"first_names", &cat.FirstNames},
			{"last_names", &cat.LastNames},
			{"team_templates", &cat.TeamTemplates},
			{"team_descriptions", &cat.TeamDescriptions},
			{"project_templates", &cat.ProjectTemplates},
			{"task_templates", &cat.TaskTemplates},
			{"section_templates", &cat.SectionTemplates},
			{"subtask_patterns", &cat.SubtaskPatterns},
			{"comment_templates", &cat.CommentTemplates},
			{"placeholders", &cat.Placeholders},
			{"tag_rules", &cat.TagRules},
		}

		for _, overlay := range overlays {
			if err := loadOverlay(dir, overlay.name, overlay.dst); err != nil {
				return nil, err
			}
		}
	}

	if err := cat.validate(); err != nil {
		return nil, err
	}

	return cat, nil
}

// loadOverlay replaces dst with the decoded contents of the first
// matching file, if one exists.
func loadOverlay(dir, name string, dst any) error {
	for _, ext := range []string{".yaml", ".yml", ".json"} {
		path := filepath.Join(dir, name+ext)

		raw, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return apperrors.NewCatalogError(path, err.Error())
		}

		if ext == ".json" {
			err = json.Unmarshal(raw, dst)
		} else {
			err = yaml.Unmarshal(raw, dst)
		}
		if err != nil {
			return apperrors.NewCatalogError(path, err.Error())
		}
		return nil
	}
	return nil
}

func (c *Catalog) validate() error {
	lists := []struct {
		name  string
		empty bool
	}{
		{"first_names", len(c.FirstNames) == 0},
		{"last_names", len(c.LastNames) == 0},
		{"team_templates", len(c.TeamTemplates) == 0},
		{"team_descriptions", len(c.TeamDescriptions) == 0},
		{"project_templates", len(c.ProjectTemplates) == 0},
		{"task_templates", len(c.TaskTemplates) == 0},
		{"section_templates", len(c.SectionTemplates) == 0},
		{"subtask_patterns", len(c.SubtaskPatterns) == 0},
		{"comment_templates", len(c.CommentTemplates) == 0},
		{"placeholders", len(c.Placeholders) == 0},
	}

	for _, list := range lists {
		if list.empty {
			return apperrors.NewCatalogError(list.name, "list has no entries")
		}
	}

	// Every department resolves its board through the default template,
	// so an override must not drop it.
	if len(departmentItems(c.SectionTemplates, "default", "")) == 0 {
		return apperrors.NewCatalogError("section_templates", "missing a non-empty default template")
	}
	return nil
}

// TeamTemplatesFor returns the team name pool for a department. Unknown
// departments get an empty pool and fall back to numbered names.
func (c *Catalog) TeamTemplatesFor(department string) []string {
	return departmentItems(c.TeamTemplates, department, "")
}

// TeamDescriptionFor returns the description format for a department.
func (c *Catalog) TeamDescriptionFor(department string) string {
	for _, entry := range c.TeamDescriptions {
		if entry.Department == department {
			return entry.Text
		}
	}
	return "Team focused on {focus}."
}

// ProjectTemplatesFor returns the project name pool for a department,
// falling back to the Engineering pool.
func (c *Catalog) ProjectTemplatesFor(department string) []string {
	return departmentItems(c.ProjectTemplates, department, "Engineering")
}

// TaskTemplatesFor returns the task name pool for a department, falling
// back to the Engineering pool.
func (c *Catalog) TaskTemplatesFor(department string) []string {
	return departmentItems(c.TaskTemplates, department, "Engineering")
}

// SectionTemplatesFor returns the board columns for a department,
// falling back to the default template.
func (c *Catalog) SectionTemplatesFor(department string) []string {
	return departmentItems(c.SectionTemplates, department, "default")
}

// VocabularyFor returns the substitution values for a scoped placeholder.
func (c *Catalog) VocabularyFor(scope, placeholder string) []string {
	for _, vocab := range c.Placeholders {
		if vocab.Scope == scope && vocab.Placeholder == placeholder {
			return vocab.Values
		}
	}
	return nil
}

func departmentItems(lists []DepartmentList, department, fallback string) []string {
	for _, list := range lists {
		if list.Department == department {
			return list.Items
		}
	}
	if fallback != "" && fallback != department {
		for _, list := range lists {
			if list.Department == fallback {
				return list.Items
			}
		}
	}
	return nil
}
