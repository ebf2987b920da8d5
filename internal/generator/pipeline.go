package generator

import (
	"math/rand"

	"workspace-simulator/internal/catalog"
	"workspace-simulator/internal/config"
	"workspace-simulator/internal/database/models"
	apperrors "workspace-simulator/internal/errors"
	"workspace-simulator/internal/logger"
)

// Writer receives each finished collection for persistence, in
// dependency order so foreign keys always resolve. A nil Writer keeps
// the run in memory.
type Writer interface {
	WriteOrganization(org *models.Organization) error
	WriteTeams(teams []models.Team) error
	WriteUsers(users []models.User) error
	WriteMemberships(memberships []models.TeamMembership) error
	WriteProjects(projects []models.Project) error
	WriteSections(sections []models.Section) error
	WriteTasks(tasks []models.Task) error
	WriteComments(comments []models.Comment) error
	WriteFieldDefinitions(defs []models.CustomFieldDefinition) error
	WriteFieldValues(values []models.CustomFieldValue) error
	WriteTags(tags []models.Tag) error
	WriteTaskTags(taskTags []models.TaskTag) error
}

// Pipeline runs the generation stages in dependency order against one
// configuration and catalog.
type Pipeline struct {
	cfg    *config.Config
	cat    *catalog.Catalog
	writer Writer
	log    *logger.Logger
}

// NewPipeline wires a pipeline. writer may be nil for in-memory runs.
func NewPipeline(cfg *config.Config, cat *catalog.Catalog, writer Writer, log *logger.Logger) *Pipeline {
	if log == nil {
		log = logger.New()
	}
	return &Pipeline{cfg: cfg, cat: cat, writer: writer, log: log}
}

// Run generates the complete dataset from the given stream, handing each
// collection to the writer as soon as its stage finishes. Stages never
// read written data back, so the same seed and configuration produce the
// same dataset whether or not a writer is attached.
func (p *Pipeline) Run(rng *rand.Rand) (*Dataset, error) {
	ds := &Dataset{}

	p.stageLog("organization").Info("Generating organization")
	ds.Organization = GenerateOrganization(rng, p.cfg)
	if err := p.write("organization", func(w Writer) error { return w.WriteOrganization(&ds.Organization) }); err != nil {
		return nil, err
	}

	p.stageLog("teams").Infof("Generating %d teams", p.cfg.NumTeams)
	ds.Teams = GenerateTeams(rng, p.cfg, p.cat, ds.Organization.ID)
	if err := p.write("teams", func(w Writer) error { return w.WriteTeams(ds.Teams) }); err != nil {
		return nil, err
	}

	p.stageLog("users").Infof("Generating %d users", p.cfg.NumUsers)
	ds.Users = GenerateUsers(rng, p.cfg, p.cat)
	if err := p.write("users", func(w Writer) error { return w.WriteUsers(ds.Users) }); err != nil {
		return nil, err
	}

	p.stageLog("memberships").Info("Generating team memberships")
	ds.Memberships = GenerateTeamMemberships(rng, p.cfg, ds.Teams, ds.Users)
	p.stageLog("memberships").Debugf("Generated %d memberships", len(ds.Memberships))
	if err := p.write("memberships", func(w Writer) error { return w.WriteMemberships(ds.Memberships) }); err != nil {
		return nil, err
	}

	p.stageLog("projects").Infof("Generating %d projects", p.cfg.NumProjects)
	ds.Projects = GenerateProjects(rng, p.cfg, p.cat, ds.Teams, ds.Memberships, ds.Users)
	if err := p.write("projects", func(w Writer) error { return w.WriteProjects(ds.Projects) }); err != nil {
		return nil, err
	}

	p.stageLog("sections").Info("Generating sections")
	ds.Sections = GenerateSections(rng, p.cat, ds.Projects)
	if err := p.write("sections", func(w Writer) error { return w.WriteSections(ds.Sections) }); err != nil {
		return nil, err
	}

	p.stageLog("tasks").Infof("Generating %d tasks", p.cfg.NumTasks)
	ds.Tasks = GenerateTasks(rng, p.cfg, p.cat, ds.Projects, ds.Sections, ds.Memberships, ds.Users)
	if err := p.write("tasks", func(w Writer) error { return w.WriteTasks(ds.Tasks) }); err != nil {
		return nil, err
	}

	p.stageLog("subtasks").Info("Generating subtasks")
	ds.Subtasks = GenerateSubtasks(rng, p.cfg, p.cat, ds.Tasks)
	p.stageLog("subtasks").Debugf("Generated %d subtasks", len(ds.Subtasks))
	if err := p.write("subtasks", func(w Writer) error { return w.WriteTasks(ds.Subtasks) }); err != nil {
		return nil, err
	}

	p.stageLog("comments").Info("Generating comments")
	ds.Comments = GenerateComments(rng, p.cfg, p.cat, ds.AllTasks(), ds.Users)
	p.stageLog("comments").Debugf("Generated %d comments", len(ds.Comments))
	if err := p.write("comments", func(w Writer) error { return w.WriteComments(ds.Comments) }); err != nil {
		return nil, err
	}

	p.stageLog("custom_fields").Info("Generating custom fields")
	ds.FieldDefinitions = GenerateFieldDefinitions(rng, p.cfg, ds.Organization.ID)
	if err := p.write("custom_fields", func(w Writer) error { return w.WriteFieldDefinitions(ds.FieldDefinitions) }); err != nil {
		return nil, err
	}
	ds.FieldValues = GenerateFieldValues(rng, p.cfg, ds.FieldDefinitions, ds.Tasks)
	if err := p.write("custom_fields", func(w Writer) error { return w.WriteFieldValues(ds.FieldValues) }); err != nil {
		return nil, err
	}

	p.stageLog("tags").Info("Generating tags")
	ds.Tags = GenerateTags(rng, p.cfg, ds.Organization.ID)
	if err := p.write("tags", func(w Writer) error { return w.WriteTags(ds.Tags) }); err != nil {
		return nil, err
	}
	ds.TaskTags = GenerateTaskTags(rng, p.cfg, p.cat, ds.Tasks, ds.Tags)
	if err := p.write("tags", func(w Writer) error { return w.WriteTaskTags(ds.TaskTags) }); err != nil {
		return nil, err
	}

	return ds, nil
}

func (p *Pipeline) stageLog(stage string) *logger.Logger {
	return p.log.WithField("stage", stage)
}

func (p *Pipeline) write(stage string, fn func(Writer) error) error {
	if p.writer == nil {
		return nil
	}
	if err := fn(p.writer); err != nil {
		return apperrors.NewStageError(stage, err)
	}
	return nil
}
