package generator

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"workspace-simulator/internal/config"
	"workspace-simulator/internal/database/models"
	"workspace-simulator/internal/timegen"
)

// ValidateDataset sweeps a finished dataset for invariant violations and
// describes each one found. A correct pipeline returns an empty slice;
// the sweep exists to catch regressions before a run is written out.
func ValidateDataset(cfg *config.Config, ds *Dataset) []string {
	var issues []string
	report := func(format string, args ...any) {
		issues = append(issues, fmt.Sprintf(format, args...))
	}

	org := ds.Organization

	if len(ds.Users) != cfg.NumUsers {
		report("expected %d users, got %d", cfg.NumUsers, len(ds.Users))
	}
	if len(ds.Teams) != cfg.NumTeams {
		report("expected %d teams, got %d", cfg.NumTeams, len(ds.Teams))
	}
	if len(ds.Projects) > cfg.NumProjects {
		report("expected at most %d projects, got %d", cfg.NumProjects, len(ds.Projects))
	}
	if len(ds.Tasks) != cfg.NumTasks {
		report("expected %d tasks, got %d", cfg.NumTasks, len(ds.Tasks))
	}

	teamByID := make(map[uuid.UUID]models.Team, len(ds.Teams))
	for _, t := range ds.Teams {
		if t.OrganizationID != org.ID {
			report("team %q belongs to an unknown organization", t.Name)
		}
		if t.CreatedAt.Before(org.CreatedAt) {
			report("team %q created before the organization", t.Name)
		}
		teamByID[t.ID] = t
	}

	userByID := make(map[uuid.UUID]models.User, len(ds.Users))
	emails := make(map[string]struct{}, len(ds.Users))
	for _, u := range ds.Users {
		if _, dup := emails[u.Email]; dup {
			report("duplicate email %q", u.Email)
		}
		emails[u.Email] = struct{}{}
		if u.CreatedAt.Before(org.CreatedAt) {
			report("user %q hired before the organization existed", u.Email)
		}
		if !u.Role.IsValid() {
			report("user %q has invalid role %q", u.Email, u.Role)
		}
		userByID[u.ID] = u
	}

	validateMemberships(cfg, ds, teamByID, userByID, report)
	projectByID := validateProjects(cfg, ds, teamByID, userByID, report)
	sectionByID := validateSections(ds, projectByID, report)
	taskByID := validateTasks(cfg, ds, projectByID, sectionByID, userByID, report)
	validateSubtasks(cfg, ds, taskByID, report)
	validateComments(cfg, ds, taskByID, userByID, report)
	validateFields(cfg, ds, taskByID, report)
	validateTags(cfg, ds, taskByID, report)

	return issues
}

func validateMemberships(cfg *config.Config, ds *Dataset, teamByID map[uuid.UUID]models.Team, userByID map[uuid.UUID]models.User, report func(string, ...any)) {
	type pair struct{ team, user uuid.UUID }
	seen := make(map[pair]struct{}, len(ds.Memberships))
	perUser := make(map[uuid.UUID]int, len(userByID))
	members := make(map[uuid.UUID]int, len(teamByID))
	leads := make(map[uuid.UUID]int, len(teamByID))

	for _, m := range ds.Memberships {
		team, teamOK := teamByID[m.TeamID]
		user, userOK := userByID[m.UserID]
		if !teamOK || !userOK {
			report("membership %s references a missing team or user", m.ID)
			continue
		}

		key := pair{m.TeamID, m.UserID}
		if _, dup := seen[key]; dup {
			report("user %q joined team %q twice", user.Email, team.Name)
		}
		seen[key] = struct{}{}
		perUser[m.UserID]++
		members[m.TeamID]++
		if m.Role == models.MembershipRoleLead {
			leads[m.TeamID]++
		}

		earliest := team.CreatedAt
		if user.CreatedAt.After(earliest) {
			earliest = user.CreatedAt
		}
		if m.JoinedAt.Before(earliest) {
			report("user %q joined team %q before both existed", user.Email, team.Name)
		}
		if m.JoinedAt.After(cfg.SimulationEndTime) {
			report("user %q joined team %q after the simulation end", user.Email, team.Name)
		}
	}

	for _, u := range ds.Users {
		switch {
		case perUser[u.ID] == 0:
			report("user %q belongs to no team", u.Email)
		case perUser[u.ID] > 3:
			report("user %q belongs to %d teams", u.Email, perUser[u.ID])
		}
	}
	// Only staffed teams need a lead; a team no user ever joined has
	// nobody to promote.
	for _, t := range ds.Teams {
		if members[t.ID] > 0 && leads[t.ID] == 0 {
			report("team %q has no lead", t.Name)
		}
	}
}

func validateProjects(cfg *config.Config, ds *Dataset, teamByID map[uuid.UUID]models.Team, userByID map[uuid.UUID]models.User, report func(string, ...any)) map[uuid.UUID]models.Project {
	projectByID := make(map[uuid.UUID]models.Project, len(ds.Projects))
	names := make(map[string]struct{}, len(ds.Projects))

	for _, p := range ds.Projects {
		if _, dup := names[p.Name]; dup {
			report("duplicate project name %q", p.Name)
		}
		names[p.Name] = struct{}{}

		team, ok := teamByID[p.TeamID]
		if !ok {
			report("project %q belongs to a missing team", p.Name)
		} else if p.CreatedAt.Before(team.CreatedAt) {
			report("project %q created before its team", p.Name)
		}
		if p.CreatedAt.After(cfg.SimulationEndTime) {
			report("project %q created after the simulation end", p.Name)
		}
		if _, ok := userByID[p.OwnerID]; !ok {
			report("project %q has a missing owner", p.Name)
		}
		if !p.Status.IsValid() {
			report("project %q has invalid status %q", p.Name, p.Status)
		}
		if p.DueDate != nil && !p.DueDate.After(timegen.DateOf(p.CreatedAt)) {
			report("project %q due on or before its creation date", p.Name)
		}

		projectByID[p.ID] = p
	}

	return projectByID
}

func validateSections(ds *Dataset, projectByID map[uuid.UUID]models.Project, report func(string, ...any)) map[uuid.UUID]models.Section {
	sectionByID := make(map[uuid.UUID]models.Section, len(ds.Sections))
	positions := make(map[uuid.UUID][]int, len(projectByID))

	for _, s := range ds.Sections {
		if _, ok := projectByID[s.ProjectID]; !ok {
			report("section %q belongs to a missing project", s.Name)
			continue
		}
		sectionByID[s.ID] = s
		positions[s.ProjectID] = append(positions[s.ProjectID], s.Position)
	}

	for _, p := range ds.Projects {
		seq := positions[p.ID]
		if len(seq) == 0 {
			report("project %q has no sections", p.Name)
			continue
		}
		for i, pos := range seq {
			if pos != i {
				report("project %q has a gap in section positions", p.Name)
				break
			}
		}
	}

	return sectionByID
}

func validateTasks(cfg *config.Config, ds *Dataset, projectByID map[uuid.UUID]models.Project, sectionByID map[uuid.UUID]models.Section, userByID map[uuid.UUID]models.User, report func(string, ...any)) map[uuid.UUID]models.Task {
	taskByID := make(map[uuid.UUID]models.Task, len(ds.Tasks)+len(ds.Subtasks))

	for _, t := range ds.AllTasks() {
		project, projectOK := projectByID[t.ProjectID]
		if !projectOK {
			report("task %q belongs to a missing project", t.Name)
		}
		section, sectionOK := sectionByID[t.SectionID]
		if !sectionOK {
			report("task %q sits in a missing section", t.Name)
		} else if section.ProjectID != t.ProjectID {
			report("task %q sits in a section of another project", t.Name)
		}

		if projectOK && t.CreatedAt.Before(project.CreatedAt) {
			report("task %q created before its project", t.Name)
		}
		if t.CreatedAt.After(cfg.SimulationEndTime) {
			report("task %q created after the simulation end", t.Name)
		}

		if t.Completed {
			switch {
			case t.CompletedAt == nil:
				report("completed task %q has no completion time", t.Name)
			case !t.CompletedAt.After(t.CreatedAt):
				report("task %q completed on or before its creation", t.Name)
			case t.CompletedAt.After(cfg.SimulationEndTime):
				report("task %q completed after the simulation end", t.Name)
			}
		} else if t.CompletedAt != nil {
			report("open task %q carries a completion time", t.Name)
		}

		// Subtasks inherit the parent's due date, which may precede their
		// own creation.
		if t.ParentTaskID == nil && t.DueDate != nil && !t.DueDate.After(timegen.DateOf(t.CreatedAt)) {
			report("task %q due on or before its creation date", t.Name)
		}
		if t.AssigneeID != nil {
			if _, ok := userByID[*t.AssigneeID]; !ok {
				report("task %q assigned to a missing user", t.Name)
			}
		}
		if _, ok := userByID[t.CreatedByID]; !ok {
			report("task %q created by a missing user", t.Name)
		}

		taskByID[t.ID] = t
	}

	return taskByID
}

func validateSubtasks(cfg *config.Config, ds *Dataset, taskByID map[uuid.UUID]models.Task, report func(string, ...any)) {
	for _, s := range ds.Subtasks {
		if s.ParentTaskID == nil {
			report("subtask %q has no parent", s.Name)
			continue
		}
		parent, ok := taskByID[*s.ParentTaskID]
		if !ok {
			report("subtask %q references a missing parent", s.Name)
			continue
		}
		if parent.ParentTaskID != nil {
			report("subtask %q nests below another subtask", s.Name)
		}
		if s.CreatedAt.Before(parent.CreatedAt) {
			report("subtask %q created before its parent", s.Name)
		}
		if s.ProjectID != parent.ProjectID || s.SectionID != parent.SectionID {
			report("subtask %q left its parent's board", s.Name)
		}
		if s.Completed && parent.Completed && parent.CompletedAt != nil && s.CompletedAt != nil &&
			!s.CompletedAt.Before(*parent.CompletedAt) {
			report("subtask %q finished after its completed parent", s.Name)
		}
	}
}

func validateComments(cfg *config.Config, ds *Dataset, taskByID map[uuid.UUID]models.Task, userByID map[uuid.UUID]models.User, report func(string, ...any)) {
	lastPerTask := make(map[uuid.UUID]models.Comment, len(taskByID))

	for _, c := range ds.Comments {
		task, ok := taskByID[c.TaskID]
		if !ok {
			report("comment %s attached to a missing task", c.ID)
			continue
		}
		if _, ok := userByID[c.AuthorID]; !ok {
			report("comment %s written by a missing user", c.ID)
		}

		taskEnd := cfg.SimulationEndTime
		if task.CompletedAt != nil {
			taskEnd = *task.CompletedAt
		}
		if c.CreatedAt.Before(task.CreatedAt) || c.CreatedAt.After(taskEnd) {
			report("comment %s falls outside the window of task %q", c.ID, task.Name)
		}

		if prev, seen := lastPerTask[c.TaskID]; seen && c.CreatedAt.Before(prev.CreatedAt) {
			report("comments on task %q are out of order", task.Name)
		}
		lastPerTask[c.TaskID] = c
	}
}

func validateFields(cfg *config.Config, ds *Dataset, taskByID map[uuid.UUID]models.Task, report func(string, ...any)) {
	if len(ds.FieldDefinitions) != len(cfg.CustomFields) {
		report("expected %d field definitions, got %d", len(cfg.CustomFields), len(ds.FieldDefinitions))
	}

	defByID := make(map[uuid.UUID]models.CustomFieldDefinition, len(ds.FieldDefinitions))
	optionsByID := make(map[uuid.UUID]map[string]struct{}, len(ds.FieldDefinitions))
	for _, def := range ds.FieldDefinitions {
		if def.FieldType == models.FieldTypeEnum && def.Options == nil {
			report("enum field %q has no options", def.Name)
		}
		if def.FieldType != models.FieldTypeEnum && def.Options != nil {
			report("field %q carries options but is not an enum", def.Name)
		}
		if def.Options != nil {
			var opts []string
			if err := json.Unmarshal([]byte(*def.Options), &opts); err != nil {
				report("field %q has unparseable options", def.Name)
			}
			allowed := make(map[string]struct{}, len(opts))
			for _, o := range opts {
				allowed[o] = struct{}{}
			}
			optionsByID[def.ID] = allowed
		}
		defByID[def.ID] = def
	}

	type pair struct{ field, task uuid.UUID }
	seen := make(map[pair]struct{}, len(ds.FieldValues))
	for _, v := range ds.FieldValues {
		def, defOK := defByID[v.FieldID]
		if !defOK {
			report("field value %s references a missing definition", v.ID)
			continue
		}
		task, taskOK := taskByID[v.TaskID]
		if !taskOK {
			report("field value %s references a missing task", v.ID)
			continue
		}
		if task.ParentTaskID != nil {
			report("subtask %q carries a value for field %q", task.Name, def.Name)
		}

		key := pair{v.FieldID, v.TaskID}
		if _, dup := seen[key]; dup {
			report("task %q has two values for field %q", task.Name, def.Name)
		}
		seen[key] = struct{}{}

		switch def.FieldType {
		case models.FieldTypeEnum:
			if _, ok := optionsByID[def.ID][v.Value]; !ok {
				report("task %q has value %q outside field %q options", task.Name, v.Value, def.Name)
			}
		case models.FieldTypeNumber:
			if _, err := strconv.ParseFloat(v.Value, 64); err != nil {
				report("task %q has non-numeric value %q for field %q", task.Name, v.Value, def.Name)
			}
		case models.FieldTypeText:
			if v.Value == "" {
				report("task %q has an empty value for field %q", task.Name, def.Name)
			}
		}
	}
}

func validateTags(cfg *config.Config, ds *Dataset, taskByID map[uuid.UUID]models.Task, report func(string, ...any)) {
	if len(ds.Tags) != len(cfg.Tags) {
		report("expected %d tags, got %d", len(cfg.Tags), len(ds.Tags))
	}

	tagByID := make(map[uuid.UUID]models.Tag, len(ds.Tags))
	for _, t := range ds.Tags {
		tagByID[t.ID] = t
	}

	type pair struct{ task, tag uuid.UUID }
	seen := make(map[pair]struct{}, len(ds.TaskTags))
	for _, tt := range ds.TaskTags {
		task, taskOK := taskByID[tt.TaskID]
		if !taskOK {
			report("task tag references a missing task")
			continue
		}
		if _, tagOK := tagByID[tt.TagID]; !tagOK {
			report("task %q carries a missing tag", task.Name)
		}
		if task.ParentTaskID != nil {
			report("subtask %q carries a tag", task.Name)
		}

		key := pair{tt.TaskID, tt.TagID}
		if _, dup := seen[key]; dup {
			report("task %q carries the same tag twice", task.Name)
		}
		seen[key] = struct{}{}
	}
}
