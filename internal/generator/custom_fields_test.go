package generator

import (
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workspace-simulator/internal/database/models"
)

func TestGenerateFieldDefinitions(t *testing.T) {
	cfg := testConfig(t)
	orgID := uuid.New()

	defs := GenerateFieldDefinitions(newRNG(53), cfg, orgID)

	require.Len(t, defs, len(cfg.CustomFields))

	byName := make(map[string]models.CustomFieldDefinition, len(defs))
	for _, def := range defs {
		assert.Equal(t, orgID, def.OrganizationID)
		byName[def.Name] = def
	}

	t.Run("enum fields carry their options JSON encoded", func(t *testing.T) {
		priority, ok := byName["Priority"]
		require.True(t, ok)
		require.Equal(t, models.FieldTypeEnum, priority.FieldType)
		require.NotNil(t, priority.Options)

		var options []string
		require.NoError(t, json.Unmarshal([]byte(*priority.Options), &options))
		assert.Equal(t, []string{"P0 - Critical", "P1 - High", "P2 - Medium", "P3 - Low"}, options)
	})

	t.Run("number and text fields carry no options", func(t *testing.T) {
		require.Contains(t, byName, "Story Points")
		assert.Nil(t, byName["Story Points"].Options)
		require.Contains(t, byName, "Sprint")
		assert.Nil(t, byName["Sprint"].Options)
	})
}

func TestGenerateFieldValues(t *testing.T) {
	cfg := testConfig(t)
	cfg.FieldCoverageRate = 1

	rng := newRNG(53)
	defs := GenerateFieldDefinitions(rng, cfg, uuid.New())

	parentID := uuid.New()
	tasks := []models.Task{
		{ID: uuid.New(), Name: "Design API endpoints"},
		{ID: uuid.New(), Name: "Research options", ParentTaskID: &parentID},
	}

	values := GenerateFieldValues(rng, cfg, defs, tasks)

	defByID := make(map[uuid.UUID]models.CustomFieldDefinition, len(defs))
	for _, def := range defs {
		defByID[def.ID] = def
	}

	t.Run("full coverage fills every field on every parent task", func(t *testing.T) {
		// One value per definition for the single parent task.
		require.Len(t, values, len(defs))
		for _, v := range values {
			assert.Equal(t, tasks[0].ID, v.TaskID)
		}
	})

	t.Run("values respect the field type", func(t *testing.T) {
		for _, v := range values {
			def := defByID[v.FieldID]
			switch def.FieldType {
			case models.FieldTypeEnum:
				require.NotNil(t, def.Options)
				var options []string
				require.NoError(t, json.Unmarshal([]byte(*def.Options), &options))
				assert.Contains(t, options, v.Value)
			case models.FieldTypeNumber:
				_, err := strconv.ParseFloat(v.Value, 64)
				assert.NoError(t, err, "field %q value %q", def.Name, v.Value)
			case models.FieldTypeText:
				assert.True(t, strings.HasPrefix(v.Value, "Sprint "), "unexpected text value %q", v.Value)
			}
		}
	})

	t.Run("zero coverage produces nothing", func(t *testing.T) {
		sparse := testConfig(t)
		sparse.FieldCoverageRate = 0
		assert.Empty(t, GenerateFieldValues(newRNG(53), sparse, defs, tasks))
	})
}
