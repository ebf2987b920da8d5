package generator

import (
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"workspace-simulator/internal/config"
	"workspace-simulator/internal/database/models"
	"workspace-simulator/internal/namegen"
	"workspace-simulator/internal/sampling"
)

// GenerateFieldDefinitions materializes the configured custom fields for
// the organization. Enum options are stored JSON-encoded the way the
// workspace API persists them; number and text fields carry none.
func GenerateFieldDefinitions(rng *rand.Rand, cfg *config.Config, orgID uuid.UUID) []models.CustomFieldDefinition {
	defs := make([]models.CustomFieldDefinition, 0, len(cfg.CustomFields))
	for _, spec := range cfg.CustomFields {
		var options *string
		if len(spec.Options) > 0 {
			// marshaling a string slice cannot fail
			encoded, _ := json.Marshal(spec.Options)
			s := string(encoded)
			options = &s
		}

		defs = append(defs, models.CustomFieldDefinition{
			ID:             namegen.NewID(rng),
			Name:           spec.Name,
			FieldType:      models.FieldType(spec.FieldType),
			Options:        options,
			OrganizationID: orgID,
		})
	}
	return defs
}

// GenerateFieldValues fills fields on parent tasks at the configured
// coverage rate, field by field. Enum and number fields draw from their
// value distribution; the Sprint text field numbers a sprint. Other text
// fields stay unset.
func GenerateFieldValues(rng *rand.Rand, cfg *config.Config, defs []models.CustomFieldDefinition, tasks []models.Task) []models.CustomFieldValue {
	specs := make(map[string]config.CustomFieldSpec, len(cfg.CustomFields))
	for _, spec := range cfg.CustomFields {
		specs[spec.Name] = spec
	}

	var values []models.CustomFieldValue
	for _, def := range defs {
		spec := specs[def.Name]

		shares := make([]float64, len(spec.Distribution))
		for i, vs := range spec.Distribution {
			shares[i] = vs.Share
		}

		for _, task := range tasks {
			if task.ParentTaskID != nil {
				continue
			}
			if rng.Float64() > cfg.FieldCoverageRate {
				continue
			}

			var value string
			switch {
			case def.FieldType != models.FieldTypeText && len(spec.Distribution) > 0:
				value = spec.Distribution[sampling.WeightedIndex(rng, shares)].Value
			case def.FieldType == models.FieldTypeText && def.Name == "Sprint":
				value = fmt.Sprintf("Sprint %d", sampling.IntBetween(rng, 1, 26))
			default:
				continue
			}

			values = append(values, models.CustomFieldValue{
				ID:      namegen.NewID(rng),
				FieldID: def.ID,
				TaskID:  task.ID,
				Value:   value,
			})
		}
	}

	return values
}
