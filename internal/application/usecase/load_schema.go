package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/logging"
)

// LoadSchemaUseCase fetches and decodes the navigation document.
type LoadSchemaUseCase struct {
	source port.SchemaSource
}

// NewLoadSchemaUseCase creates a new LoadSchemaUseCase.
func NewLoadSchemaUseCase(source port.SchemaSource) *LoadSchemaUseCase {
	return &LoadSchemaUseCase{source: source}
}

// Execute always returns a usable schema. On fetch failure the schema is
// empty and the error is returned for the caller to log; the shell then
// shows its "no tabs" state.
func (uc *LoadSchemaUseCase) Execute(ctx context.Context) (*entity.Schema, error) {
	log := logging.FromContext(ctx)

	raw, err := uc.source.Fetch(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch schema")
		return &entity.Schema{}, fmt.Errorf("load schema: %w", err)
	}

	schema := entity.DecodeSchema(raw)
	log.Info().Int("tabs", len(schema.Tabs)).Msg("schema loaded")
	return &schema, nil
}
