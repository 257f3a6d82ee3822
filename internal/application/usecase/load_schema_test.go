package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/application/port/mocks"
)

func TestLoadSchema_DecodesDocument(t *testing.T) {
	source := mocks.NewMockSchemaSource(t)
	source.EXPECT().Fetch(mock.Anything).Return(map[string]any{
		"tabs": []any{map[string]any{"name": "Home"}},
	}, nil).Once()

	schema, err := NewLoadSchemaUseCase(source).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, schema.Tabs, 1)
	assert.Equal(t, "Home", schema.Tabs[0].Name)
}

func TestLoadSchema_FetchFailureYieldsEmptySchema(t *testing.T) {
	source := mocks.NewMockSchemaSource(t)
	source.EXPECT().Fetch(mock.Anything).Return(nil, fmt.Errorf("%w: connection refused", port.ErrSchemaFetch)).Once()

	schema, err := NewLoadSchemaUseCase(source).Execute(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, port.ErrSchemaFetch))
	require.NotNil(t, schema)
	assert.False(t, schema.HasTabs())
}

func TestLoadSchema_MissingTabsIsNotAnError(t *testing.T) {
	source := mocks.NewMockSchemaSource(t)
	source.EXPECT().Fetch(mock.Anything).Return(map[string]any{"config": map[string]any{}}, nil).Once()

	schema, err := NewLoadSchemaUseCase(source).Execute(context.Background())
	require.NoError(t, err)
	assert.False(t, schema.HasTabs())
}
