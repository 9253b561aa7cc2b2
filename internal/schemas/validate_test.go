package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigSchema_IsValidJSON(t *testing.T) {
	var v map[string]any
	require.NoError(t, json.Unmarshal(ConfigSchema(), &v))
	assert.Equal(t, "object", v["type"])
}

func TestValidateConfig_Valid(t *testing.T) {
	doc := `{
		"listings_csv": "data/magang_opportunities.csv",
		"texts_csv": "data/cleaned_data.csv",
		"port": 8080,
		"default_n": 10,
		"verbose": true
	}`

	assert.NoError(t, ValidateConfig([]byte(doc)))
}

func TestValidateConfig_Empty(t *testing.T) {
	assert.NoError(t, ValidateConfig([]byte(`{}`)))
}

func TestValidateConfig_WrongType(t *testing.T) {
	err := ValidateConfig([]byte(`{"port": "eighty"}`))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	require.Len(t, validationErr.Errors, 1)
	assert.Equal(t, "port", validationErr.Errors[0].Field)
}

func TestValidateConfig_UnknownField(t *testing.T) {
	err := ValidateConfig([]byte(`{"listing_csv": "typo.csv"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidateConfig_OutOfRange(t *testing.T) {
	err := ValidateConfig([]byte(`{"port": 70000, "default_n": -1}`))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Len(t, validationErr.Errors, 2)
}

func TestValidateConfig_BadDatabaseURL(t *testing.T) {
	err := ValidateConfig([]byte(`{"database_url": "mysql://localhost/db"}`))
	assert.Error(t, err)
}

func TestValidateConfig_MalformedDocument(t *testing.T) {
	err := ValidateConfig([]byte(`{ invalid json }`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}
