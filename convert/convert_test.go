package convert

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/masnyjimmy/specsheet/document"
	"github.com/masnyjimmy/specsheet/sheeterrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userSchemaYAML = `
components:
  schemas:
    User:
      required:
        - id
      properties:
        id:
          type: integer
        name:
          type: string
          enum:
            - alice
            - bob
paths:
  /users:
    get:
      summary: List users
      responses:
        "200":
          description: ok
`

func TestParseMode(t *testing.T) {
	mode, err := ParseMode("schemas")
	require.NoError(t, err)
	assert.Equal(t, ModeSchemas, mode)

	mode, err = ParseMode("operations")
	require.NoError(t, err)
	assert.Equal(t, ModeOperations, mode)

	_, err = ParseMode("rows")
	assert.Error(t, err)
}

func TestConvertSchemaLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	err := Convert([]byte(userSchemaYAML), document.FormatYAML, ModeSchemas, path)
	require.NoError(t, err)

	rows := readCSV(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"schema_name", "property_name", "type", "format", "description", "example", "required", "enum"}, rows[0])
	assert.Equal(t, []string{"User", "id", "integer", "", "", "", "True", ""}, rows[1])
	assert.Equal(t, []string{"User", "name", "string", "", "", "", "False", "alice, bob"}, rows[2])
}

func TestConvertOperationsLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	err := Convert([]byte(userSchemaYAML), document.FormatYAML, ModeOperations, path)
	require.NoError(t, err)

	rows := readCSV(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"path", "method", "summary", "description", "parameters", "responses"}, rows[0])
	assert.Equal(t, []string{"/users", "GET", "List users", "", "", "200"}, rows[1])
}

func TestConvertEmptyDocumentEmitsHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	err := Convert([]byte("{}"), document.FormatJSON, ModeSchemas, path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "schema_name,property_name,type,format,description,example,required,enum\n", string(data))
}

func TestConvertParseFailureProducesNoArtifact(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")

	err := Convert([]byte("{not json"), document.FormatJSON, ModeSchemas, path)
	require.Error(t, err)
	assert.ErrorIs(t, err, sheeterrors.ErrParse)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestConvertInvalidDestination(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.csv")

	err := Convert([]byte(userSchemaYAML), document.FormatYAML, ModeSchemas, path)
	assert.ErrorIs(t, err, sheeterrors.ErrIO)
}

func TestRenderEnumRoundTrip(t *testing.T) {
	artifact, err := Render([]byte(userSchemaYAML), document.FormatYAML, ModeSchemas)
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(artifact))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"alice", "bob"}, strings.Split(rows[2][7], ", "))
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return rows
}
