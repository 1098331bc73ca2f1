package migration

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStatements expects multi-line statements to be joined and comment lines to be skipped.
func TestStatements(t *testing.T) {
	script := `-- contacts of the Samyn family
DROP TABLE IF EXISTS contacts;
CREATE TABLE contacts (id INTEGER PRIMARY KEY, firstname STRING, lastname STRING, email STRING, phone INT(10));
INSERT INTO contacts (firstname, lastname, email, phone)
VALUES ('Joe', 'Samyn', 'js@gmail.com', 2197767123);
`
	statements, err := Statements(strings.NewReader(script))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"DROP TABLE IF EXISTS contacts;",
		"CREATE TABLE contacts (id INTEGER PRIMARY KEY, firstname STRING, lastname STRING, email STRING, phone INT(10));",
		"INSERT INTO contacts (firstname, lastname, email, phone) VALUES ('Joe', 'Samyn', 'js@gmail.com', 2197767123);",
	}, statements)
}

// TestStatementsUnterminated expects a trailing statement without ';' to be kept.
func TestStatementsUnterminated(t *testing.T) {
	statements, err := Statements(strings.NewReader("DELETE FROM contacts;\nSELECT 1\n\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"DELETE FROM contacts;", "SELECT 1"}, statements)
}

// TestStatementsEmpty expects no statements for an empty script.
func TestStatementsEmpty(t *testing.T) {
	statements, err := Statements(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, statements)
}
