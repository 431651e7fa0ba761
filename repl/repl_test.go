package repl

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/monkeymix/object"
	"github.com/stretchr/testify/assert"
)

func TestExecuteWithRecovery_PrintsResult(t *testing.T) {
	var buf bytes.Buffer
	r := New("monkeymix", "test", ">> ")
	env := object.NewEnvironment()

	r.executeWithRecovery(&buf, "1 + 2", env)
	assert.Contains(t, buf.String(), "3")
}

func TestExecuteWithRecovery_PersistsEnvironmentAcrossCalls(t *testing.T) {
	var buf bytes.Buffer
	r := New("monkeymix", "test", ">> ")
	env := object.NewEnvironment()

	r.executeWithRecovery(&buf, "let x = 5;", env)
	buf.Reset()
	r.executeWithRecovery(&buf, "x * 2", env)
	assert.Contains(t, buf.String(), "10")
}

func TestExecuteWithRecovery_ReportsParserErrors(t *testing.T) {
	var buf bytes.Buffer
	r := New("monkeymix", "test", ">> ")
	env := object.NewEnvironment()

	r.executeWithRecovery(&buf, "let = 5;", env)
	assert.Contains(t, buf.String(), "parser errors:")
}

func TestExecuteWithRecovery_ReportsRuntimeErrors(t *testing.T) {
	var buf bytes.Buffer
	r := New("monkeymix", "test", ">> ")
	env := object.NewEnvironment()

	r.executeWithRecovery(&buf, "5 + true;", env)
	assert.Contains(t, buf.String(), "type mismatch: INTEGER + BOOLEAN")
}
