package main

import (
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The codegen config must name the generated package by its full import path;
// a bare package name makes the generated files import themselves as
// "ent/migrate" etc., which resolves against the standard library.
func TestCodegenTargetsModulePath(t *testing.T) {
	modBytes, err := os.ReadFile("../../go.mod")
	require.NoError(t, err)
	m := regexp.MustCompile(`(?m)^module\s+(\S+)$`).FindStringSubmatch(string(modBytes))
	require.NotNil(t, m, "go.mod must declare a module path")
	modulePath := m[1]

	genBytes, err := os.ReadFile("generate.go")
	require.NoError(t, err)
	src := string(genBytes)

	assert.Contains(t, src, `Package: "`+modulePath+`/gen/ent"`)
	assert.Contains(t, src, `Schema:  "`+modulePath+`/db/ent/schema"`)
	assert.False(t, strings.Contains(src, `Package: "ent"`))
}
