package domain_test

import (
	"testing"

	"github.com/langgate/langgate/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestWalkOptions_Skips(t *testing.T) {
	opts := domain.WalkOptions{HiddenPrefix: ".", IgnoreDirs: []string{"node_modules", "target/"}}

	assert.True(t, opts.Skips(".git"))
	assert.True(t, opts.Skips(".env"))
	assert.True(t, opts.Skips("node_modules"))
	assert.True(t, opts.Skips("target"))
	assert.False(t, opts.Skips("src"))
	assert.False(t, opts.Skips("my_node_modules"))
}

func TestWalkOptions_SkipsPath(t *testing.T) {
	opts := domain.WalkOptions{HiddenPrefix: ".", IgnoreDirs: []string{"node_modules"}}

	assert.True(t, opts.SkipsPath(".github/workflows/ci.yml"))
	assert.True(t, opts.SkipsPath("web/node_modules/x/index.ts"))
	assert.True(t, opts.SkipsPath("web/.env"))
	assert.False(t, opts.SkipsPath("src/main.wat"))
	assert.False(t, opts.SkipsPath("./src/main.wat"))
}

func TestWalkOptions_EmptyHiddenPrefix(t *testing.T) {
	opts := domain.WalkOptions{}
	assert.False(t, opts.SkipsPath(".github/ci.yml"))
}
