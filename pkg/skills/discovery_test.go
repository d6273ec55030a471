package skills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSkill(t *testing.T, root, category, name, content string) string {
	t.Helper()
	dir := filepath.Join(root, category, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "SKILL.md"), []byte(content), 0o644))
	return dir
}

func TestLocateDocuments(t *testing.T) {
	tmpDir := t.TempDir()

	writeSkill(t, tmpDir, "marketing", "seo-audit", "---\nname: seo-audit\ndescription: d\n---\nbody\n")
	writeSkill(t, tmpDir, "coding", "api-design", "---\nname: api-design\ndescription: d\n---\nbody\n")

	discovery, err := NewDiscovery()
	require.NoError(t, err)

	docs, err := discovery.LocateDocuments(tmpDir)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	// Sorted path order
	assert.Equal(t, "api-design", docs[0].ExpectedName)
	assert.Equal(t, "coding", docs[0].Category)
	assert.Equal(t, "seo-audit", docs[1].ExpectedName)
	assert.Equal(t, "marketing", docs[1].Category)
	assert.Equal(t, "coding/api-design", docs[0].Identifier())
}

func TestLocateDocumentsSkipsDenylistedDirs(t *testing.T) {
	tmpDir := t.TempDir()

	writeSkill(t, tmpDir, "coding", "real-skill", "---\nname: real-skill\ndescription: d\n---\nbody\n")
	writeSkill(t, tmpDir, "node_modules", "fake-skill", "---\nname: fake-skill\ndescription: d\n---\nbody\n")
	writeSkill(t, tmpDir, ".git", "hidden-skill", "---\nname: hidden-skill\ndescription: d\n---\nbody\n")

	discovery, err := NewDiscovery()
	require.NoError(t, err)

	docs, err := discovery.LocateDocuments(tmpDir)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "real-skill", docs[0].ExpectedName)
}

func TestLocateDocumentsExcludesNames(t *testing.T) {
	tmpDir := t.TempDir()

	writeSkill(t, tmpDir, "coding", "real-skill", "---\nname: real-skill\ndescription: d\n---\nbody\n")
	writeSkill(t, tmpDir, "coding", "template", "---\nname: template\ndescription: d\n---\nbody\n")

	discovery, err := NewDiscovery(WithExcludedNames("template"))
	require.NoError(t, err)

	docs, err := discovery.LocateDocuments(tmpDir)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "real-skill", docs[0].ExpectedName)
}

func TestLocateDocumentsMissingRoot(t *testing.T) {
	discovery, err := NewDiscovery()
	require.NoError(t, err)

	_, err = discovery.LocateDocuments(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}

func TestLocateDocumentsEmptyTree(t *testing.T) {
	discovery, err := NewDiscovery()
	require.NoError(t, err)

	docs, err := discovery.LocateDocuments(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestDiscoverSkills(t *testing.T) {
	tmpDir := t.TempDir()

	skillDir := writeSkill(t, tmpDir, "testing", "test-skill", `---
name: test-skill
description: A test skill for unit testing
---

# Test Skill

## Instructions
This is a test skill.
`)

	discovery, err := NewDiscovery()
	require.NoError(t, err)

	skills, err := discovery.DiscoverSkills(tmpDir)
	require.NoError(t, err)
	require.Len(t, skills, 1)

	testSkill, exists := skills["test-skill"]
	require.True(t, exists)
	assert.Equal(t, "test-skill", testSkill.Name)
	assert.Equal(t, "A test skill for unit testing", testSkill.Description)
	assert.Equal(t, skillDir, testSkill.Directory)
	assert.Contains(t, testSkill.Content, "# Test Skill")
	assert.Contains(t, testSkill.Content, "This is a test skill.")
}

func TestDiscoverSkillsSkipsUnloadable(t *testing.T) {
	tmpDir := t.TempDir()

	writeSkill(t, tmpDir, "testing", "good-skill", "---\nname: good-skill\ndescription: d\n---\nbody\n")
	writeSkill(t, tmpDir, "testing", "no-frontmatter", "# Just content\nNo frontmatter here.\n")
	writeSkill(t, tmpDir, "testing", "no-name", "---\ndescription: missing name\n---\nbody\n")

	discovery, err := NewDiscovery()
	require.NoError(t, err)

	skills, err := discovery.DiscoverSkills(tmpDir)
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Contains(t, skills, "good-skill")
}

func TestListSkillNames(t *testing.T) {
	tmpDir := t.TempDir()

	for _, name := range []string{"gamma", "alpha", "beta"} {
		writeSkill(t, tmpDir, "misc", name, "---\nname: "+name+"\ndescription: Skill "+name+"\n---\nbody\n")
	}

	discovery, err := NewDiscovery()
	require.NoError(t, err)

	names, err := discovery.ListSkillNames(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, names)
}
