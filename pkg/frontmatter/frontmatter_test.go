package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("simple header", func(t *testing.T) {
		content := `---
name: test-skill
description: A test skill
---

# Body

Text.
`
		fm, body, ok := Parse(content)
		require.True(t, ok)

		name, hasName := fm.Get("name")
		require.True(t, hasName)
		assert.Equal(t, "test-skill", name)

		description, hasDescription := fm.Get("description")
		require.True(t, hasDescription)
		assert.Equal(t, "A test skill", description)

		assert.Equal(t, "# Body\n\nText.\n", body)
	})

	t.Run("no opening delimiter", func(t *testing.T) {
		content := "# Just content\nNo header here.\n"
		fm, body, ok := Parse(content)
		assert.False(t, ok)
		assert.Nil(t, fm)
		assert.Equal(t, content, body)
	})

	t.Run("no closing delimiter", func(t *testing.T) {
		content := "---\nname: test\n# never closed\n"
		fm, _, ok := Parse(content)
		assert.False(t, ok)
		assert.Nil(t, fm)
	})

	t.Run("empty content", func(t *testing.T) {
		_, _, ok := Parse("")
		assert.False(t, ok)
	})

	t.Run("fields preserve source order", func(t *testing.T) {
		content := `---
description: d
name: n
---
body
`
		fm, _, ok := Parse(content)
		require.True(t, ok)

		fields := fm.Fields()
		require.Len(t, fields, 2)
		assert.Equal(t, "description", fields[0].Key)
		assert.Equal(t, "name", fields[1].Key)
	})

	t.Run("quoted values are stripped", func(t *testing.T) {
		content := "---\nname: \"quoted-name\"\ndescription: 'single quoted'\n---\nbody\n"
		fm, _, ok := Parse(content)
		require.True(t, ok)

		name, _ := fm.Get("name")
		assert.Equal(t, "quoted-name", name)

		description, _ := fm.Get("description")
		assert.Equal(t, "single quoted", description)
	})

	t.Run("folded multi-line scalar", func(t *testing.T) {
		content := `---
name: test
description:
  First folded line.
  Second folded line.
---
body
`
		fm, _, ok := Parse(content)
		require.True(t, ok)

		description, hasDescription := fm.Get("description")
		require.True(t, hasDescription)
		assert.Equal(t, "First folded line.\nSecond folded line.", description)
	})

	t.Run("folded scalar stops at next field", func(t *testing.T) {
		content := `---
description:
  folded text
name: after
---
body
`
		fm, _, ok := Parse(content)
		require.True(t, ok)

		description, _ := fm.Get("description")
		assert.Equal(t, "folded text", description)

		name, hasName := fm.Get("name")
		require.True(t, hasName)
		assert.Equal(t, "after", name)
	})

	t.Run("non-field lines are ignored", func(t *testing.T) {
		content := "---\nname: test\nNOT A FIELD\ndescription: d\n---\nbody\n"
		fm, _, ok := Parse(content)
		require.True(t, ok)
		assert.Len(t, fm.Fields(), 2)
	})

	t.Run("body leading blank lines trimmed", func(t *testing.T) {
		content := "---\nname: test\n---\n\n\nfirst line\n"
		_, body, ok := Parse(content)
		require.True(t, ok)
		assert.Equal(t, "first line\n", body)
	})
}

func TestKeyLine(t *testing.T) {
	content := `---
description: d
name: n
---
body
`
	fm, _, ok := Parse(content)
	require.True(t, ok)

	assert.Equal(t, 1, fm.KeyLine("description"))
	assert.Equal(t, 2, fm.KeyLine("name"))
	assert.Equal(t, -1, fm.KeyLine("missing"))
}

func TestRaw(t *testing.T) {
	content := "---\nname: test\ndescription: d\n---\nbody\n"
	fm, _, ok := Parse(content)
	require.True(t, ok)
	assert.Equal(t, "name: test\ndescription: d", fm.Raw())
}
