package topics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTopics = `
[[section]]
header = "Getting Started"

  [[section.topic]]
  name = "Introduction"
  file = "intro.html"

  [[section.topic]]
  name = "  Installation "
  file = "install.html"

[[section]]
header = "Reference"

  [[section.topic]]
  name = "FAQ"
  file = "faq.md"
`

func TestParse_ReadsSectionsInOrder(t *testing.T) {
	tree, err := Parse([]byte(sampleTopics))
	require.NoError(t, err)

	require.Len(t, tree.Sections, 2)
	assert.Equal(t, "Getting Started", tree.Sections[0].Header)
	assert.Equal(t, []Topic{
		{Name: "Introduction", File: "intro.html"},
		{Name: "Installation", File: "install.html"},
	}, tree.Sections[0].Topics)
	assert.Equal(t, "Reference", tree.Sections[1].Header)
	assert.Equal(t, 3, tree.Len())
}

func TestParse_InvalidTOMLFails(t *testing.T) {
	_, err := Parse([]byte(`[[section]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse topics")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		tree Tree
		want []error
	}{
		{
			name: "valid",
			tree: Default(),
		},
		{
			name: "blank header",
			tree: Tree{Sections: []Section{{Header: " ", Topics: []Topic{{Name: "a", File: "a.md"}}}}},
			want: []error{ErrEmptyHeader},
		},
		{
			name: "no topics",
			tree: Tree{Sections: []Section{{Header: "Empty"}}},
			want: []error{ErrEmptySection},
		},
		{
			name: "topic without file",
			tree: Tree{Sections: []Section{{Header: "H", Topics: []Topic{{Name: "a"}}}}},
			want: []error{ErrEmptyTopic},
		},
		{
			name: "several problems at once",
			tree: Tree{Sections: []Section{{Header: ""}, {Header: "H", Topics: []Topic{{File: "x"}}}}},
			want: []error{ErrEmptyHeader, ErrEmptySection, ErrEmptyTopic},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tree.Validate()
			if len(tt.want) == 0 {
				assert.NoError(t, err)
				return
			}
			for _, want := range tt.want {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "topics.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_RejectsEmptySection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topics.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[section]]\nheader = \"Lonely\"\n"), 0o600))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrEmptySection)
}

func TestFirst(t *testing.T) {
	first, ok := Default().First()
	require.True(t, ok)
	assert.Equal(t, "Introduction", first.Name)

	_, ok = Tree{}.First()
	assert.False(t, ok)
	assert.True(t, Tree{}.Empty())
}
