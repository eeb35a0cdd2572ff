// Copyright Pablo Medrano, 2026. All rights reserved.

package naming

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, folder, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(folder, name), []byte("x"), 0o644))
}

func TestAllocate(t *testing.T) {
	dir := t.TempDir()

	assert.Equal(t, "card.pdf", Allocate(dir, "card", ".pdf"))

	touch(t, dir, "card.pdf")
	assert.Equal(t, "card (1).pdf", Allocate(dir, "card", ".pdf"))

	touch(t, dir, "card (1).pdf")
	touch(t, dir, "card (2).pdf")
	assert.Equal(t, "card (3).pdf", Allocate(dir, "card", ".pdf"))
}

// Allocating and creating N names yields N distinct files.
func TestAllocateRepeated(t *testing.T) {
	dir := t.TempDir()
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		name := Allocate(dir, "card", ".pdf")
		assert.False(t, seen[name], "allocated duplicate %q", name)
		seen[name] = true
		touch(t, dir, name)
	}
	assert.Len(t, seen, 10)
}

func TestRewriteMarker(t *testing.T) {
	tests := []struct {
		name  string
		base  string
		style MarkerStyle
		want  string
	}{
		{
			name:  "plain style",
			base:  "BT14-069-X1_waifu2x_noise3_scale4x",
			style: Plain,
			want:  "BT14-069 1 COPIAS",
		},
		{
			name:  "parenthesized style",
			base:  "BT14-069-X1_waifu2x_noise3_scale4x",
			style: Parenthesized,
			want:  "BT14-069 (1 COPIAS)",
		},
		{
			name:  "no marker is identity",
			base:  "BT14-069",
			style: Parenthesized,
			want:  "BT14-069",
		},
		{
			name:  "already rewritten is identity",
			base:  "BT14-069 (1 COPIAS)",
			style: Parenthesized,
			want:  "BT14-069 (1 COPIAS)",
		},
		{
			name:  "marker mid-string",
			base:  "BT14-069-X3_waifu2x_noise3_scale4x extra",
			style: Parenthesized,
			want:  "BT14-069 (3 COPIAS) extra",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RewriteMarker(tt.base, tt.style)
			assert.Equal(t, tt.want, got)
			// Applying the rewrite to its own output is a no-op.
			assert.Equal(t, got, RewriteMarker(got, tt.style))
		})
	}
}

func TestWrapCopies(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"BT14-069 2 COPIAS.pdf", "BT14-069 (2 COPIAS).pdf"},
		{"BT14-069 2 COPIAS", "BT14-069 (2 COPIAS)"},
		{"BT14-069 (2 COPIAS).pdf", "BT14-069 (2 COPIAS).pdf"},
		{"BT14-069.pdf", "BT14-069.pdf"},
		{"2 COPIAS in the middle.pdf", "2 COPIAS in the middle.pdf"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WrapCopies(tt.in), "WrapCopies(%q)", tt.in)
	}
}

func TestRenameFolder(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "BT14-069-X2_waifu2x_noise3_scale4x.pdf")
	touch(t, dir, "plain.pdf")
	touch(t, dir, "notes.txt")

	var log bytes.Buffer
	n, err := RenameFolder(dir, &log)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.FileExists(t, filepath.Join(dir, "BT14-069 2 COPIAS.pdf"))
	assert.FileExists(t, filepath.Join(dir, "plain.pdf"))
	assert.Contains(t, log.String(), "renamed:")

	// Second run is a no-op: the rewritten name no longer matches.
	n, err = RenameFolder(dir, &log)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestRenameFolderCollision(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "BT14-069-X2_waifu2x_noise3_scale4x.pdf")
	touch(t, dir, "BT14-069 2 COPIAS.pdf")

	var log bytes.Buffer
	n, err := RenameFolder(dir, &log)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.FileExists(t, filepath.Join(dir, "BT14-069 2 COPIAS (1).pdf"))
}

func TestWrapFolder(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "BT14-069 2 COPIAS.pdf")
	touch(t, dir, "BT14-069 (3 COPIAS).pdf")

	var log bytes.Buffer
	n, err := WrapFolder(dir, &log)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.FileExists(t, filepath.Join(dir, "BT14-069 (2 COPIAS).pdf"))
	assert.FileExists(t, filepath.Join(dir, "BT14-069 (3 COPIAS).pdf"))
}
