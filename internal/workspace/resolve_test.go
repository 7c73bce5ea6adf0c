package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/noteiser/internal/config"
)

func TestResolve(t *testing.T) {
	cfg := &config.Config{Dev: "/d", Note: "/notes", Doc: "/docs"}

	tests := []struct {
		name string
		kind Kind
		ref  Ref
		want string
	}{
		{name: "project with sub-file", kind: Project, ref: Ref{Name: "foo", File: "main"}, want: "/d/Rust/foo/src/main.rs"},
		{name: "project without sub-file", kind: Project, ref: Ref{Name: "foo"}, want: "/d/Rust/foo"},
		{name: "project sub-file keeps extension", kind: Project, ref: Ref{Name: "foo", File: "lib.rs"}, want: "/d/Rust/foo/src/lib.rs"},
		{name: "project sub-file in module dir", kind: Project, ref: Ref{Name: "foo", File: "cli/args"}, want: "/d/Rust/foo/src/cli/args.rs"},
		{name: "note gets default extension", kind: Note, ref: Ref{Name: "todo"}, want: "/notes/todo.txt"},
		{name: "note keeps extension", kind: Note, ref: Ref{Name: "todo.md"}, want: "/notes/todo.md"},
		{name: "note in sub-folder", kind: Note, ref: Ref{Name: "work/todo"}, want: "/notes/work/todo.txt"},
		{name: "latex gets tex", kind: Latex, ref: Ref{Name: "thesis"}, want: "/docs/thesis.tex"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(cfg, tt.kind, tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Config
		kind    Kind
		ref     Ref
		wantErr error
	}{
		{name: "no config", cfg: nil, kind: Note, ref: Ref{Name: "todo"}, wantErr: config.ErrNotFound},
		{name: "notes dir unset", cfg: &config.Config{Dev: "/d"}, kind: Note, ref: Ref{Name: "todo"}, wantErr: ErrBaseUnset},
		{name: "doc dir unset", cfg: &config.Config{Dev: "/d"}, kind: Latex, ref: Ref{Name: "x"}, wantErr: ErrBaseUnset},
		{name: "empty name", cfg: &config.Config{Dev: "/d"}, kind: Project, ref: Ref{Name: " "}, wantErr: ErrEmptyName},
		{name: "parent escape", cfg: &config.Config{Dev: "/d"}, kind: Project, ref: Ref{Name: "../.."}, wantErr: ErrOutsideBase},
		{name: "root itself", cfg: &config.Config{Dev: "/d"}, kind: Project, ref: Ref{Name: "."}, wantErr: ErrOutsideBase},
		{name: "file escapes into sibling project", cfg: &config.Config{Dev: "/d"}, kind: Project, ref: Ref{Name: "foo", File: "../../bar/src/main"}, wantErr: ErrOutsideBase},
		{name: "file escapes its src dir", cfg: &config.Config{Dev: "/d"}, kind: Project, ref: Ref{Name: "foo", File: "../Cargo.toml"}, wantErr: ErrOutsideBase},
		{name: "file is the src dir", cfg: &config.Config{Dev: "/d"}, kind: Project, ref: Ref{Name: "foo", File: "."}, wantErr: ErrOutsideBase},
		{name: "name is the root with file", cfg: &config.Config{Dev: "/d"}, kind: Project, ref: Ref{Name: ".", File: "main"}, wantErr: ErrOutsideBase},
		{name: "note escape", cfg: &config.Config{Dev: "/d", Note: "/notes"}, kind: Note, ref: Ref{Name: "../etc/passwd"}, wantErr: ErrOutsideBase},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.cfg, tt.kind, tt.ref)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRoot(t *testing.T) {
	cfg := &config.Config{Dev: "/d", Note: "/notes"}

	got, err := Root(cfg, Project)
	require.NoError(t, err)
	assert.Equal(t, "/d/Rust", got)

	got, err = Root(cfg, Note)
	require.NoError(t, err)
	assert.Equal(t, "/notes", got)
}

func TestKind_Nested(t *testing.T) {
	assert.True(t, Project.Nested())
	assert.False(t, Note.Nested())
	assert.False(t, Latex.Nested())
}
