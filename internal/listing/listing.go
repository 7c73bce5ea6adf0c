// Package listing reads a directory and renders its entries for the list
// subcommands.
package listing

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Entry kinds.
const (
	KindDir  = "dir"
	KindFile = "file"
	KindLink = "link"
)

// Entry is one item in a listed directory.
type Entry struct {
	Name     string    `json:"name"`
	Kind     string    `json:"kind"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

// Read returns the entries of dir sorted by name.
func Read(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error while finding files in '%s': %w", dir, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		info, err := de.Info()
		if err != nil {
			return nil, fmt.Errorf("could not display file '%s': %w", de.Name(), err)
		}
		entries = append(entries, Entry{
			Name:     de.Name(),
			Kind:     kindOf(info.Mode()),
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
	}
	return entries, nil
}

func kindOf(mode os.FileMode) string {
	switch {
	case mode&os.ModeSymlink != 0:
		return KindLink
	case mode.IsDir():
		return KindDir
	default:
		return KindFile
	}
}

// listingJSON is the --json shape of a listing.
type listingJSON struct {
	Directory string  `json:"directory"`
	Entries   []Entry `json:"entries"`
}

// Render writes entries to w, as JSON when jsonMode is set and as a table
// otherwise.
func Render(w io.Writer, dir string, entries []Entry, jsonMode bool) error {
	if jsonMode {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(listingJSON{Directory: dir, Entries: entries})
	}

	if _, err := fmt.Fprintf(w, "Contents of '%s':\n", dir); err != nil {
		return err
	}
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "  (empty)")
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Kind", "Size", "Modified"})
	for _, e := range entries {
		t.AppendRow(table.Row{e.Name, e.Kind, e.Size, e.Modified.Format("2006-01-02 15:04")})
	}
	t.Render()
	return nil
}
