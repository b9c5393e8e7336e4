package main

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/gbfs/archive"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// entryRecord is one directory entry as printed by ls.
type entryRecord struct {
	Index    int    `json:"index" yaml:"index"`
	Name     string `json:"name" yaml:"name"`
	Offset   uint32 `json:"offset" yaml:"offset"`
	Length   uint32 `json:"length" yaml:"length"`
	Checksum string `json:"checksum,omitempty" yaml:"checksum,omitempty"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
}

func wantArgs(args []string, minArgs, maxArgs int, usage string) error {
	if len(args) < minArgs || (maxArgs >= 0 && len(args) > maxArgs) {
		return fmt.Errorf("%w: gbfs %s", errUsage, usage)
	}

	return nil
}

func runInfo(e *env, args []string) error {
	if err := wantArgs(args, 1, 1, "info <archive>"); err != nil {
		return err
	}

	fsys, err := e.openArchive(args[0])
	if err != nil {
		return err
	}

	hdr := fsys.Header()
	rows := [][2]string{
		{"Archive", args[0]},
		{"Size", strconv.Itoa(len(fsys.Bytes()))},
		{"Total length", strconv.FormatUint(uint64(hdr.TotalLen), 10)},
		{"Directory offset", strconv.Itoa(int(hdr.DirOffset))},
		{"Entries", strconv.Itoa(fsys.Len())},
		{"Store", fmt.Sprintf("%s (capacity %d)", fsys.StoreKind(), fsys.Capacity())},
		{"Fingerprint", fmt.Sprintf("%016x", fsys.Fingerprint())},
	}
	for _, row := range rows {
		fmt.Fprintf(e.stdout, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-17s", row[0]+":")), row[1])
	}

	for _, dup := range fsys.Duplicates() {
		indices := make([]string, len(dup.Indices))
		for i, idx := range dup.Indices {
			indices[i] = strconv.Itoa(idx)
		}
		fmt.Fprintln(e.stdout, warnStyle.Render(
			fmt.Sprintf("duplicate name %q at entries %s; lookups return entry %d",
				dup.Name, strings.Join(indices, ", "), dup.Indices[0])))
	}

	return nil
}

func listRecords(fsys *archive.Filesystem, checksum bool) []entryRecord {
	records := make([]entryRecord, 0, fsys.Len())
	for i, entry := range fsys.Entries() {
		rec := entryRecord{
			Index:  i,
			Name:   entry.Name.String(),
			Offset: entry.DataOffset,
			Length: entry.Length,
		}

		file, err := fsys.FileAt(i)
		switch {
		case err != nil:
			rec.Error = err.Error()
		case checksum:
			rec.Checksum = fmt.Sprintf("%016x", file.Checksum())
		}
		records = append(records, rec)
	}

	return records
}

func runList(e *env, args []string) error {
	if err := wantArgs(args, 1, 1, "ls [--output text|json|yaml] [--checksum] <archive>"); err != nil {
		return err
	}

	fsys, err := e.openArchive(args[0])
	if err != nil {
		return err
	}

	records := listRecords(fsys, e.opts.checksum)

	switch e.opts.output {
	case "json":
		enc := json.NewEncoder(e.stdout)
		enc.SetIndent("", "  ")

		return enc.Encode(records)
	case "yaml":
		enc := yaml.NewEncoder(e.stdout)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}

		return enc.Close()
	case "text":
		headers := []string{"#", "NAME", "OFFSET", "LENGTH"}
		if e.opts.checksum {
			headers = append(headers, "XXH64")
		}

		t := table.New().Border(lipgloss.NormalBorder()).Headers(headers...)
		for _, rec := range records {
			row := []string{
				strconv.Itoa(rec.Index),
				rec.Name,
				strconv.FormatUint(uint64(rec.Offset), 10),
				strconv.FormatUint(uint64(rec.Length), 10),
			}
			if e.opts.checksum {
				row = append(row, rec.Checksum)
			}
			if rec.Error != "" {
				row[3] += " (out of bounds)"
			}
			t.Row(row...)
		}
		fmt.Fprintln(e.stdout, t.Render())

		return nil
	default:
		return fmt.Errorf("%w: unknown output format %q", errUsage, e.opts.output)
	}
}

func runCat(e *env, args []string) error {
	if err := wantArgs(args, 2, 2, "cat <archive> <name>"); err != nil {
		return err
	}

	fsys, err := e.openArchive(args[0])
	if err != nil {
		return err
	}

	data, err := fsys.ReadFile(args[1])
	if err != nil {
		return err
	}

	_, err = e.stdout.Write(data)

	return err
}

// safeName reports whether name can be written as a file directly inside the
// destination directory.
func safeName(name string) bool {
	return fs.ValidPath(name) && name != "." && !strings.ContainsAny(name, `/\:`)
}

func runExtract(e *env, args []string) error {
	if err := wantArgs(args, 1, -1, "extract [--dir DIR] <archive> [names...]"); err != nil {
		return err
	}

	fsys, err := e.openArchive(args[0])
	if err != nil {
		return err
	}

	var files []archive.File
	if names := args[1:]; len(names) > 0 {
		for _, name := range names {
			if !safeName(name) {
				return fmt.Errorf("refusing to extract %q: not a plain file name", name)
			}
			file, err := fsys.Lookup(name)
			if err != nil {
				return err
			}
			files = append(files, file)
		}
	} else {
		seen := make(map[string]bool, fsys.Len())
		for file, err := range fsys.All() {
			if err != nil {
				e.logger.Warn("skipping entry", "error", err)
				continue
			}
			name := file.Name.String()
			if !safeName(name) {
				e.logger.Warn("skipping entry with unsafe name", "index", file.Index, "name", name)
				continue
			}
			if seen[name] {
				e.logger.Warn("skipping shadowed duplicate", "index", file.Index, "name", name)
				continue
			}
			seen[name] = true
			files = append(files, file)
		}
	}

	if err := os.MkdirAll(e.opts.dir, 0o755); err != nil {
		return err
	}

	for _, file := range files {
		path := filepath.Join(e.opts.dir, file.Name.String())
		if err := os.WriteFile(path, file.Data, 0o644); err != nil {
			return err
		}
		e.logger.Debug("extracted", "name", file.Name.String(), "bytes", file.Size(), "path", path)
		fmt.Fprintln(e.stdout, path)
	}

	return nil
}
