package browse

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/harrison/seqscan/internal/sequence"
)

// Request configures one Browse or BrowseFiles invocation.
type Request struct {
	Directory string
	Filters   []string
	Detection DetectionOptions
	Dir       DirSource
	Stat      StatSource
}

// Browse normalizes inputs, compiles filters, enumerates one directory
// level, and finalizes groups via the sequence package. If Directory
// names a file rather than a directory, its basename is folded into
// the filter list as a literal match and its parent directory is
// scanned instead, so `Browse(Request{Directory: "dir/shot.0001.exr"})`
// resolves that one entry without requiring callers to split the path
// themselves.
func Browse(req Request) ([]sequence.Item, error) {
	dir := req.Dir
	if dir == nil {
		dir = OSDirSource{}
	}

	directory, filterPatterns := resolveDirectory(req.Directory, req.Filters)

	entries, err := dir.ReadDir(directory)
	if err != nil {
		return nil, err
	}

	filters, err := CompileFilters(filterPatterns)
	if err != nil {
		return nil, err
	}

	decOpts := sequence.DecomposeOptions{Negative: req.Detection.has(Negative)}

	gm := sequence.NewGroupMap()
	isDir := make(map[string]bool)
	var items []sequence.Item

	for _, e := range entries {
		if !Match(filters, e.Name) {
			continue
		}
		if req.Detection.has(IgnoreDotFile) && strings.HasPrefix(e.Name, ".") {
			continue
		}

		d, err := sequence.Decompose(e.Name, decOpts)
		if err != nil {
			// A single unparseable numeric run (overflow) demotes the
			// entry to a plain file/folder rather than aborting the scan.
			items = append(items, plainItem(directory, e))
			continue
		}

		if !d.HasNumber() {
			items = append(items, plainItem(directory, e))
			continue
		}

		isDir[e.Name] = e.IsDir
		gm.Insert(e.Name, d)
	}

	seqItems := finalizeGroups(directory, gm, req.Detection, isDir)
	items = append(items, seqItems...)

	sortItems(items)
	return items, nil
}

// resolveDirectory checks whether path names a file rather than a
// directory (e.g. one member of a sequence passed directly on the
// command line). If so, it returns the file's parent directory and
// the filter list with the file's basename appended, so the resulting
// scan matches that one entry (plus whatever the other filters already
// match) rather than all of its siblings. Any stat failure
// (including path not existing, as with mocked DirSources in tests)
// leaves path and filters untouched.
func resolveDirectory(path string, filters []string) (string, []string) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return path, filters
	}

	out := make([]string, 0, len(filters)+1)
	out = append(out, filters...)
	out = append(out, filepath.Base(path))
	return filepath.Dir(path), out
}

// BrowseFiles runs the same grouping pipeline as Browse over a
// pre-supplied list of names, skipping enumeration and filter
// compilation. All names are assumed to share one directory; the
// directory component of each path is stripped and recorded on the
// resulting Items.
func BrowseFiles(directory string, names []string, detection DetectionOptions) []sequence.Item {
	decOpts := sequence.DecomposeOptions{Negative: detection.has(Negative)}

	gm := sequence.NewGroupMap()
	var items []sequence.Item

	for _, name := range names {
		base := filepath.Base(name)
		if detection.has(IgnoreDotFile) && strings.HasPrefix(base, ".") {
			continue
		}

		d, err := sequence.Decompose(base, decOpts)
		if err != nil || !d.HasNumber() {
			items = append(items, sequence.Item{Kind: sequence.ItemFile, Directory: directory, Name: base})
			continue
		}

		gm.Insert(base, d)
	}

	seqItems := finalizeGroups(directory, gm, detection, nil)
	items = append(items, seqItems...)

	sortItems(items)
	return items
}

func plainItem(directory string, e DirEntry) sequence.Item {
	kind := sequence.ItemFile
	if e.IsDir {
		kind = sequence.ItemFolder
	}
	return sequence.Item{Kind: kind, Directory: directory, Name: e.Name}
}

// allDirs reports whether every named entry is a directory. A nil isDir
// map (the file-list variant, which has no filesystem knowledge) never
// qualifies.
func allDirs(names []string, isDir map[string]bool) bool {
	if isDir == nil || len(names) == 0 {
		return false
	}
	for _, n := range names {
		if !isDir[n] {
			return false
		}
	}
	return true
}

// finalizeGroups runs the Disambiguator and Sequence Builder over every
// collected group, demoting single-file candidates back to plain files
// when required and promoting all-directory candidates back to
// individual folder entries rather than a sequence.
func finalizeGroups(directory string, gm *sequence.GroupMap, detection DetectionOptions, isDir map[string]bool) []sequence.Item {
	var items []sequence.Item

	for _, g := range gm.Groups() {
		for _, cand := range sequence.Disambiguate(g) {
			if allDirs(cand.Names(), isDir) {
				for _, name := range cand.Names() {
					items = append(items, sequence.Item{Kind: sequence.ItemFolder, Directory: directory, Name: name})
				}
				continue
			}

			seq := sequence.Build(directory, g.Strings, cand)

			if seq.NbFiles == 1 && detection.has(SequenceNeedsAtLeastTwoFiles) {
				items = append(items, sequence.Item{
					Kind:      sequence.ItemFile,
					Directory: directory,
					Name:      seq.FrameName(seq.FirstTime),
				})
				continue
			}

			items = append(items, sequence.Item{Kind: sequence.ItemSequence, Directory: directory, Seq: seq})
		}
	}

	return items
}

// sortItems orders Items deterministically: by prefix (or name for
// files/folders), then by first frame time for sequences.
func sortItems(items []sequence.Item) {
	key := func(it sequence.Item) (string, int64) {
		switch it.Kind {
		case sequence.ItemSequence:
			return it.Seq.Prefix, it.Seq.FirstTime
		default:
			return it.Name, 0
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		ki, ti := key(items[i])
		kj, tj := key(items[j])
		if ki != kj {
			return ki < kj
		}
		return ti < tj
	})
}
