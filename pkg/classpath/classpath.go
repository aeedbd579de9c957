package classpath

import (
	"os"
	"strings"

	"github.com/arthur-debert/nxj/pkg/types"
)

// Layout holds the separators used when building paths and classpaths
type Layout struct {
	// Separator ends every directory segment (os.PathSeparator by default)
	Separator string

	// ListSeparator joins classpath entries (os.PathListSeparator by default)
	ListSeparator string
}

// DefaultLayout returns the separators of the running platform
func DefaultLayout() Layout {
	return Layout{
		Separator:     string(os.PathSeparator),
		ListSeparator: string(os.PathListSeparator),
	}
}

// Resolve returns the location of dep inside the repository rooted at root,
// using the platform separators.
func Resolve(root string, dep types.Dependency) string {
	return DefaultLayout().Resolve(root, dep)
}

// Build returns the compile classpath for deps using the platform separators.
func Build(root string, deps []types.Dependency) string {
	return DefaultLayout().Build(root, deps)
}

// Entries returns the resolved path of every compile scope dependency, in order.
func Entries(root string, deps []types.Dependency) []string {
	return DefaultLayout().Entries(root, deps)
}

// Join joins classpath fragments with the platform list separator, skipping
// empty fragments so the result never starts or ends with a separator.
func Join(fragments ...string) string {
	return DefaultLayout().Join(fragments...)
}

// Resolve builds the artifact path for dep below root.
func (l Layout) Resolve(root string, dep types.Dependency) string {
	var path strings.Builder
	l.appendSegment(&path, root)
	for _, part := range strings.Split(dep.GroupID, ".") {
		l.appendSegment(&path, part)
	}
	l.appendSegment(&path, dep.ArtifactID)
	l.appendSegment(&path, dep.Version)
	appendArtifactFilename(&path, dep)
	return path.String()
}

// Build resolves every compile scope dependency and joins the results with
// the list separator. Input order is kept and duplicates are not removed.
// A list without compile scope dependencies yields the empty string.
func (l Layout) Build(root string, deps []types.Dependency) string {
	var path strings.Builder
	for _, dep := range deps {
		if !dep.IsCompileScope() {
			continue
		}
		path.WriteString(l.Resolve(root, dep))
		path.WriteString(l.ListSeparator)
	}
	return strings.TrimSuffix(path.String(), l.ListSeparator)
}

// Entries is Build without the final join.
func (l Layout) Entries(root string, deps []types.Dependency) []string {
	entries := make([]string, 0, len(deps))
	for _, dep := range deps {
		if dep.IsCompileScope() {
			entries = append(entries, l.Resolve(root, dep))
		}
	}
	return entries
}

// Join joins the non-empty fragments with the list separator.
func (l Layout) Join(fragments ...string) string {
	kept := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if f != "" {
			kept = append(kept, f)
		}
	}
	return strings.Join(kept, l.ListSeparator)
}

// appendSegment writes a directory segment followed by exactly one separator.
func (l Layout) appendSegment(path *strings.Builder, segment string) {
	path.WriteString(segment)
	if !strings.HasSuffix(segment, l.Separator) {
		path.WriteString(l.Separator)
	}
}

func appendArtifactFilename(path *strings.Builder, dep types.Dependency) {
	path.WriteString(dep.ArtifactID)
	path.WriteByte('-')
	path.WriteString(dep.Version)
	path.WriteByte('.')
	path.WriteString(dep.ArtifactType())
}
