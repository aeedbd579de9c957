// Package pom reads dependency lists from Maven pom.xml files.
//
// Only what nxj needs is read: the project coordinates, the parent's
// coordinates, <properties>, <dependencyManagement> and <dependencies>.
// Maven's defaults are applied (type jar, scope compile) and ${...}
// references are interpolated.
package pom

import (
	"os"
	"regexp"
	"strings"

	"github.com/beevik/etree"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/nxj/pkg/errors"
	"github.com/arthur-debert/nxj/pkg/logging"
	"github.com/arthur-debert/nxj/pkg/types"
)

// Project is the subset of a pom.xml nxj uses
type Project struct {
	GroupID    string
	ArtifactID string
	Version    string
	Packaging  string

	Properties   map[string]string
	Dependencies []types.Dependency
}

// Load reads and parses the pom.xml at path
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrFileNotFound, "pom file %s does not exist", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrPOMParse, "failed to read pom file %s", path).
			WithDetail("path", path)
	}

	project, err := Parse(data)
	if err != nil {
		if nxjErr, ok := err.(*errors.NxjError); ok {
			nxjErr.WithDetail("path", path)
		}
		return nil, err
	}
	return project, nil
}

// Parse parses pom.xml content
func Parse(data []byte) (*Project, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrPOMParse, "malformed pom.xml")
	}
	root := doc.SelectElement("project")
	if root == nil {
		return nil, errors.New(errors.ErrPOMParse, "pom.xml has no <project> element")
	}

	r := &reader{
		logger: logging.GetLogger("pom"),
		props:  map[string]string{},
	}
	return r.read(root), nil
}

type reader struct {
	logger zerolog.Logger
	props  map[string]string
}

func (r *reader) read(root *etree.Element) *Project {
	p := &Project{
		GroupID:    childText(root, "groupId"),
		ArtifactID: childText(root, "artifactId"),
		Version:    childText(root, "version"),
		Packaging:  childText(root, "packaging"),
		Properties: map[string]string{},
	}
	if p.Packaging == "" {
		p.Packaging = "jar"
	}

	// A child module inherits coordinates it does not declare
	if parent := root.SelectElement("parent"); parent != nil {
		parentGroup := childText(parent, "groupId")
		parentVersion := childText(parent, "version")
		if p.GroupID == "" {
			p.GroupID = parentGroup
		}
		if p.Version == "" {
			p.Version = parentVersion
		}
		r.props["project.parent.groupId"] = parentGroup
		r.props["project.parent.version"] = parentVersion
		r.props["project.parent.artifactId"] = childText(parent, "artifactId")
	}

	if props := root.SelectElement("properties"); props != nil {
		for _, el := range props.ChildElements() {
			value := strings.TrimSpace(el.Text())
			p.Properties[el.Tag] = value
			r.props[el.Tag] = value
		}
	}
	for _, prefix := range []string{"project.", "pom.", ""} {
		for key, value := range map[string]string{
			"groupId":    p.GroupID,
			"artifactId": p.ArtifactID,
			"version":    p.Version,
		} {
			// bare names are legacy aliases; a declared property wins
			if _, declared := p.Properties[key]; prefix == "" && declared {
				continue
			}
			r.props[prefix+key] = value
		}
	}
	// project coordinates may themselves use properties
	p.GroupID = r.interpolate(p.GroupID)
	p.Version = r.interpolate(p.Version)

	managed := map[string]types.Dependency{}
	if dm := root.SelectElement("dependencyManagement"); dm != nil {
		for _, dep := range r.dependencies(dm.SelectElement("dependencies")) {
			managed[managementKey(dep)] = dep
		}
	}

	for _, dep := range r.dependencies(root.SelectElement("dependencies")) {
		if m, ok := managed[managementKey(dep)]; ok {
			if dep.Version == "" {
				dep.Version = m.Version
			}
			if dep.Scope == "" {
				dep.Scope = m.Scope
			}
		}
		if dep.Scope == "" {
			dep.Scope = types.ScopeCompile
		}
		if dep.Version == "" {
			r.logger.Warn().Str("dependency", dep.Coordinates()).Msg("Dependency has no version")
		}
		p.Dependencies = append(p.Dependencies, dep)
	}
	return p
}

// dependencies reads the <dependency> children of el, with type defaulted and
// scope left empty so management can still fill it in.
func (r *reader) dependencies(el *etree.Element) []types.Dependency {
	if el == nil {
		return nil
	}
	var deps []types.Dependency
	for _, d := range el.SelectElements("dependency") {
		dep := types.Dependency{
			GroupID:    r.interpolate(childText(d, "groupId")),
			ArtifactID: r.interpolate(childText(d, "artifactId")),
			Version:    r.interpolate(childText(d, "version")),
			Type:       r.interpolate(childText(d, "type")),
			Scope:      r.interpolate(childText(d, "scope")),
		}
		if dep.Type == "" {
			dep.Type = types.DefaultType
		}
		deps = append(deps, dep)
	}
	return deps
}

func managementKey(dep types.Dependency) string {
	return dep.GroupID + ":" + dep.ArtifactID + ":" + dep.ArtifactType()
}

var propertyRef = regexp.MustCompile(`\$\{([^}]+)\}`)

// maxInterpolationPasses bounds property chains and stops self references
const maxInterpolationPasses = 10

// interpolate replaces ${name} with project values, properties or env.NAME
// environment variables. Unknown references are kept verbatim.
func (r *reader) interpolate(s string) string {
	for i := 0; i < maxInterpolationPasses && strings.Contains(s, "${"); i++ {
		next := propertyRef.ReplaceAllStringFunc(s, func(ref string) string {
			name := ref[2 : len(ref)-1]
			if value, ok := r.lookup(name); ok {
				return value
			}
			return ref
		})
		if next == s {
			r.logger.Warn().Str("value", s).Msg("Unresolved property reference")
			break
		}
		s = next
	}
	return s
}

func (r *reader) lookup(name string) (string, bool) {
	if env, ok := strings.CutPrefix(name, "env."); ok {
		return os.LookupEnv(env)
	}
	value, ok := r.props[name]
	return value, ok
}

func childText(el *etree.Element, tag string) string {
	if c := el.SelectElement(tag); c != nil {
		return strings.TrimSpace(c.Text())
	}
	return ""
}
