package graph

import (
	"fmt"
	"strings"

	"github.com/plin1112/mcell/pkg/domain"
)

// Overlay highlights parts of the scene on the rendered graph.
type Overlay struct {
	// Highlight lists object names to emphasise, e.g. the objects touched
	// by a failing release site.
	Highlight []string
}

// GenerateMermaid produces a Mermaid flowchart of the object hierarchy under
// root, plus one dotted edge from each region release site to every object
// its expression references. Shapes follow the object type:
// - Meta: [Rectangle]
// - Release site: ((Circle))
// - Geometric: [[Subroutine]]
func GenerateMermaid(root *domain.Object, sites []*domain.ReleaseSite, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	writeObject(&sb, root)

	for _, site := range sites {
		if site.Region == nil || site.Region.Expression == nil {
			continue
		}
		// Escape double quotes for the Mermaid label
		label := strings.ReplaceAll(site.Region.Expression.String(), "\"", "'")
		seen := make(map[string]bool)
		for _, r := range site.Region.Expression.Regions() {
			if r.Parent == nil || seen[r.Parent.Name] {
				continue
			}
			seen[r.Parent.Name] = true
			fmt.Fprintf(&sb, "    %s -. \"%s\" .-> %s\n", sanitizeMermaidID(site.Name), label, sanitizeMermaidID(r.Parent.Name))
		}
	}

	if overlay != nil && len(overlay.Highlight) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef highlight fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		done := make(map[string]bool)
		for _, name := range overlay.Highlight {
			id := sanitizeMermaidID(name)
			if id == "" || done[id] {
				continue
			}
			done[id] = true
			fmt.Fprintf(&sb, "    class %s highlight;\n", id)
		}
	}

	return sb.String()
}

func writeObject(sb *strings.Builder, obj *domain.Object) {
	if obj == nil {
		return
	}
	opener, closer := "[", "]"
	switch {
	case obj.Type == domain.ObjectReleaseSite:
		opener, closer = "((", "))"
	case obj.Type.IsGeometric():
		opener, closer = "[[", "]]"
	}
	id := sanitizeMermaidID(obj.Name)
	fmt.Fprintf(sb, "    %s%s\"%s\"%s\n", id, opener, obj.Name, closer)

	for _, child := range obj.Children {
		writeObject(sb, child)
		fmt.Fprintf(sb, "    %s --> %s\n", id, sanitizeMermaidID(child.Name))
	}
}

func sanitizeMermaidID(id string) string {
	return strings.NewReplacer(
		".", "_",
		"-", "_",
		"/", "_",
		"\\", "_",
		",", "_",
		" ", "_",
	).Replace(id)
}
