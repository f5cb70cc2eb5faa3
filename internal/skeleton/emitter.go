// Package skeleton turns a finished mapping into a structural code skeleton:
// an import list, a nested tag outline and an inferred props interface. The
// output is an editable scaffold for the downstream code generator, not
// compiled code.
package skeleton

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"archemap/internal/mapping"
)

// highConfidence: props for slots below this are emitted as optional.
const highConfidence = 0.8

// Skeleton is the emitted scaffold.
type Skeleton struct {
	ComponentName  string
	Imports        []string
	PropsInterface string
	Code           string
}

// Emitter derives skeletons from mapping results. Stateless.
type Emitter struct{}

// New creates an Emitter.
func New() *Emitter {
	return &Emitter{}
}

// Emit walks the result's mappings in order and produces the scaffold.
func (e *Emitter) Emit(result *mapping.Result) Skeleton {
	if result == nil {
		return Skeleton{}
	}
	archName := result.Archetype.String()
	componentName := archName + "Component"

	var body strings.Builder
	used := map[string]struct{}{archName: {}}

	body.WriteString(fmt.Sprintf("  <%s className={className}>\n", archName))
	for _, m := range result.Mappings {
		tag := m.SlotName
		for _, node := range m.MatchedNodes {
			used[tag] = struct{}{}
			if node.IsText() || node.HasDirectText() {
				body.WriteString(fmt.Sprintf("    <%s>{props.%s}</%s>\n", tag, propName(archName, m.SlotName), tag))
				continue
			}
			body.WriteString(fmt.Sprintf("    <%s>\n", tag))
			for _, grandchild := range node.Children {
				body.WriteString(fmt.Sprintf("      {/* %s */}\n", grandchild.Name))
			}
			body.WriteString(fmt.Sprintf("    </%s>\n", tag))
		}
	}
	body.WriteString(fmt.Sprintf("  </%s>\n", archName))

	return Skeleton{
		ComponentName:  componentName,
		Imports:        importList(archName, used),
		PropsInterface: propsInterface(componentName, archName, result.Mappings),
		Code:           renderComponent(componentName, body.String()),
	}
}

// propName strips the archetype prefix from the slot name and lower-camels
// the remainder: CardTitle -> title, MenubarMenu -> menu.
func propName(archName, slotName string) string {
	rest := strings.TrimPrefix(slotName, archName)
	if rest == "" {
		rest = slotName
	}
	r := []rune(rest)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

func importList(archName string, used map[string]struct{}) []string {
	tags := make([]string, 0, len(used))
	for t := range used {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	module := "@/components/ui/" + strings.ToLower(archName)
	return []string{fmt.Sprintf("import { %s } from %q;", strings.Join(tags, ", "), module)}
}

func propsInterface(componentName, archName string, mappings []mapping.SlotMapping) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("interface %sProps {\n", componentName))
	for _, m := range mappings {
		if !m.Matched() {
			continue
		}
		optional := ""
		if m.Confidence < highConfidence {
			optional = "?"
		}
		b.WriteString(fmt.Sprintf("  %s%s: React.ReactNode;\n", propName(archName, m.SlotName), optional))
	}
	b.WriteString("  className?: string;\n")
	b.WriteString("}")
	return b.String()
}

func renderComponent(componentName, body string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("export function %s({ className, ...props }: %sProps) {\n", componentName, componentName))
	b.WriteString("  return (\n")
	// Shift the body one level to sit inside the return.
	for _, line := range strings.Split(strings.TrimRight(body, "\n"), "\n") {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("  );\n")
	b.WriteString("}")
	return b.String()
}
