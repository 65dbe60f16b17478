package dom

import (
	"html"
	"strings"
)

// HTML serializes the tree rooted at n.
func HTML(n Node) string {
	var sb strings.Builder
	n.html(&sb)
	return sb.String()
}

func (e *Elem) html(sb *strings.Builder) {
	sb.WriteByte('<')
	sb.WriteString(e.Tag)
	for _, a := range e.Attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Name)
		sb.WriteString(`="`)
		sb.WriteString(html.EscapeString(a.Value))
		sb.WriteByte('"')
	}
	sb.WriteByte('>')
	if tagOf(e.Tag).Void {
		return
	}
	for _, k := range e.Kids {
		k.html(sb)
	}
	sb.WriteString("</")
	sb.WriteString(e.Tag)
	sb.WriteByte('>')
}

func (t *Text) html(sb *strings.Builder) {
	sb.WriteString(html.EscapeString(t.Data))
}
