package vector

import (
	"fmt"
	"io"
	"strings"
)

// Dot outputs the internal layout of a vector in Graphviz DOT format
// (for debugging purposes).
//
// Live slots are shown in order, followed by the unused rest of the capacity.
func (v *Vector[T]) Dot(w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	fields := make([]string, 0, v.size+1)
	for i := 0; i < v.size; i++ {
		fields = append(fields, fmt.Sprintf("<s%d> %s", i, dotEscape(fmt.Sprint(v.storage[i]))))
	}
	if free := len(v.storage) - v.size; free > 0 {
		fields = append(fields, fmt.Sprintf("<free> free ×%d", free))
	} else if len(fields) == 0 {
		fields = append(fields, "<free> ∅")
	}
	fmt.Fprintf(w, "\"header\" [label=\"size=%d\\ncap=%d\",shape=box,style=filled,fillcolor=\"#a3d7e4\"];\n",
		v.size, len(v.storage))
	fmt.Fprintf(w, "\"storage\" [label=\"%s\",shape=record];\n", strings.Join(fields, "|"))
	io.WriteString(w, "\"header\" -> \"storage\";\n")
	if v.size > 0 {
		fmt.Fprintf(w, "\"end\" [label=\"\",color=black,shape=circle,fixedsize=true,width=.2];\n")
		if v.size < len(v.storage) {
			io.WriteString(w, "\"end\" -> \"storage\":free;\n")
		} else {
			fmt.Fprintf(w, "\"end\" -> \"storage\":s%d [style=dashed];\n", v.size-1)
		}
	}
	io.WriteString(w, "}\n")
}

var dotReplacer = strings.NewReplacer(
	`\`, `\\`, `"`, `\"`, `|`, `\|`, `{`, `\{`, `}`, `\}`, `<`, `\<`, `>`, `\>`,
)

func dotEscape(s string) string {
	if r := []rune(s); len(r) > 20 {
		s = string(r[:17]) + "..."
	}
	return dotReplacer.Replace(s)
}
