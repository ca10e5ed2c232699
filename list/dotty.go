package list

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[T any] struct {
	idTable map[*node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(n *node[T]) int {
	return ids.idTable[n]
}

func (ids *nodeids[T]) alloc(n *node[T]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Dot outputs the ring structure of a list, including its sentinel, in
// Graphviz DOT format (for debugging purposes).
//
// Next links are drawn solid, prev links dashed.
func (l *List[T]) Dot(w io.Writer) {
	io.WriteString(w, "digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	r := l.lazyInit()
	ids := newtable[T]()
	s := &r.sentinel
	sid := ids.alloc(s)
	nodelist := fmt.Sprintf("\"%d\" [label=\"\",color=black,shape=circle,fixedsize=true,width=.4,style=filled,fillcolor=\"#a3d7e4\"];\n", sid)
	edgelist := ""
	n := s
	for i := 0; i <= r.size; i++ {
		ID := ids.alloc(n)
		if n != s {
			label := dotEscape(fmt.Sprint(n.value))
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\",shape=box];\n", ID, label)
		}
		if n.next == nil || n.prev == nil {
			tracer().Errorf("list DOT: ring broken at node %d", i)
			break
		}
		edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(n.next))
		edgelist += fmt.Sprintf("\"%d\" -> \"%d\" [style=dashed];\n", ID, ids.alloc(n.prev))
		n = n.next
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

var dotReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func dotEscape(s string) string {
	if r := []rune(s); len(r) > 20 {
		s = string(r[:17]) + "..."
	}
	return dotReplacer.Replace(s)
}
