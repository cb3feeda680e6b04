package templates

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/delaneyj/depnodes/depnodes"
)

func joinedValues(values []any) string {
	var sb strings.Builder
	for i, v := range values {
		sb.WriteString(fmt.Sprint(v))
		if i < len(values)-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// nodeLabel renders a node as "name\nfn(args) = value". Only batch roots carry
// the name and literals drop the call.
func nodeLabel(n depnodes.NodeInfo) string {
	var sb strings.Builder
	if n.Name != "" && n.Span > 0 {
		sb.WriteString(n.Name)
		sb.WriteString("\n")
	}
	if !n.IsLiteral() {
		sb.WriteString(n.Function)
		sb.WriteString("(")
		sb.WriteString(joinedValues(n.Inputs))
		sb.WriteString(") = ")
	}
	sb.WriteString(fmt.Sprint(n.Value))
	return sb.String()
}

func nodeID(index int) string {
	return "n" + strconv.Itoa(index)
}
