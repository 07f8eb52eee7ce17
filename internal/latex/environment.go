package latex

import "strings"

// Environment describes the table float around a tabular body.
type Environment struct {
	Caption      string
	Label        string
	Star         bool
	CaptionAbove bool
}

// Name returns "table" or "table*".
func (e Environment) Name() string {
	if e.Star {
		return "table*"
	}
	return "table"
}

// Wrap places tabular inside the environment:
//
//	\begin{table}
//	\centering
//	\caption{...}\label{...}
//	<tabular>\end{table}
//
// With CaptionAbove unset the caption line follows the tabular instead.
func (e Environment) Wrap(tabular string) string {
	name := e.Name()
	caption := `\caption{` + e.Caption + `}\label{` + e.Label + `}`

	var sb strings.Builder
	sb.WriteString(`\begin{` + name + "}\n")
	sb.WriteString("\\centering\n")
	if e.CaptionAbove {
		sb.WriteString(caption + "\n")
		sb.WriteString(tabular + `\end{` + name + "}\n")
	} else {
		sb.WriteString(tabular + caption + "\n")
		sb.WriteString(`\end{` + name + "}\n")
	}
	return sb.String()
}
