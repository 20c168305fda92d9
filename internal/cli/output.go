package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mcoot/uniquepick/internal/model"
)

var (
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("15"))
	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)
	gainStyle  = cellStyle.Foreground(lipgloss.Color("10"))
	lossStyle  = cellStyle.Foreground(lipgloss.Color("9"))
	winStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	tieStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	labelStyle = cellStyle.Bold(true)
)

// Rows of the per-round table
const (
	rowPicks = iota
	rowDeltas
	rowScores
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, out, errOut io.Writer) *Output {
	return &Output{format: format, out: out, errOut: errOut}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	switch v := data.(type) {
	case model.RoundRecord:
		o.PrintRound(v)
	case model.GameResult:
		o.PrintResult(v)
	default:
		o.printJSON(data)
	}
}

// PrintHeading prints a section heading. Headings are omitted from json output.
func (o *Output) PrintHeading(heading string) {
	if o.format == FormatJSON {
		return
	}
	fmt.Fprintln(o.out, "\n"+headingStyle.Render(heading))
}

// PrintRound prints the picks, deltas and scores of a scored round
func (o *Output) PrintRound(r model.RoundRecord) {
	if o.format == FormatJSON {
		o.printJSON(r)
		return
	}

	headers := []string{""}
	picks := []string{"Secret Numbers"}
	deltas := []string{"Delta"}
	scores := []string{"Scores"}
	deltaValues := []int{0}
	for _, s := range r.Standings {
		headers = append(headers, s.Name)
		picks = append(picks, strconv.Itoa(r.Picks[s.Name]))
		deltas = append(deltas, formatDelta(r.Deltas[s.Name]))
		scores = append(scores, strconv.Itoa(s.Score))
		deltaValues = append(deltaValues, r.Deltas[s.Name])
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(picks, deltas, scores).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return labelStyle
			case row == rowDeltas && deltaValues[col] > 0:
				return gainStyle
			case row == rowDeltas && deltaValues[col] < 0:
				return lossStyle
			}
			return cellStyle
		})

	fmt.Fprintln(o.out, t.Render())
}

// PrintResult prints the final scores and the winner or tied players
func (o *Output) PrintResult(r model.GameResult) {
	if o.format == FormatJSON {
		o.printJSON(r)
		return
	}

	fmt.Fprintln(o.out, "\nFinal Scores:")
	for _, s := range r.FinalScores {
		fmt.Fprintf(o.out, "%s: %d\n", s.Name, s.Score)
	}
	fmt.Fprintln(o.out)

	if r.IsTie() {
		fmt.Fprintln(o.out, tieStyle.Render("It's a tie between the following players:"))
		for _, name := range r.Winners {
			fmt.Fprintln(o.out, name)
		}
		return
	}
	fmt.Fprintln(o.out, winStyle.Render(fmt.Sprintf("The winner is %s!", r.Winner())))
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == FormatJSON {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(o.errOut, string(data))
	} else {
		fmt.Fprintf(o.errOut, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == FormatJSON {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.out, string(data))
	} else {
		fmt.Fprintln(o.out, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func formatDelta(d int) string {
	if d > 0 {
		return "+" + strconv.Itoa(d)
	}
	return strconv.Itoa(d)
}
