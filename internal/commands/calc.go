package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tilldesk/tilldesk/internal/calc"
	"github.com/tilldesk/tilldesk/internal/prompt"
)

func newCalcCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "calc",
		Short: "Run the REPL calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runCalc(in io.Reader, out io.Writer) error {
	console := prompt.NewConsole(in, out)
	ev := calc.NewEvaluator()

	for !console.EOF() {
		expr := console.Line("Please input a mathematical expression: ")
		if console.EOF() {
			break
		}

		result, err := ev.Eval(expr)
		switch {
		case errors.Is(err, calc.ErrDivisionByZero):
			fmt.Fprintln(out, "Division by Zero!")
		case err != nil:
			fmt.Fprintf(out, "Error: %v\n", err)
		default:
			fmt.Fprintln(out, result)
		}

		if strings.EqualFold(console.Line("Do you want to see your history of calculations? (YES/NO): "), "yes") {
			for i, r := range ev.History() {
				fmt.Fprintf(out, "%d. %s\n", i+1, r)
			}
		}
		if !strings.EqualFold(console.Line("Do you want to perform another calculation? (YES/NO): "), "yes") {
			break
		}
	}
	return nil
}
