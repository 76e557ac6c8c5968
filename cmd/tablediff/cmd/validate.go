package cmd

import (
	"fmt"

	"github.com/go-drift/tablediff/cmd/tablediff/internal/scenario"
)

func init() {
	RegisterCommand(&Command{
		Name:  "validate",
		Short: "Check that a scenario file parses and targets resolve",
		Usage: "tablediff validate <scenario.yaml>",
		Run:   runValidate,
	})
}

func runValidate(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("validate expects exactly one scenario file")
	}

	sc, err := scenario.Load(args[0])
	if err != nil {
		return err
	}

	rows := 0
	for _, s := range sc.Table.Sections() {
		rows += len(s.Rows())
	}
	fmt.Printf("ok: %d sections, %d rows, %d changes\n",
		len(sc.Table.Sections()), rows, sc.Changes.Len())
	return nil
}
