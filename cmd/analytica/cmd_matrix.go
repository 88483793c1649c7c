// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/analytica/internal/calc"
	"github.com/katalvlaran/analytica/matrix"
)

// errMatrixSource is returned when neither or both of --rows and --file are set.
var errMatrixSource = errors.New("exactly one of --rows or --file is required")

// matrixFile is the YAML shape accepted by --file.
type matrixFile struct {
	Rows [][]float64 `yaml:"rows"`
}

func newMatrixCmd(a *app) *cobra.Command {
	var (
		rowsFlag string
		fileFlag string
		exp      int
	)

	cmd := &cobra.Command{
		Use:   "matrix <op>",
		Short: "Apply a matrix operation",
		Long: fmt.Sprintf(`Apply a matrix operation to a matrix given inline or from a YAML file.

Operations: %s`, strings.Join(calc.MatrixOps(), " ")),
		Example: `  analytica matrix det --rows "1,2;3,4"
  analytica matrix pow --exp 3 --file m.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := loadRows(rowsFlag, fileFlag)
			if err != nil {
				return err
			}
			m, err := matrix.NewDenseFromRows(rows)
			if err != nil {
				return err
			}

			op := strings.ToLower(args[0])
			res, err := calc.Matrix(op, m, exp)
			if err != nil {
				a.logger.Debug("matrix op failed", "op", op, "rows", m.Rows(), "cols", m.Cols(), "error", err)
				return err
			}
			printLine(cmd, res.Render(a.style()))

			return nil
		},
	}

	cmd.Flags().StringVar(&rowsFlag, "rows", "", `matrix rows, e.g. "1,2;3,4"`)
	cmd.Flags().StringVar(&fileFlag, "file", "", "YAML file with a rows: [[...], ...] list")
	cmd.Flags().IntVar(&exp, "exp", 1, "exponent for pow")

	return cmd
}

func loadRows(inline, path string) ([][]float64, error) {
	switch {
	case (inline == "") == (path == ""):
		return nil, errMatrixSource
	case inline != "":
		return calc.ParseRows(inline)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var mf matrixFile
	if err = yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return mf.Rows, nil
}
