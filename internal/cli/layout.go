package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/shieldicon/pkg/errors"
	"github.com/matzehuels/shieldicon/pkg/pipeline"
	"github.com/matzehuels/shieldicon/pkg/placement"
	"github.com/matzehuels/shieldicon/pkg/shield"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

// layoutDoc is the JSON form of a placement run.
type layoutDoc struct {
	Seed    uint64        `json:"seed"`
	Letters []letterEntry `json:"letters"`
}

type letterEntry struct {
	Char  string `json:"char"`
	Kind  string `json:"kind"`
	Color string `json:"color"`
	placement.Candidate
}

// layoutCommand creates the layout command, which prints where the letters go
// for a seed without rendering anything.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		seed   uint64
		format string
		trials int
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the letter placement for a seed",
		Long: `Print the letter placement for a seed.

Runs only the placement search and prints every letter in drawing order with
its centre, size, rotation, colour and final penalty. A penalty of 1000 or
more means the letter could not be kept inside the shield. No files are
written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatTable && format != formatJSON {
				return errors.New(errors.ErrCodeInvalidInput, "unknown format %q (want %s or %s)", format, formatTable, formatJSON)
			}
			if trials < 1 {
				return errors.New(errors.ErrCodeInvalidInput, "trials must be at least 1, got %d", trials)
			}
			if seed == 0 {
				seed = pipeline.NewSeed()
			}

			opts := placement.DefaultOptions()
			opts.MaxTrials = trials
			placements := placement.Layout(seed, shield.DefaultBounds(), &opts)
			loggerFromContext(cmd.Context()).Debug("computed layout", "seed", seed, "letters", len(placements))

			if format == formatJSON {
				return writeLayoutJSON(cmd.OutOrStdout(), seed, placements)
			}
			writeLayoutTable(cmd.OutOrStdout(), seed, placements)
			return nil
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed, 0 picks one")
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table, json")
	cmd.Flags().IntVar(&trials, "trials", placement.DefaultOptions().MaxTrials, "candidates drawn per letter")

	return cmd
}

func writeLayoutJSON(w io.Writer, seed uint64, ps []placement.Placement) error {
	doc := layoutDoc{Seed: seed, Letters: make([]letterEntry, len(ps))}
	for i, p := range ps {
		doc.Letters[i] = letterEntry{
			Char:      string(p.Char),
			Kind:      p.Kind.String(),
			Color:     placement.Hex(p.Color),
			Candidate: p.Candidate,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func writeLayoutTable(w io.Writer, seed uint64, ps []placement.Placement) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(StyleDim).
		Headers("#", "CHAR", "KIND", "COLOR", "X", "Y", "SIZE", "ROT", "PENALTY", "TRIALS")
	for i, p := range ps {
		t.Row(
			strconv.Itoa(i+1),
			string(p.Char),
			p.Kind.String(),
			placement.Hex(p.Color),
			fmt.Sprintf("%.1f", p.X),
			fmt.Sprintf("%.1f", p.Y),
			fmt.Sprintf("%.1f", p.Size),
			fmt.Sprintf("%+.1f", p.Rotation),
			fmt.Sprintf("%.1f", p.Penalty),
			strconv.Itoa(p.Trials),
		)
	}
	fmt.Fprintln(w, StyleTitle.Render("seed")+" "+StyleNumber.Render(strconv.FormatUint(seed, 10)))
	fmt.Fprintln(w, t.Render())
}
