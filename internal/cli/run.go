package cli

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mgnsk/dlist"
	"github.com/mgnsk/dlist/internal/script"
)

func newDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in demonstration sequence.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd.OutOrStdout(), script.Demo(), viper.GetBool("trace"))
		},
	}
}

func newRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run <script.yaml>",
		Short: "Run a YAML script of list operations.",
		Long: `Runs the steps of a YAML script against an empty list of integers.

Example script:

  steps:
    - {op: insert_head, value: 10}
    - {op: insert_at, index: 1, value: 20, label: after insert}
    - {op: delete_at, index: 0}
    - {op: get, index: 0}`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := script.Load(args[0])
			if err != nil {
				return err
			}
			return execute(cmd.OutOrStdout(), s, viper.GetBool("trace"))
		},
	}
}

// execute runs s on a fresh list, printing labeled steps, or every step when trace is set.
func execute(w io.Writer, s *script.Script, trace bool) error {
	l := dlist.New[int64]()
	defer l.Clear()

	log.Debug().Int("steps", len(s.Steps)).Msg("running script")

	var werr error
	err := s.Run(l, func(r script.Result) {
		log.Trace().
			Str("op", string(r.Step.Op)).
			Int("len", r.Len).
			Str("list", r.State).
			Msg("step")

		if werr != nil || (!trace && r.Step.Label == "") {
			return
		}
		_, werr = fmt.Fprintln(w, r.Line())
	})
	if err != nil {
		return fmt.Errorf("running script: %w", err)
	}

	return werr
}
