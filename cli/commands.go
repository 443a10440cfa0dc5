package cli

import (
	"context"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mevansam/textparsers/logger"
	"github.com/mevansam/textparsers/transform"
	"github.com/mevansam/textparsers/typeexpr"
	"github.com/mevansam/textparsers/utils"
)

func (a *app) newNormalizeCommand() *cobra.Command {

	var (
		typeExpr string
	)

	cmd := &cobra.Command{
		Use:   "normalize [text...]",
		Short: "Write each text in canonical form",
		Long: `Parses each argument, or each line of the standard input when no
arguments are given, and writes the canonical text of the parsed value.`,
		RunE: func(cmd *cobra.Command, args []string) error {

			transformer, err := a.resolve(typeExpr)
			if err != nil {
				return err
			}
			texts, err := inputs(cmd, args)
			if err != nil {
				return err
			}

			for i, text := range texts {
				normalized, err := normalize(transformer, text)
				if err != nil {
					return fmt.Errorf("%s input: %w", utils.Ordinal(i+1), err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), normalized)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&typeExpr, "type", "t", "", "type expression, e.g. 'map[string][]int'")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func (a *app) newCheckCommand() *cobra.Command {

	var (
		typeExpr string
		workers  int
	)

	cmd := &cobra.Command{
		Use:   "check [text...]",
		Short: "Validate that each text can be parsed",
		Long: `Parses each argument, or each line of the standard input when no
arguments are given, and reports the inputs that are invalid. The
command fails when at least one input is invalid.`,
		RunE: func(cmd *cobra.Command, args []string) error {

			transformer, err := a.resolve(typeExpr)
			if err != nil {
				return err
			}
			texts, err := inputs(cmd, args)
			if err != nil {
				return err
			}

			results := make([]error, len(texts))
			g, _ := errgroup.WithContext(context.Background())
			g.SetLimit(max(workers, 1))
			for i, text := range texts {
				g.Go(func() error {
					_, results[i] = normalize(transformer, text)
					return nil
				})
			}
			_ = g.Wait()

			invalid := 0
			out := cmd.OutOrStdout()
			for i, err := range results {
				if err != nil {
					invalid++
					fmt.Fprintf(out, "%s %s %s\n", a.painter.Failure("INVALID"), texts[i], a.painter.Note(err.Error()))
				} else {
					fmt.Fprintf(out, "%s %s\n", a.painter.Success("OK"), texts[i])
				}
			}

			logger.DebugMessage("cli.check(): %d of %d inputs are invalid.", invalid, len(texts))
			if invalid > 0 {
				return fmt.Errorf("%d of %d inputs are invalid", invalid, len(texts))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&typeExpr, "type", "t", "", "type expression, e.g. 'map[string][]int'")
	cmd.Flags().IntVarP(&workers, "workers", "w", runtime.NumCPU(), "number of inputs checked concurrently")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func (a *app) newDescribeCommand() *cobra.Command {

	var (
		typeExpr string
	)

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Describe how a type is transformed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			transformer, err := a.resolve(typeExpr)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), transformer.String())
			return nil
		},
	}
	cmd.Flags().StringVarP(&typeExpr, "type", "t", "", "type expression, e.g. 'map[string][]int'")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func (a *app) newTypesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the type names usable in type expressions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range typeexpr.Names() {
				fmt.Fprintln(out, name)
			}
			fmt.Fprintln(out, a.painter.Note("composed with *T, []T, [N]T, map[K]V, graduated[E] and tuple[T1,...,T8]"))
			return nil
		},
	}
}

func normalize(transformer transform.Transformer, text string) (string, error) {

	v, err := transformer.Parse(text)
	if err != nil {
		return "", err
	}
	return transform.FormatValue(transformer, v)
}
