package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"recruit-backend/internal/evaluation"
	"recruit-backend/internal/review"
)

// annotateInput is the JSON read by the annotate command.
type annotateInput struct {
	Text            string                      `json:"text"`
	CheckedContents []evaluation.CheckedContent `json:"checked_contents"`
}

var annotateCmd = &cobra.Command{
	Use:   "annotate [file]",
	Short: "Highlight evaluated passages in an answer",
	Long: `Read {"text": ..., "checked_contents": [...]} from a file or stdin and
print the annotated answer view as JSON, or as highlighted HTML with --html.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnnotate,
}

func init() {
	annotateCmd.Flags().Bool("html", false, "Print highlighted HTML instead of JSON")
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	var input annotateInput
	if err := json.NewDecoder(in).Decode(&input); err != nil {
		return fmt.Errorf("decode input: %w", err)
	}

	svc := review.NewService(nil)
	view := svc.Annotate(input.Text, input.CheckedContents)

	asHTML, _ := cmd.Flags().GetBool("html")
	if asHTML {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), evaluation.RenderHTML(view.Annotation.Segments))
		return err
	}
	return writeJSON(cmd.OutOrStdout(), view)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
