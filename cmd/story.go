package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mitchellh/go-wordwrap"
	"github.com/spf13/cobra"

	"github.com/mathstory/mathstory/internal/challenge"
	"github.com/mathstory/mathstory/internal/llm"
	"github.com/mathstory/mathstory/internal/storygen"
	"github.com/mathstory/mathstory/internal/ui/components"
)

var storyCmd = &cobra.Command{
	Use:   "story [topic]",
	Short: "Generate one story in the terminal (no database)",
	Long: `Generate a story for a topic and print it.

This is a stateless developer tool. Nothing is logged or scored. Use --quiz
to answer the reading question and the math problem interactively.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStory,
}

func init() {
	storyCmd.Flags().Bool("surprise", false, "Pick a random topic")
	storyCmd.Flags().Bool("json", false, "Print the raw story as JSON")
	storyCmd.Flags().Bool("quiz", false, "Answer the challenges after reading")
}

func runStory(cmd *cobra.Command, args []string) error {
	surprise, _ := cmd.Flags().GetBool("surprise")
	asJSON, _ := cmd.Flags().GetBool("json")
	quiz, _ := cmd.Flags().GetBool("quiz")

	topic := ""
	if len(args) == 1 {
		topic = args[0]
	}
	if surprise {
		topic = storygen.NewTopicRandomizer(nil).Topic()
	}
	topic = storygen.ResolveTopic(topic)

	ctx := cmd.Context()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	provider, _, err := llm.NewProviderFromEnv(ctx, nil, logger)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(cmd.ErrOrStderr(), "Emne: %s\nSkriver historien...\n\n", topic)

	story, err := storygen.New(provider, storygen.DefaultConfig()).Generate(ctx, topic)
	if err != nil {
		return fmt.Errorf("generate story: %w", err)
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(story)
	}

	printStory(out, story)
	if !quiz {
		return nil
	}
	return runQuiz(out, bufio.NewScanner(cmd.InOrStdin()), story)
}

func printStory(w io.Writer, s *storygen.Story) {
	fmt.Fprintf(w, "── %s ──\n\n", s.Title)
	for _, p := range strings.Split(s.StoryText, "\n") {
		if p = strings.TrimSpace(p); p != "" {
			fmt.Fprintf(w, "%s\n\n", wordwrap.WrapString(p, 72))
		}
	}
	if s.RealWorldFact != "" {
		fmt.Fprintf(w, "Virkelighedens Verden: %s\n\n", wordwrap.WrapString(s.RealWorldFact, 72))
	}
	fmt.Fprintf(w, "(%d ord)\n\n", s.WordCount())
}

// runQuiz walks through the reading question and then the math problem.
// A blank line skips the current challenge.
func runQuiz(w io.Writer, in *bufio.Scanner, s *storygen.Story) error {
	rq := s.ReadingQuestion
	reading := challenge.NewReading(rq.CorrectOptionIndex, len(rq.Options))

	fmt.Fprintf(w, "Læseforståelse: %s\n", rq.Question)
	for i, o := range rq.Options {
		fmt.Fprintf(w, "  %s) %s\n", components.OptionLabels[i], o)
	}
	for !reading.Solved() {
		fmt.Fprint(w, "Dit svar (A-D): ")
		if !in.Scan() {
			return in.Err()
		}
		answer := strings.TrimSpace(in.Text())
		if answer == "" {
			fmt.Fprintln(w, "(sprunget over)")
			break
		}
		i, ok := optionIndex(answer, len(rq.Options))
		if !ok {
			fmt.Fprintln(w, "Vælg et bogstav mellem A og", components.OptionLabels[len(rq.Options)-1])
			continue
		}
		if reading.Select(i) {
			fmt.Fprintf(w, "Korrekt! +%d point\n", challenge.Points)
		} else {
			fmt.Fprintln(w, "Det var ikke helt rigtigt. Prøv igen.")
		}
	}
	fmt.Fprintln(w)

	mp := s.MathProblem
	math := challenge.NewMath(mp.Answer, mp.Unit)
	fmt.Fprintf(w, "Dagens Udfordring: %s\n", wordwrap.WrapString(mp.Question, 72))
	for !math.Solved() {
		fmt.Fprint(w, "Dit svar: ")
		if !in.Scan() {
			return in.Err()
		}
		answer := strings.TrimSpace(in.Text())
		if answer == "" {
			fmt.Fprintln(w, "(sprunget over)")
			break
		}
		if math.Submit(answer) {
			fmt.Fprintf(w, "Helt rigtigt! +%d point\n", challenge.Points)
		} else {
			fmt.Fprintln(w, "Det var ikke helt rigtigt. Husk at bruge punktum eller komma.")
			math.Edit()
		}
	}

	fmt.Fprintf(w, "\nSvaret var %s %s\n", formatAnswer(mp.Answer), mp.Unit)
	return nil
}

// optionIndex accepts a letter (A-D) or a 1-based number.
func optionIndex(s string, n int) (int, bool) {
	s = strings.ToUpper(s)
	for i := 0; i < n && i < len(components.OptionLabels); i++ {
		if s == components.OptionLabels[i] || s == fmt.Sprint(i+1) {
			return i, true
		}
	}
	return 0, false
}

func formatAnswer(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
