package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mathstory/mathstory/internal/profile"
	"github.com/mathstory/mathstory/internal/scoreboard"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Inspect and manage local scoreboards",
}

var scoresListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print a user's scoreboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := userFlag(cmd)
		if err != nil {
			return err
		}

		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		entries, err := profile.LoadScores(cmd.Context(), s.KV(), name)
		if err != nil {
			return fmt.Errorf("load scores: %w", err)
		}

		out := cmd.OutOrStdout()
		board := scoreboard.Build(entries)
		if board.Empty() {
			fmt.Fprintf(out, "%s har ingen point endnu.\n", name)
			return nil
		}

		fmt.Fprintf(out, "%s: %s point\n", name, scoreboard.FormatPoints(board.Total))
		rule(out, 64)
		fmt.Fprintf(out, "%-16s  %-38s  %6s\n", "Dato", "Historie", "Point")
		rule(out, 64)
		for _, e := range board.Entries {
			fmt.Fprintf(out, "%-16s  %-38s  %+6d\n",
				scoreboard.FormatDate(e.Time()), truncate(e.Title, 38), e.Points)
		}
		return nil
	},
}

var scoresClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every score of a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := userFlag(cmd)
		if err != nil {
			return err
		}
		yes, _ := cmd.Flags().GetBool("yes")

		if !yes {
			fmt.Fprintf(cmd.OutOrStdout(), "Slet alle point for %s? [j/N] ", name)
			in := bufio.NewScanner(cmd.InOrStdin())
			if !in.Scan() {
				return in.Err()
			}
			switch strings.ToLower(strings.TrimSpace(in.Text())) {
			case "j", "ja", "y", "yes":
			default:
				fmt.Fprintln(cmd.OutOrStdout(), "Afbrudt.")
				return nil
			}
		}

		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := profile.ClearScores(cmd.Context(), s.KV(), name); err != nil {
			return fmt.Errorf("clear scores: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Point for %s er slettet.\n", name)
		return nil
	},
}

var scoresUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "List users with a saved scoreboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		keys, err := s.KV().Keys(ctx, profile.ScoresKey(""))
		if err != nil {
			return fmt.Errorf("list keys: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(keys) == 0 {
			fmt.Fprintln(out, "Ingen brugere fundet.")
			return nil
		}
		for _, k := range keys {
			name, ok := profile.NameFromScoresKey(k)
			if !ok {
				continue
			}
			entries, err := profile.LoadScores(ctx, s.KV(), name)
			if err != nil {
				return fmt.Errorf("load scores for %s: %w", name, err)
			}
			board := scoreboard.Build(entries)
			fmt.Fprintf(out, "%-24s  %8s point  (%d)\n", name, scoreboard.FormatPoints(board.Total), len(board.Entries))
		}
		return nil
	},
}

func userFlag(cmd *cobra.Command) (string, error) {
	raw, _ := cmd.Flags().GetString("user")
	name, err := profile.ValidateName(raw)
	if err != nil {
		return "", fmt.Errorf("--user: %w", err)
	}
	return name, nil
}

func init() {
	scoresListCmd.Flags().StringP("user", "u", "", "User name (required)")
	scoresClearCmd.Flags().StringP("user", "u", "", "User name (required)")
	scoresClearCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	_ = scoresListCmd.MarkFlagRequired("user")
	_ = scoresClearCmd.MarkFlagRequired("user")

	scoresCmd.AddCommand(scoresListCmd)
	scoresCmd.AddCommand(scoresClearCmd)
	scoresCmd.AddCommand(scoresUsersCmd)
}
