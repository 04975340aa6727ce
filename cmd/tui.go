package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/abhisek/mathfacts/internal/app"
	"github.com/abhisek/mathfacts/internal/facts"
	"github.com/abhisek/mathfacts/internal/problemgen"
	"github.com/abhisek/mathfacts/internal/quiz"
	"github.com/abhisek/mathfacts/internal/screens/launch"
	"github.com/abhisek/mathfacts/internal/session"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Start the adaptive drill",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd, app.Options{Start: app.StartPractice})
	},
}

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take a fixed-length quiz",
	RunE: func(cmd *cobra.Command, args []string) error {
		repeat, _ := cmd.Flags().GetBool("repeat-incorrect")
		return runTUI(cmd, app.Options{Start: app.StartQuiz, RepeatIncorrect: repeat})
	},
}

var challengeCmd = &cobra.Command{
	Use:   "challenge",
	Short: "Take a scored challenge with a pass mark and reward",
	RunE: func(cmd *cobra.Command, args []string) error {
		repeat, _ := cmd.Flags().GetBool("repeat-incorrect")
		return runTUI(cmd, app.Options{Start: app.StartChallenge, RepeatIncorrect: repeat})
	},
}

func init() {
	addQuizFlags(quizCmd.Flags())
	addChallengeFlags(challengeCmd.Flags())
}

func addQuizFlags(fs *pflag.FlagSet) {
	fs.String("style", string(quiz.StyleRandom), "Question order: random or sequential")
	fs.String("op", string(facts.Multiplication), "Operation: multiplication, addition or subtraction")
	fs.IntSlice("tables", nil, "Tables to quiz (default: selected tables)")
	fs.IntP("count", "n", launch.DefaultQuizLength, "Number of questions")
	fs.Bool("mc", false, "Multiple-choice answers instead of typing")
	fs.Bool("reverse", false, "Show the larger operand first (sequential only)")
	fs.Bool("repeat-incorrect", false, "Repeat a question until it is answered correctly")
}

func addChallengeFlags(fs *pflag.FlagSet) {
	def := session.DefaultChallenge()
	fs.IntSlice("tables", nil, "Tables to use (default: selected tables)")
	fs.String("op", string(def.Operation), "Operation: multiplication, addition or subtraction")
	fs.Int("total", def.Total, "Number of questions")
	fs.Int("required", def.Required, "Correct answers needed to pass")
	fs.String("reward", "", "Reward earned on passing")
	fs.Bool("typed", false, "Type answers instead of multiple choice")
	fs.Bool("repeat-incorrect", false, "Repeat a question until it is answered correctly")
}

// runTUI opens the environment, fills the start options from flags and
// launches the TUI.
func runTUI(cmd *cobra.Command, opts app.Options) error {
	e, err := openEnv(cmd, true)
	if err != nil {
		return err
	}
	defer e.Close()

	opts.Deps = e.deps()
	switch opts.Start {
	case app.StartQuiz:
		if opts.Quiz, err = quizOptions(cmd, opts.Deps); err != nil {
			return err
		}
	case app.StartChallenge:
		if opts.Challenge, err = challengeOptions(cmd, opts.Deps); err != nil {
			return err
		}
	}

	e.log.Info("tui started", "start", opts.Start)
	return app.Run(opts)
}

func quizOptions(cmd *cobra.Command, d launch.Deps) (quiz.Options, error) {
	return quizOptionsFrom(cmd.Flags(), d)
}

func quizOptionsFrom(flags *pflag.FlagSet, d launch.Deps) (quiz.Options, error) {
	opts := d.DefaultQuiz()

	styleFlag, _ := flags.GetString("style")
	style, ok := quiz.ParseStyle(styleFlag)
	if !ok {
		return quiz.Options{}, fmt.Errorf("unknown quiz style %q (want random or sequential)", styleFlag)
	}
	opts.Style = style

	opFlag, _ := flags.GetString("op")
	op, err := facts.ParseOperation(opFlag)
	if err != nil {
		return quiz.Options{}, err
	}
	opts.Operation = op

	if flags.Changed("tables") {
		opts.Operands, _ = flags.GetIntSlice("tables")
	}
	opts.Count, _ = flags.GetInt("count")
	if opts.Count <= 0 {
		return quiz.Options{}, fmt.Errorf("question count must be positive, got %d", opts.Count)
	}

	opts.Mode = problemgen.ModeTyped
	if mc, _ := flags.GetBool("mc"); mc {
		opts.Mode = problemgen.ModeMultipleChoice
	}
	opts.Reverse, _ = flags.GetBool("reverse")
	return opts, nil
}

func challengeOptions(cmd *cobra.Command, d launch.Deps) (session.Challenge, error) {
	return challengeOptionsFrom(cmd.Flags(), d)
}

func challengeOptionsFrom(flags *pflag.FlagSet, d launch.Deps) (session.Challenge, error) {
	c := d.DefaultChallenge()

	opFlag, _ := flags.GetString("op")
	op, err := facts.ParseOperation(opFlag)
	if err != nil {
		return session.Challenge{}, err
	}
	c.Operation = op

	if flags.Changed("tables") {
		c.Tables, _ = flags.GetIntSlice("tables")
	}
	c.Total, _ = flags.GetInt("total")
	c.Required, _ = flags.GetInt("required")
	c.Reward, _ = flags.GetString("reward")
	if typed, _ := flags.GetBool("typed"); typed {
		c.Mode = problemgen.ModeTyped
	}

	if c.Total <= 0 {
		return session.Challenge{}, fmt.Errorf("total must be positive, got %d", c.Total)
	}
	if c.Required < 0 || c.Required > c.Total {
		return session.Challenge{}, fmt.Errorf("required must be between 0 and %d, got %d", c.Total, c.Required)
	}
	return c, nil
}
