package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/EtaileddigitalIndia/lms5-sub000/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "lms5",
	Short: "Course progression and assessment engine",
	Long: "lms5 tracks a learner's progress through a course: lesson unlocking,\n" +
		"quiz grading, module certificates, the course diploma and the stipend schedule.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides LMS5_DB env var)")
	pf.StringP("course", "c", "course.json", "Path to curriculum JSON file")
	pf.StringP("learner", "l", "", "Learner id")
	pf.String("learner-name", "", "Learner display name (for certificates)")
	pf.Int64("monthly-rate", 0, "Stipend monthly rate in currency units (0 = default)")
	pf.String("log-level", "warn", "Log level (debug, info, warn, error)")
	pf.String("log-format", "text", "Log format (text, json)")

	rootCmd.AddCommand(enrollCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(assignmentCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(stipendCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// viperForCmd binds a command's flags and environment to a fresh viper
// instance, so every flag can also be set as LMS5_<FLAG>.
func viperForCmd(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("LMS5")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlags(cmd.Flags())
	_ = v.BindPFlags(cmd.Root().PersistentFlags())
	return v
}

func setupLogging(cmd *cobra.Command) {
	v := viperForCmd(cmd)

	var level slog.Level
	switch strings.ToLower(v.GetString("log-level")) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.ToLower(v.GetString("log-format")) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// resolveDBPath returns the database path using the --db flag or LMS5_DB
// env (via viper), then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p := viperForCmd(cmd).GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
