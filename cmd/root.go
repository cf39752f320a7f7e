package cmd

import (
	"fmt"

	"filemerge/pkg/logging"
	"filemerge/pkg/merge"
	"filemerge/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	sortBy   string
	reverse  bool
	excludes []string
	treeFile string
	debug    bool
)

// RootCmd is the base command; it runs the merge pipeline directly.
var RootCmd = &cobra.Command{
	Use:   "filemerge <input_directory> <output_file>",
	Short: "filemerge concatenates the text files under a directory into one file",
	Long: `filemerge scans a directory tree, filters out excluded files, orders the
rest by the chosen key, and writes their contents to a single output file with
a banner recording each file's relative path. Files that cannot be read or are
not valid UTF-8 are skipped with a warning and listed in the final summary.`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := merge.ParseSortKey(sortBy)
		if err != nil {
			return err
		}

		if err := logging.Setup(debug, "filemerge", version.Get().Version); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger := zap.L()

		_, err = merge.Run(merge.Arguments{
			InputDir: args[0],
			Output:   args[1],
			Tree:     treeFile,
			Sort:     key,
			Reverse:  reverse,
			Excludes: excludes,
		}, logger)
		return err
	},
}

func init() {
	RootCmd.Flags().StringVar(&sortBy, "sort", string(merge.SortByName),
		"Sort key: name, creation_time, modification_time, or size")
	RootCmd.Flags().BoolVar(&reverse, "reverse", false,
		"Reverse the final order")
	RootCmd.Flags().StringArrayVar(&excludes, "exclude", nil,
		"Glob pattern to exclude, matched against file names and path components (repeatable)")
	RootCmd.Flags().StringVar(&treeFile, "tree", "",
		"Also write a tree listing of the merged files to this path")
	RootCmd.Flags().BoolVar(&debug, "debug", false,
		"Enable debug logging")
}

// Execute runs the root command and reports any failure to the caller.
func Execute() error {
	return RootCmd.Execute()
}
