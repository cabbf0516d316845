package commands

import (
	"github.com/spf13/cobra"
	"github.com/xiao-chen/dist-test/internal/app"
	"github.com/xiao-chen/dist-test/internal/engine/pipeline"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [project-dir]",
		Short: "Package, submit and track the project's test suites",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectDir := "."
			if len(args) == 1 {
				projectDir = args[0]
			}

			repetitions, _ := cmd.Flags().GetInt("num-instances")
			timeout, _ := cmd.Flags().GetInt("timeout")
			retries, _ := cmd.Flags().GetInt("retries")
			artifacts, _ := cmd.Flags().GetBool("artifacts")
			globs, _ := cmd.Flags().GetStringArray("artifact-glob")
			mergedReport, _ := cmd.Flags().GetString("merged-report")
			report, _ := cmd.Flags().GetBool("report")
			configPath, _ := cmd.Flags().GetString("config")
			leakTemp, _ := cmd.Flags().GetBool("leak-temp")

			return c.app.Run(cmd.Context(), app.RunParams{
				Pipeline: pipeline.Params{
					ProjectDir:       projectDir,
					Repetitions:      repetitions,
					Timeout:          timeout,
					Retries:          retries,
					ArtifactGlobs:    globs,
					Artifacts:        artifacts,
					MergedReportPath: mergedReport,
					Report:           report,
				},
				ConfigPath: configPath,
				LeakTemp:   leakTemp,
			})
		},
	}

	cmd.Flags().IntP("num-instances", "n", 1, "Number of times each test suite is scheduled")
	cmd.Flags().Int("timeout", 600, "Per-task timeout in seconds")
	cmd.Flags().Int("retries", 0, "Automatic retries per failing task (0 disables)")
	cmd.Flags().Bool("artifacts", false, "Download per-task result files and merge them")
	cmd.Flags().StringArray("artifact-glob", nil, "Glob for artifact files to collect per task (repeatable)")
	cmd.Flags().String("merged-report", "", "Path for the consolidated report (defaults to test_results.xml in the project dir)")
	cmd.Flags().Bool("report", false, "Publish the job's results to the dashboard")
	return cmd
}
