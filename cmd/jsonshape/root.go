package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var repairFlag string
	var jsonFlag bool
	var statsFlag bool

	ctx := newCommandContext(&configFlag, &repairFlag)

	rootCmd := &cobra.Command{
		Use:           "jsonshape",
		Short:         "Recover titles, descriptions and tags from messy JSON fields",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureExtractor(cmd)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !statsFlag || shouldSkipConfig(cmd) {
				return nil
			}
			return ctx.printStats(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFlag, "config", "c", "", "Profile file path")
	flags.StringVar(&repairFlag, "repair", "", "Repair mode override: strict, truncated or lenient")
	flags.BoolVar(&jsonFlag, "json", false, "Print results as JSON")
	flags.BoolVar(&statsFlag, "stats", false, "Print extraction counters to stderr when done")

	ctx.jsonOutput = &jsonFlag

	rootCmd.AddCommand(newTitleCommand(ctx))
	rootCmd.AddCommand(newDescriptionCommand(ctx))
	rootCmd.AddCommand(newTagsCommand(ctx))
	rootCmd.AddCommand(newRepairCommand(ctx))
	rootCmd.AddCommand(newInspectCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
