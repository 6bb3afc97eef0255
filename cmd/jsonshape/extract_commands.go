package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leofalp/jsonshape/core/extract"
)

func newTitleCommand(ctx *commandContext) *cobra.Command {
	var fallback string

	cmd := &cobra.Command{
		Use:   "title [text|-]",
		Short: "Recover a display title",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("fallback") {
				fallback = ctx.config.Title.Fallback
			}
			result := ctx.extractor.TitleResult(raw, fallback)
			if ctx.wantJSON() {
				return writeJSON(cmd, result)
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Value)
			return nil
		},
	}

	cmd.Flags().StringVar(&fallback, "fallback", extract.DefaultTitleFallback, "Title used when nothing usable is found")
	return cmd
}

func newDescriptionCommand(ctx *commandContext) *cobra.Command {
	var fallback string

	cmd := &cobra.Command{
		Use:   "description [text|-]",
		Short: "Recover a description",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("fallback") {
				fallback = ctx.config.Description.Fallback
			}
			result := ctx.extractor.DescriptionResult(raw, fallback)
			if ctx.wantJSON() {
				return writeJSON(cmd, result)
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Value)
			return nil
		},
	}

	cmd.Flags().StringVar(&fallback, "fallback", "", "Description used when nothing usable is found")
	return cmd
}

func newTagsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "tags [text|-]",
		Short: "Recover a tag list, one tag per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			result := ctx.extractor.TagsResult(raw)
			if ctx.wantJSON() {
				return writeJSON(cmd, result)
			}
			out := cmd.OutOrStdout()
			for _, tag := range result.Tags {
				fmt.Fprintln(out, tag)
			}
			return nil
		},
	}
}

func newRepairCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "repair [text|-]",
		Short:       "Close the open strings, arrays and objects of a truncated document",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			repaired := extract.RepairTruncated(raw)
			if ctx.wantJSON() {
				return writeJSON(cmd, map[string]any{
					"repaired": repaired,
					"changed":  repaired != raw,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), repaired)
			return nil
		},
	}
}

func newInspectCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [text|-]",
		Short: "Show the title, description and tags recovered from a field",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			report := ctx.extractor.Inspect(raw, ctx.config.Title.Fallback, ctx.config.Description.Fallback)
			if ctx.wantJSON() {
				return writeJSON(cmd, report)
			}
			rows := [][]string{
				{"title", report.Title.Value, string(report.Title.Outcome)},
				{"description", report.Description.Value, string(report.Description.Outcome)},
				{"tags", strings.Join(report.Tags.Tags, ", "), string(report.Tags.Outcome)},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value", "Outcome"}, rows, nil))
			return nil
		},
	}
}
