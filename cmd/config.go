package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/anisan-cli/anisan-sources/color"
	"github.com/anisan-cli/anisan-sources/config"
	"github.com/anisan-cli/anisan-sources/style"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInfoCmd)

	configInfoCmd.Flags().StringP("key", "k", "", "Show only this key")
	lo.Must0(configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys))
	configInfoCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	configInfoCmd.SetOut(os.Stdout)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Various config related commands",
}

// configInfoCmd prints every registered field with its description, current
// value and default.
var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the available config fields",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		asJson := lo.Must(cmd.Flags().GetBool("json"))

		fields := lo.Values(config.Default)
		if k := lo.Must(cmd.Flags().GetString("key")); k != "" {
			field, ok := config.Default[k]
			if !ok {
				handleErr(errUnknownKey(k))
			}
			fields = []config.Field{field}
		}

		slices.SortFunc(fields, func(a, b config.Field) int {
			switch {
			case a.Key < b.Key:
				return -1
			case a.Key > b.Key:
				return 1
			default:
				return 0
			}
		})

		if asJson {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(fields))
			return
		}

		for i, field := range fields {
			cmd.Println(field.Pretty())
			if i != len(fields)-1 {
				cmd.Println()
			}
		}
	},
}

func completionConfigKeys(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	keys := lo.Keys(config.Default)
	slices.Sort(keys)
	return keys, cobra.ShellCompDirectiveNoFileComp
}

func errUnknownKey(k string) error {
	closest := lo.MinBy(lo.Keys(config.Default), func(a string, b string) bool {
		return levenshtein.Distance(k, a) < levenshtein.Distance(k, b)
	})
	return fmt.Errorf(
		"unknown key %s, did you mean %s?",
		style.Fg(color.Red)(k),
		style.Fg(color.Yellow)(closest),
	)
}
