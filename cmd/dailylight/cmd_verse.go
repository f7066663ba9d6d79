package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var verseTranslation string

var verseCmd = &cobra.Command{
	Use:   "verse <reference>",
	Short: "Look up scripture text, e.g. dailylight verse John 3:16",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runVerse,
}

var translationsCmd = &cobra.Command{
	Use:   "translations",
	Short: "List available translation codes",
	RunE:  runTranslations,
}

func init() {
	verseCmd.Flags().StringVarP(&verseTranslation, "translation", "t", "web", "Translation code (see 'dailylight translations')")
}

func runVerse(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	c, err := newClient()
	if err != nil {
		return err
	}

	verse, err := c.Verse(ctx, strings.Join(args, " "), verseTranslation)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, referenceStyle.Render(verse.Reference))
	if verse.TranslationName != "" {
		fmt.Fprintln(out, mutedStyle.Render(verse.TranslationName))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, verse.Text)
	return nil
}

func runTranslations(cmd *cobra.Command, args []string) error {
	ctx, cancel := commandContext()
	defer cancel()

	c, err := newClient()
	if err != nil {
		return err
	}

	translations, err := c.Translations(ctx)
	if err != nil {
		return err
	}
	for _, t := range translations {
		fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", t.ID, t.Name)
	}
	return nil
}
