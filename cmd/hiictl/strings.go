package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/hiikit/hii"
)

var (
	stringsGUID string
	stringsLang string
)

func init() {
	cmd := newStringsCmd()
	cmd.Flags().StringVar(&stringsGUID, "guid", "", "Package list GUID (required)")
	cmd.Flags().StringVar(&stringsLang, "lang", "", "Only show this language, e.g. en-US")
	cmd.MarkFlagRequired("guid")
	rootCmd.AddCommand(cmd)
}

func newStringsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strings <capture>",
		Short: "Print the string tables of a package list",
		Long: `The strings command prints every string of every string package in the
package list with the given GUID, one "ID n = text" line per string. String
ids start at 1.

Example:
  hiictl strings hii.bin --guid 8e1f5a0c-2f1d-4c8e-9d44-2b3c1a0f9e77
  hiictl strings hii.bin --guid 8e1f5a0c-2f1d-4c8e-9d44-2b3c1a0f9e77 --lang en-US`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStrings(cmd, args)
		},
	}
}

type stringTable struct {
	Language string   `json:"language"`
	Strings  []string `json:"strings"`
}

func runStrings(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	db, err := openDatabase(ctx, args[0])
	if err != nil {
		return err
	}
	l, err := lookupList(ctx, db, stringsGUID)
	if err != nil {
		return err
	}

	sps, err := hii.StringPackages(l)
	if err != nil {
		return err
	}
	var tables []stringTable
	for _, sp := range sps {
		if stringsLang != "" && !sp.MatchesLanguage(stringsLang) {
			continue
		}
		strs, err := sp.Strings()
		if err != nil {
			return fmt.Errorf("%s strings: %w", sp.Language(), err)
		}
		tables = append(tables, stringTable{Language: sp.Language(), Strings: strs})
	}
	if stringsLang != "" && len(tables) == 0 {
		return fmt.Errorf("no %s strings in package list %s", stringsLang, l.GUID())
	}

	if ok, err := structured(map[string]interface{}{
		"guid":   l.GUID(),
		"tables": tables,
	}); ok {
		return err
	}

	for _, tbl := range tables {
		printInfo("Language: %s\n", tbl.Language)
		for i, s := range tbl.Strings {
			printInfo("  ID %d = %q\n", i+1, s)
		}
	}
	return nil
}
