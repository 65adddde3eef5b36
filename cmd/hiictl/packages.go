package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/hiikit/hii"
	"github.com/joshuapare/hiikit/hii/store"
)

func init() {
	rootCmd.AddCommand(newPackagesCmd())
}

func newPackagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "packages <capture>",
		Short: "List every package of every package list",
		Long: `The packages command walks each package list and prints its packages
with their type and length. String packages show their language and string
count; form packages show their op-code count.

Example:
  hiictl packages hii.bin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPackages(cmd, args)
		},
	}
}

type packageReport struct {
	Type     string `json:"type"`
	Tag      uint8  `json:"tag"`
	Length   int    `json:"length"`
	Language string `json:"language,omitempty"`
	Strings  int    `json:"strings,omitempty"`
	OpCodes  int    `json:"opcodes,omitempty"`
	Error    string `json:"error,omitempty"`
}

type listPackages struct {
	GUID     hii.GUID        `json:"guid"`
	Packages []packageReport `json:"packages"`
}

func describePackage(p hii.Package) packageReport {
	r := packageReport{
		Type:   p.TypeName(),
		Tag:    uint8(p.Header.Type),
		Length: p.Len(),
	}
	switch tp := hii.Typed(p).(type) {
	case hii.StringPackage:
		r.Language = tp.Language()
		r.Strings = tp.CountStrings()
	case hii.FormPackage:
		n, err := tp.CountOpCodes()
		r.OpCodes = n
		if err != nil {
			r.Error = err.Error()
		}
	case hii.UnknownPackage:
		if tp.Err != nil {
			r.Error = tp.Err.Error()
		}
	}
	return r
}

func runPackages(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	db, err := openDatabase(ctx, args[0])
	if err != nil {
		return err
	}
	snap, err := store.Snapshot(ctx, db, store.AllLists)
	if err != nil {
		return err
	}
	lists, err := hii.ParseDatabase(snap)
	if err != nil {
		return err
	}

	out := make([]listPackages, 0, len(lists))
	for _, l := range lists {
		pkgs, err := l.AllPackages()
		if err != nil {
			return err
		}
		lp := listPackages{GUID: l.GUID()}
		for _, p := range pkgs {
			lp.Packages = append(lp.Packages, describePackage(p))
		}
		out = append(out, lp)
	}

	if ok, err := structured(out); ok {
		return err
	}

	for _, lp := range out {
		printInfo("%s\n", lp.GUID)
		for _, r := range lp.Packages {
			printInfo("  %-16s 0x%02X %8d", r.Type, r.Tag, r.Length)
			switch {
			case r.Language != "":
				printInfo("  %s, %d strings", r.Language, r.Strings)
			case r.OpCodes > 0:
				printInfo("  %d op-codes", r.OpCodes)
			}
			if r.Error != "" {
				printInfo("  (%s)", r.Error)
			}
			printInfo("\n")
		}
	}
	return nil
}
