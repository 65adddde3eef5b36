package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/hiikit/hii"
	"github.com/joshuapare/hiikit/hii/store"
)

func init() {
	rootCmd.AddCommand(newListsCmd())
}

func newListsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lists <capture>",
		Short: "List the package lists in a capture",
		Long: `The lists command prints one line per package list: its handle, GUID,
total size, package count and BLAKE3 digest.

Example:
  hiictl lists hii.bin
  hiictl lists hii.bin.zst --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLists(cmd, args)
		},
	}
}

type listReport struct {
	Handle   store.Handle `json:"handle"`
	GUID     hii.GUID     `json:"guid"`
	Size     int          `json:"size"`
	Packages int          `json:"packages"`
	Digest   string       `json:"digest"`
}

func runLists(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	db, err := openDatabase(ctx, args[0])
	if err != nil {
		return err
	}

	var reports []listReport
	for _, h := range db.Handles() {
		info, err := db.Stat(h)
		if err != nil {
			return err
		}
		l, err := store.GetPackageList(ctx, db, h)
		if err != nil {
			return err
		}
		pkgs, err := l.AllPackages()
		if err != nil {
			return fmt.Errorf("list %s: %w", info.GUID, err)
		}
		reports = append(reports, listReport{
			Handle:   h,
			GUID:     info.GUID,
			Size:     info.Size,
			Packages: len(pkgs),
			Digest:   info.Digest.String(),
		})
	}

	if ok, err := structured(map[string]interface{}{
		"capture": args[0],
		"lists":   reports,
		"count":   len(reports),
	}); ok {
		return err
	}

	for _, r := range reports {
		printInfo("%3d  %s  %8d bytes  %2d packages  %s\n", r.Handle, r.GUID, r.Size, r.Packages, r.Digest[:16])
	}
	printInfo("\nTotal: %d package lists\n", len(reports))
	return nil
}
