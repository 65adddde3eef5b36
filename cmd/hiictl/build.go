package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/hiikit/hii"
	"github.com/joshuapare/hiikit/hii/builder"
	"github.com/joshuapare/hiikit/hii/capture"
	"github.com/joshuapare/hiikit/hii/store"
)

var buildOutput string

func init() {
	cmd := newBuildCmd()
	cmd.Flags().StringVarP(&buildOutput, "output", "o", "", "Output capture path (required); .zst, .lz4 and .xz compress")
	cmd.MarkFlagRequired("output")
	rootCmd.AddCommand(cmd)
}

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build <manifest.yaml>",
		Short: "Build a package list from a YAML manifest",
		Long: `The build command assembles a package list from a YAML manifest and
writes it as a one-list capture. The output is decoded and validated before it
is written.

Example:
  hiictl build setup.yaml -o setup.hii
  hiictl build setup.yaml -o setup.hii.zst`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, args)
		},
	}
}

func runBuild(cmd *cobra.Command, args []string) error {
	m, err := builder.LoadManifestFile(args[0])
	if err != nil {
		return err
	}
	list, err := m.Build()
	if err != nil {
		return fmt.Errorf("failed to build %s: %w", args[0], err)
	}

	l, err := hii.ParsePackageList(list)
	if err != nil {
		return err
	}
	if err := l.Validate(); err != nil {
		return err
	}
	if err := capture.Save(buildOutput, builder.Database(list)); err != nil {
		return err
	}

	digest := store.DigestOf(list)
	if ok, err := structured(map[string]interface{}{
		"output": buildOutput,
		"guid":   l.GUID(),
		"size":   len(list),
		"digest": digest.String(),
	}); ok {
		return err
	}
	printInfo("Wrote %s: package list %s, %d bytes\n", buildOutput, l.GUID(), len(list))
	printVerbose("Digest: %s\n", digest)
	return nil
}
