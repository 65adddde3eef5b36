package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/hiikit/hii"
	"github.com/joshuapare/hiikit/hii/capture"
	"github.com/joshuapare/hiikit/hii/store"
)

// openDatabase loads a capture and registers its lists into an in-memory
// store, which validates every list on the way in.
func openDatabase(ctx context.Context, path string) (*store.Memory, error) {
	printVerbose("Opening capture: %s\n", path)
	c, err := capture.Load(path)
	if err != nil {
		return nil, err
	}
	defer c.Close()
	printVerbose("Codec: %s, %d bytes\n", c.Codec, len(c.Data))

	db, err := store.NewMemoryFromSnapshot(ctx, c.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return db, nil
}

// lookupList resolves --guid against db.
func lookupList(ctx context.Context, db *store.Memory, guidText string) (hii.PackageList, error) {
	guid, err := hii.ParseGUID(guidText)
	if err != nil {
		return hii.PackageList{}, err
	}
	return store.FindPackageList(ctx, db, guid)
}

// commandContext returns the command's context, or Background when the
// command runs outside Execute (as in tests).
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
