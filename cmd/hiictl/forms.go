package main

import (
	"encoding/hex"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/joshuapare/hiikit/hii"
)

var (
	formsGUID string
	formsDump bool
)

func init() {
	cmd := newFormsCmd()
	cmd.Flags().StringVar(&formsGUID, "guid", "", "Package list GUID (required)")
	cmd.Flags().BoolVar(&formsDump, "dump", false, "Include a hex dump of each form package")
	cmd.MarkFlagRequired("guid")
	rootCmd.AddCommand(cmd)
}

func newFormsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forms <capture>",
		Short: "Print the IFR op-codes of a package list's forms",
		Long: `The forms command walks each form package in the package list with the
given GUID and prints its op-codes with offsets, lengths and scope flags,
followed by statement and expression counts.

Example:
  hiictl forms hii.bin --guid 8e1f5a0c-2f1d-4c8e-9d44-2b3c1a0f9e77 --dump`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForms(cmd, args)
		},
	}
}

type opReport struct {
	Offset int    `json:"offset"`
	Code   uint8  `json:"code"`
	Name   string `json:"name"`
	Length uint8  `json:"length"`
	Scope  bool   `json:"scope"`
}

type formReport struct {
	Header  string          `json:"header"`
	Length  int             `json:"length"`
	OpCodes []opReport      `json:"opcodes"`
	Stats   hii.OpCodeStats `json:"stats"`
	Error   string          `json:"error,omitempty"`
	HexDump string          `json:"dump,omitempty"`
}

func describeForm(fp hii.FormPackage) formReport {
	r := formReport{
		Header: hex.EncodeToString(fp.Bytes()[:4]),
		Length: fp.Len(),
	}
	it := fp.OpCodes()
	for {
		op, err := it.Next()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				r.Error = err.Error()
			}
			break
		}
		r.OpCodes = append(r.OpCodes, opReport{
			Offset: op.Offset,
			Code:   uint8(op.Code),
			Name:   op.Code.String(),
			Length: op.Length,
			Scope:  op.Scope,
		})
	}
	if r.Error == "" {
		stats, err := fp.CountOpCodeClasses()
		if err != nil {
			r.Error = err.Error()
		} else {
			r.Stats = stats
		}
	}
	if formsDump {
		r.HexDump = hex.Dump(fp.Bytes())
	}
	return r
}

func runForms(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	db, err := openDatabase(ctx, args[0])
	if err != nil {
		return err
	}
	l, err := lookupList(ctx, db, formsGUID)
	if err != nil {
		return err
	}
	fps, err := hii.FormPackages(l)
	if err != nil {
		return err
	}

	reports := make([]formReport, 0, len(fps))
	for _, fp := range fps {
		reports = append(reports, describeForm(fp))
	}

	if ok, err := structured(map[string]interface{}{
		"guid":  l.GUID(),
		"forms": reports,
	}); ok {
		return err
	}

	for i, r := range reports {
		printInfo("Form package %d: header %s, %d bytes\n", i, r.Header, r.Length)
		if r.HexDump != "" {
			printInfo("%s", r.HexDump)
		}
		depth := 0
		for _, op := range r.OpCodes {
			if op.Code == uint8(hii.IFREndOp) && depth > 0 {
				depth--
			}
			printInfo("  %04X  %*s%s len=%d", op.Offset, depth*2, "", op.Name, op.Length)
			if op.Scope {
				printInfo(" scope")
				depth++
			}
			printInfo("\n")
		}
		if r.Error != "" {
			printInfo("  error: %s\n", r.Error)
			continue
		}
		printInfo("  %d op-codes: %d statements, %d expressions, %d unknown\n",
			r.Stats.Total(), r.Stats.Statements, r.Stats.Expressions, r.Stats.Unknown)
	}
	if len(reports) == 0 {
		printInfo("No form packages in %s\n", l.GUID())
	}
	return nil
}
