package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"sitesnap/internal/app"
	"sitesnap/internal/domain/entity"
	"sitesnap/internal/errors"
	"sitesnap/internal/util"
)

func runAnalytics(ctx context.Context, a *app.App, args []string, out io.Writer) error {
	action, args, err := requireAction("analytics", args, "show", "update")
	if err != nil {
		return err
	}

	if action == "show" {
		analytics, err := a.Catalog.GetAnalytics(ctx)
		if err != nil {
			return err
		}

		return printJSON(out, analytics)
	}

	fs := newFlags("analytics update")
	visitors := fs.Int("visitors", 0, "Total visitors")
	inquiries := fs.Int("inquiries", 0, "WhatsApp inquiries")
	views := fs.Int("views", 0, "Product views")
	if err := fs.Parse(args); err != nil {
		return err
	}

	set := setFlags(fs)
	var updates entity.AnalyticsUpdate
	if set["visitors"] {
		updates.TotalVisitors = visitors
	}
	if set["inquiries"] {
		updates.WhatsappInquiries = inquiries
	}
	if set["views"] {
		updates.ProductViews = views
	}

	analytics, err := a.Catalog.UpdateAnalytics(ctx, updates)
	if err != nil {
		return err
	}

	return printJSON(out, analytics)
}

func runExport(ctx context.Context, a *app.App, args []string, out io.Writer) error {
	fs := newFlags("export")
	file := fs.String("out", "", "Write to this file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	data, err := a.Sync.ExportJSON(ctx)
	if err != nil {
		return err
	}

	if *file == "" {
		_, err = fmt.Fprintln(out, string(data))

		return err
	}

	if err := os.WriteFile(*file, data, 0o600); err != nil {
		return errors.Wrap(err, "failed to write export")
	}

	_, err = fmt.Fprintf(out, "Wrote %s (%s, sha256 %s).\n", *file, util.FormatBytes(len(data)), util.Checksum(data))

	return err
}

func runImport(ctx context.Context, a *app.App, args []string, out io.Writer) error {
	fs := newFlags("import")
	file := fs.String("in", "", "Export file to load (- for stdin)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return errors.New("import: -in is required")
	}

	var (
		data []byte
		err  error
	)
	if *file == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(*file)
	}
	if err != nil {
		return errors.Wrap(err, "failed to read import")
	}

	if err := a.Sync.ImportJSON(ctx, data); err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, "Import complete.")

	return err
}

func runReset(ctx context.Context, a *app.App, _ []string, out io.Writer) error {
	if err := a.Sync.ResetToDefaults(ctx); err != nil {
		return err
	}

	_, err := fmt.Fprintln(out, "Demo data restored.")

	return err
}

func runClear(ctx context.Context, a *app.App, _ []string, out io.Writer) error {
	if err := a.Sync.ClearAll(ctx); err != nil {
		return err
	}

	_, err := fmt.Fprintln(out, "All data cleared.")

	return err
}

func runStorefront(ctx context.Context, a *app.App, _ []string, out io.Writer) error {
	catalog, err := a.Storefront.Catalog(ctx)
	if err != nil {
		return err
	}

	return printJSON(out, catalog)
}

func runQR(ctx context.Context, a *app.App, args []string, out io.Writer) error {
	fs := newFlags("qr")
	file := fs.String("out", "storefront-qr.png", "PNG output file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	png, err := a.Storefront.QRCode(ctx)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*file, png, 0o600); err != nil {
		return errors.Wrap(err, "failed to write QR code")
	}

	_, err = fmt.Fprintf(out, "Wrote %s (%s).\n", *file, util.FormatBytes(len(png)))

	return err
}
