package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/reflectoring/blogkit/cmd/internal/bootstrap"
	corpuscmd "github.com/reflectoring/blogkit/internal/commands/corpus"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runImport(os.Args[1:]); err != nil {
		log.Fatalf("blogkit import: %v", err)
	}
}

func runImport(args []string) error {
	fs := flag.NewFlagSet("blogkit-import", flag.ExitOnError)
	contentDir := fs.String("content-dir", "content", "Path to the article content root")
	pattern := fs.String("pattern", "*.md", "Glob pattern applied when discovering article files")
	directory := fs.String("directory", ".", "Directory to import, relative to the content root")
	driver := fs.String("storage-driver", "sqlite", "Catalog storage driver: sqlite or postgres")
	dsn := fs.String("storage-dsn", "file:blogkit.db?_fk=1", "Catalog storage DSN")
	sync := fs.Bool("sync", false, "Reconcile the catalog instead of a plain import")
	updateExisting := fs.Bool("update-existing", true, "Overwrite catalog records when files changed")
	deleteOrphaned := fs.Bool("delete-orphaned", false, "Remove catalog records without matching files (sync only)")
	dryRun := fs.Bool("dry-run", false, "Preview changes without persisting records")
	migrate := fs.Bool("migrate", true, "Create the catalog schema when missing")
	logLevel := fs.String("log-level", "info", "Log level for diagnostic output")

	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{
		ContentDir:    *contentDir,
		Pattern:       *pattern,
		Recursive:     true,
		Catalog:       true,
		StorageDriver: *driver,
		StorageDSN:    *dsn,
		LogLevel:      *logLevel,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	defer module.Module.Close()

	catalog := module.Module.Catalog()
	if catalog == nil {
		return fmt.Errorf("catalog not configured; ensure Features.Catalog is enabled")
	}

	ctx := context.Background()
	if *migrate {
		if err := module.Module.Migrate(ctx); err != nil {
			return err
		}
	}

	gates := corpuscmd.FeatureGates{}

	if *sync {
		handler := corpuscmd.NewSyncDirectoryHandler(catalog, module.Logger, gates)
		if err := handler.Execute(ctx, corpuscmd.SyncDirectoryCommand{
			Directory:      *directory,
			UpdateExisting: *updateExisting,
			DeleteOrphaned: *deleteOrphaned,
			DryRun:         *dryRun,
		}); err != nil {
			return fmt.Errorf("execute sync command: %w", err)
		}
		fmt.Fprintln(os.Stdout, "catalog sync command executed successfully")
		return nil
	}

	handler := corpuscmd.NewImportDirectoryHandler(catalog, module.Logger, gates)
	if err := handler.Execute(ctx, corpuscmd.ImportDirectoryCommand{
		Directory:      *directory,
		UpdateExisting: *updateExisting,
		DryRun:         *dryRun,
	}); err != nil {
		return fmt.Errorf("execute import command: %w", err)
	}
	fmt.Fprintln(os.Stdout, "catalog import command executed successfully")
	return nil
}
