// Command janitor runs a single cleanup pass over the upload directory and
// prints what it removed. It uses the same configuration as the API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/johnquangdev/summaro/internal/infrastructure/storage"
	"github.com/johnquangdev/summaro/internal/usecase/janitor"
	"github.com/johnquangdev/summaro/pkg/config"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "list the upload directory usage without deleting")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	uploads, err := storage.NewLocalStore(cfg.Upload.Dir)
	if err != nil {
		log.Fatalf("Failed to open upload directory: %v", err)
	}

	if *dryRun {
		files, err := uploads.List()
		if err != nil {
			log.Fatalf("Failed to list uploads: %v", err)
		}
		var total int64
		for _, f := range files {
			total += f.Size
		}
		fmt.Printf("%d files, %.2fMB of %dMB\n", len(files), float64(total)/(1<<20), cfg.Janitor.MaxStorageMB)
		return
	}

	j := janitor.New(uploads, janitor.Options{
		MaxBytes:    cfg.Janitor.MaxStorageMB << 20,
		TargetRatio: cfg.Janitor.TargetRatio,
		Interval:    cfg.Janitor.Interval,
	}, logger)

	report, err := j.Sweep(context.Background(), "manual")
	if err != nil {
		log.Fatalf("Sweep failed: %v", err)
	}

	fmt.Printf("run %s: %.2fMB -> %.2fMB\n", report.RunID, float64(report.TotalBefore)/(1<<20), float64(report.TotalAfter)/(1<<20))
	for _, name := range report.Deleted {
		fmt.Printf("  deleted %s\n", name)
	}
	for _, name := range report.Failed {
		fmt.Printf("  failed  %s\n", name)
	}
}
