package jobs

import (
	"context"
	"fmt"
	"time"

	"servicelog-backend/internal/logger"
	"servicelog-backend/internal/service"
)

// SweepOrphanedDocuments deletes uploaded invoices that no service record
// references once they are older than the retention period.
func (jr *JobRunner) SweepOrphanedDocuments() {
	jr.runWithRecovery("SweepOrphanedDocuments", func() {
		deleted, err := jr.sweepOrphanedDocuments(context.Background())
		if err != nil {
			logger.Error("Failed to sweep orphaned documents", "error", err)
		}
		logger.Info("Swept orphaned documents", "count", deleted)
	})
}

func (jr *JobRunner) sweepOrphanedDocuments(ctx context.Context) (int, error) {
	retention := time.Duration(jr.config.Storage.OrphanRetentionDays) * 24 * time.Hour
	cutoff := jr.clock.Now().Add(-retention)

	files, err := jr.storage.ListFiles(ctx, service.DocumentPrefix)
	if err != nil {
		return 0, fmt.Errorf("list documents: %w", err)
	}

	deleted := 0
	for _, f := range files {
		if !f.ModTime.Before(cutoff) {
			continue
		}
		inUse, err := jr.records.InvoiceKeyInUse(ctx, f.Key)
		if err != nil {
			return deleted, fmt.Errorf("check document %s: %w", f.Key, err)
		}
		if inUse {
			continue
		}
		if err := jr.storage.DeleteFile(ctx, f.Key); err != nil {
			logger.Warn("Failed to delete orphaned document", "key", f.Key, "error", err)
			continue
		}
		logger.Debug("Deleted orphaned document", "key", f.Key, "modified", f.ModTime)
		deleted++
	}
	return deleted, nil
}
