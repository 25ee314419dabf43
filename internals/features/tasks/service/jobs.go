package service

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// RegisterDefaultJobs mendaftarkan job bawaan ke store.
func RegisterDefaultJobs(store *InProcessJobStore, db *gorm.DB) {
	store.Register("export_reports", exportReportsJob(db))
	store.OnComplete(func(jobID string) {
		MarkComplete(db, jobID)
	})
}

// exportReportsJob menyisir tabel reports per batch dan melaporkan
// progress per batch yang selesai diproses.
func exportReportsJob(db *gorm.DB) JobFunc {
	return func(ctx context.Context, report func(int), kwargs map[string]any) error {
		const batchSize = 100

		var total int64
		if err := db.WithContext(ctx).Table("reports").Count(&total).Error; err != nil {
			return err
		}
		if total == 0 {
			report(100)
			return nil
		}

		var processed int64
		for offset := int64(0); offset < total; offset += batchSize {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			var urls []string
			if err := db.WithContext(ctx).Table("reports").
				Order("created_at").
				Limit(batchSize).
				Offset(int(offset)).
				Pluck("url", &urls).Error; err != nil {
				return err
			}

			processed += int64(len(urls))
			report(int(processed * 100 / total))
			time.Sleep(10 * time.Millisecond)
		}
		return nil
	}
}
