package db

import (
	"fmt"

	"dcjobs/internal/directory"
	"dcjobs/internal/job"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}

func AutoMigrateAndIndexes(gdb *gorm.DB) error {
	// Tables
	if err := gdb.AutoMigrate(
		&job.Job{},
		&directory.Employee{},
		&directory.Code{},
		&directory.User{},
	); err != nil {
		return err
	}

	// Helpful indexes for the dashboard filters
	stmts := []string{
		`create index if not exists idx_jobs_received on jobs(job_received_date);`,
		`create index if not exists idx_jobs_client_name on jobs(client_name);`,
		`create index if not exists idx_jobs_status_received on jobs(status, job_received_date);`,
	}
	for _, s := range stmts {
		if err := gdb.Exec(s).Error; err != nil {
			return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
		}
	}

	return nil
}
