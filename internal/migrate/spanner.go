package migrate

import (
	"context"
	"fmt"
	"io/fs"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	"cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	instance "cloud.google.com/go/spanner/admin/instance/apiv1"
	"cloud.google.com/go/spanner/admin/instance/apiv1/instancepb"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Spanner creates the instance and database when missing and applies the DDL
// files under Dir. Tables and indexes that already exist are skipped, so
// running it twice is a no-op.
type Spanner struct {
	Path DatabasePath
	FS   fs.FS
	Dir  string
	// CreateInstance is set against the emulator, where instances are cheap.
	CreateInstance bool
	Log            *zap.Logger
}

func (m *Spanner) Run(ctx context.Context) error {
	if m.CreateInstance {
		if err := m.ensureInstance(ctx); err != nil {
			return fmt.Errorf("failed to ensure instance: %w", err)
		}
	}

	admin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create admin client: %w", err)
	}
	defer admin.Close()

	if err := m.ensureDatabase(ctx, admin); err != nil {
		return fmt.Errorf("failed to ensure database: %w", err)
	}
	if err := m.apply(ctx, admin); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

func (m *Spanner) ensureInstance(ctx context.Context) error {
	admin, err := instance.NewInstanceAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create instance admin client: %w", err)
	}
	defer admin.Close()

	_, err = admin.GetInstance(ctx, &instancepb.GetInstanceRequest{Name: m.Path.InstanceName()})
	if err == nil {
		m.Log.Info("instance exists", zap.String("instance", m.Path.Instance))
		return nil
	}
	if status.Code(err) != codes.NotFound {
		return fmt.Errorf("failed to get instance: %w", err)
	}

	m.Log.Info("creating instance", zap.String("instance", m.Path.Instance))
	op, err := admin.CreateInstance(ctx, &instancepb.CreateInstanceRequest{
		Parent:     m.Path.ProjectName(),
		InstanceId: m.Path.Instance,
		Instance: &instancepb.Instance{
			Config:      m.Path.ProjectName() + "/instanceConfigs/emulator-config",
			DisplayName: "Storefront Development",
			NodeCount:   1,
		},
	})
	if status.Code(err) == codes.AlreadyExists {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create instance: %w", err)
	}
	if _, err := op.Wait(ctx); err != nil && status.Code(err) != codes.AlreadyExists {
		return fmt.Errorf("failed to wait for instance creation: %w", err)
	}
	return nil
}

func (m *Spanner) ensureDatabase(ctx context.Context, admin *database.DatabaseAdminClient) error {
	_, err := admin.GetDatabase(ctx, &databasepb.GetDatabaseRequest{Name: m.Path.String()})
	if err == nil {
		m.Log.Info("database exists", zap.String("database", m.Path.Database))
		return nil
	}
	if status.Code(err) != codes.NotFound {
		return fmt.Errorf("failed to get database: %w", err)
	}

	m.Log.Info("creating database", zap.String("database", m.Path.Database))
	op, err := admin.CreateDatabase(ctx, &databasepb.CreateDatabaseRequest{
		Parent:          m.Path.InstanceName(),
		CreateStatement: fmt.Sprintf("CREATE DATABASE `%s`", m.Path.Database),
	})
	if status.Code(err) == codes.AlreadyExists {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	if _, err := op.Wait(ctx); err != nil {
		return fmt.Errorf("failed to wait for database creation: %w", err)
	}
	return nil
}

func (m *Spanner) apply(ctx context.Context, admin *database.DatabaseAdminClient) error {
	files, err := LoadFiles(m.FS, m.Dir)
	if err != nil {
		return err
	}

	current, err := admin.GetDatabaseDdl(ctx, &databasepb.GetDatabaseDdlRequest{Database: m.Path.String()})
	if err != nil {
		return fmt.Errorf("failed to read current schema: %w", err)
	}
	existing := current.GetStatements()

	for _, f := range files {
		pending := PendingDDL(existing, f.Statements)
		if len(pending) == 0 {
			m.Log.Info("migration already applied", zap.String("file", f.Name))
			continue
		}

		op, err := admin.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
			Database:   m.Path.String(),
			Statements: pending,
		})
		if err != nil {
			return fmt.Errorf("failed to start DDL update for %s: %w", f.Name, err)
		}
		if err := op.Wait(ctx); err != nil {
			return fmt.Errorf("failed to apply DDL for %s: %w", f.Name, err)
		}

		existing = append(existing, pending...)
		m.Log.Info("migration applied", zap.String("file", f.Name), zap.Int("statements", len(pending)))
	}
	return nil
}
