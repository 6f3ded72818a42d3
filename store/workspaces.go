// Package store keeps workspaces in the session database. A workspace is
// always written as a whole snapshot: Update loads it, hands it to a pure
// edit function and replaces every row in one transaction.
package store

import (
	"cgpa-calculator/models"
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotFound = errors.New("workspace not found")

type Workspaces struct {
	db *gorm.DB
}

func NewWorkspaces(db *gorm.DB) *Workspaces {
	return &Workspaces{db: db}
}

func ordered(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}

func load(tx *gorm.DB, id string) (models.Workspace, error) {
	var rec models.WorkspaceRecord
	err := tx.
		Preload("Grades", ordered).
		Preload("Semesters", ordered).
		Preload("Semesters.Subjects", ordered).
		First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Workspace{}, ErrNotFound
	}
	if err != nil {
		return models.Workspace{}, errors.Wrapf(err, "load workspace %s", id)
	}
	return rec.ToWorkspace(), nil
}

func deleteChildren(tx *gorm.DB, id string) error {
	for _, model := range []interface{}{&models.SubjectRecord{}, &models.SemesterRecord{}, &models.GradeRecord{}} {
		if err := tx.Where("workspace_id = ?", id).Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

func writeChildren(tx *gorm.DB, grades []models.GradeRecord, semesters []models.SemesterRecord, subjects []models.SubjectRecord) error {
	if len(grades) > 0 {
		if err := tx.Create(&grades).Error; err != nil {
			return err
		}
	}
	if len(semesters) > 0 {
		if err := tx.Omit(clause.Associations).Create(&semesters).Error; err != nil {
			return err
		}
	}
	if len(subjects) > 0 {
		if err := tx.Create(&subjects).Error; err != nil {
			return err
		}
	}
	return nil
}

// Create stores ws, assigning an id when it has none.
func (s *Workspaces) Create(ctx context.Context, ws models.Workspace) (models.Workspace, error) {
	ws = ws.WithSemesters(ws.Semesters)
	if ws.ID == "" {
		ws.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	ws.CreatedAt, ws.UpdatedAt = now, now
	ws.Version = 1

	rec, grades, semesters, subjects := ws.ToRecord()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&rec).Error; err != nil {
			return err
		}
		return writeChildren(tx, grades, semesters, subjects)
	})
	if err != nil {
		return models.Workspace{}, errors.Wrap(err, "create workspace")
	}
	return ws, nil
}

func (s *Workspaces) Load(ctx context.Context, id string) (models.Workspace, error) {
	return load(s.db.WithContext(ctx), id)
}

// Update replaces workspace id with the snapshot fn returns and bumps its
// version. An error from fn is returned as is and nothing is written.
func (s *Workspaces) Update(ctx context.Context, id string, fn func(models.Workspace) (models.Workspace, error)) (models.Workspace, error) {
	var out models.Workspace
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := load(tx, id)
		if err != nil {
			return err
		}
		next, err := fn(current)
		if err != nil {
			return err
		}
		next = next.WithSemesters(next.Semesters)
		next.ID = id
		next.CreatedAt = current.CreatedAt
		next.Version = current.Version + 1
		next.UpdatedAt = time.Now().UTC()

		rec, grades, semesters, subjects := next.ToRecord()
		res := tx.Model(&models.WorkspaceRecord{}).Where("id = ?", id).Updates(map[string]interface{}{
			"include_percentage": rec.IncludePercentage,
			"version":            rec.Version,
			"updated_at":         rec.UpdatedAt,
		})
		if res.Error != nil {
			return errors.Wrapf(res.Error, "update workspace %s", id)
		}
		if err := deleteChildren(tx, id); err != nil {
			return errors.Wrapf(err, "clear workspace %s", id)
		}
		if err := writeChildren(tx, grades, semesters, subjects); err != nil {
			return errors.Wrapf(err, "write workspace %s", id)
		}
		out = next
		return nil
	})
	if err != nil {
		return models.Workspace{}, err
	}
	return out, nil
}

func (s *Workspaces) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.WorkspaceRecord{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return errors.Wrapf(err, "find workspace %s", id)
		}
		if count == 0 {
			return ErrNotFound
		}
		if err := deleteChildren(tx, id); err != nil {
			return errors.Wrapf(err, "clear workspace %s", id)
		}
		if err := tx.Where("id = ?", id).Delete(&models.WorkspaceRecord{}).Error; err != nil {
			return errors.Wrapf(err, "delete workspace %s", id)
		}
		return nil
	})
}

// PurgeIdle deletes workspaces not updated since before and reports how
// many were removed.
func (s *Workspaces) PurgeIdle(ctx context.Context, before time.Time) (int, error) {
	var ids []string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.WorkspaceRecord{}).Where("updated_at < ?", before.UTC()).Pluck("id", &ids).Error; err != nil {
			return err
		}
		for _, id := range ids {
			if err := deleteChildren(tx, id); err != nil {
				return err
			}
		}
		if len(ids) == 0 {
			return nil
		}
		return tx.Where("id IN ?", ids).Delete(&models.WorkspaceRecord{}).Error
	})
	if err != nil {
		return 0, errors.Wrap(err, "purge idle workspaces")
	}
	return len(ids), nil
}

// RunPurger calls PurgeIdle every interval until ctx is done.
func (s *Workspaces) RunPurger(ctx context.Context, idle, interval time.Duration, log *logrus.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.PurgeIdle(ctx, time.Now().Add(-idle))
			if err != nil {
				log.WithError(err).Warn("purge idle workspaces")
				continue
			}
			if n > 0 {
				log.WithField("count", n).Info("purged idle workspaces")
			}
		}
	}
}
