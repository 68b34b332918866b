package impl

import (
	"context"

	"github.com/sidereusnuntius/gosocial/internal/db"
	"github.com/sidereusnuntius/gosocial/internal/domain"
)

func (d *dbImpl) GetTheme(ctx context.Context) (domain.Theme, error) {
	unlock := d.locks.RLock(db.ThemeKey)
	defer unlock()
	return d.theme, nil
}

func (d *dbImpl) PutTheme(ctx context.Context, theme domain.Theme) error {
	unlock := d.locks.Lock(db.ThemeKey)
	defer unlock()

	if err := d.persist(db.ThemeKey, theme); err != nil {
		return err
	}
	d.theme = theme
	return nil
}

func (d *dbImpl) IsSeeded(ctx context.Context) (bool, error) {
	unlock := d.locks.RLock(db.SeededKey)
	defer unlock()
	return d.seeded, nil
}

func (d *dbImpl) MarkSeeded(ctx context.Context) error {
	unlock := d.locks.Lock(db.SeededKey)
	defer unlock()

	if err := d.persist(db.SeededKey, true); err != nil {
		return err
	}
	d.seeded = true
	return nil
}
