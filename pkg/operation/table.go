package operation

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/syncopy/pkg/entity"
	"github.com/walteh/syncopy/pkg/remote"
)

// 📊 copyTable creates a table with the same columns and rows. Column
// definitions are shared with the source, not copied.
func (w *walker) copyTable(ctx context.Context, n entity.Table, destinationID string) (string, error) {
	src := n.Entity()

	if err := w.checkName(ctx, destinationID, src.Name, remote.TypeTable); err != nil {
		return "", err
	}

	rows, err := w.client.QueryTable(ctx, src.ID)
	if err != nil {
		return "", errors.Errorf("querying rows: %w", err)
	}

	schema := &remote.Entity{
		Name:         src.Name,
		ParentID:     destinationID,
		ConcreteType: remote.TypeTable,
		ColumnIDs:    append([]string(nil), src.ColumnIDs...),
	}
	if w.opts.TableAnnotations {
		schema.Annotations = src.CloneAnnotations()
	}

	var stored *remote.Entity
	if rows.Len() == 0 {
		zerolog.Ctx(ctx).Debug().Str("id", src.ID).Msg("no rows, storing schema only")
		stored, err = w.client.StoreEntity(ctx, schema, nil)
	} else {
		zerolog.Ctx(ctx).Debug().Str("id", src.ID).Int("rows", rows.Len()).Msg("storing schema with rows")
		stored, err = w.client.StoreTable(ctx, schema, rows)
	}
	if err != nil {
		return "", errors.Errorf("storing: %w", err)
	}
	return stored.ID, nil
}
