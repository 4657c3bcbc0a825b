package operation

import (
	"context"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/syncopy/pkg/entity"
	"github.com/walteh/syncopy/pkg/remote"
)

// 🔗 copyLink creates a link to the same target and target version. Targets
// are never copied. A target that no longer exists yields ErrBrokenLinkTarget.
func (w *walker) copyLink(ctx context.Context, n entity.Link, destinationID string) (string, error) {
	src := n.Entity()

	if err := w.checkName(ctx, destinationID, src.Name, ""); err != nil {
		return "", err
	}
	if src.LinksTo == nil {
		return "", errors.Errorf("link %s has no target: %w", src.ID, ErrBrokenLinkTarget)
	}

	target := *src.LinksTo
	if src.LinksTo.TargetVersion != nil {
		v := *src.LinksTo.TargetVersion
		target.TargetVersion = &v
	}

	stored, err := w.client.StoreEntity(ctx, &remote.Entity{
		Name:         src.Name,
		ParentID:     destinationID,
		ConcreteType: remote.TypeLink,
		LinksTo:      &target,
	}, nil)
	if errors.Is(err, remote.ErrNotFound) {
		return "", errors.Errorf("target %s: %w: %s", target.TargetID, ErrBrokenLinkTarget, err)
	}
	if err != nil {
		return "", errors.Errorf("storing: %w", err)
	}
	return stored.ID, nil
}
