package operation

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/syncopy/pkg/entity"
	"github.com/walteh/syncopy/pkg/remote"
)

// 📄 copyFile creates a copy of a file under destinationID. File content is
// only transferred when the acting user does not own the source file handle.
func (w *walker) copyFile(ctx context.Context, n entity.File, destinationID string) (string, error) {
	src := n.Entity()
	if w.opts.Version != nil {
		pinned, err := w.client.GetEntity(ctx, src.ID, w.opts.Version)
		if err != nil {
			return "", errors.Errorf("getting version %d: %w", *w.opts.Version, err)
		}
		src = pinned
	}

	if !w.opts.Update {
		if err := w.checkName(ctx, destinationID, src.Name, ""); err != nil {
			return "", err
		}
	}

	activity, err := w.provenance(ctx, src)
	if err != nil {
		return "", err
	}

	createdBy, err := w.handleCreator(ctx, src)
	if err != nil {
		return "", err
	}

	user, err := w.actingUser(ctx)
	if err != nil {
		return "", err
	}

	next := &remote.Entity{
		Name:         src.Name,
		ParentID:     destinationID,
		ConcreteType: remote.TypeFile,
		Annotations:  src.CloneAnnotations(),
	}

	logger := zerolog.Ctx(ctx).With().Str("id", src.ID).Int("version", src.VersionNumber).Logger()

	switch {
	case createdBy != "" && createdBy == user.OwnerID:
		logger.Debug().Str("handle", src.DataFileHandleID).Msg("reusing file handle")
		next.DataFileHandleID = src.DataFileHandleID
	case src.ExternalURL != "":
		logger.Debug().Str("url", src.ExternalURL).Msg("linking external file")
		next.ExternalURL = src.ExternalURL
	default:
		handle, err := w.rehost(ctx, src)
		if err != nil {
			return "", err
		}
		logger.Debug().Str("handle", handle).Msg("rehosted file content")
		next.DataFileHandleID = handle
	}

	stored, err := w.client.StoreEntity(ctx, next, activity)
	if err != nil {
		return "", errors.Errorf("storing: %w", err)
	}
	return stored.ID, nil
}

// provenance resolves the activity to record on the copy of src.
func (w *walker) provenance(ctx context.Context, src *remote.Entity) (*remote.Activity, error) {
	switch w.opts.SetProvenance {
	case ProvenanceTraceback:
		version := src.VersionNumber
		return &remote.Activity{
			Name: "Copied file",
			Used: []remote.Used{{Reference: remote.Reference{TargetID: src.ID, TargetVersion: &version}}},
		}, nil
	case ProvenanceExisting:
		version := src.VersionNumber
		a, err := w.client.GetProvenance(ctx, src.ID, &version)
		if errors.Is(err, remote.ErrNotFound) {
			zerolog.Ctx(ctx).Debug().Str("id", src.ID).Msg("source has no provenance")
			return nil, nil
		}
		if err != nil {
			return nil, errors.Errorf("getting provenance: %w", err)
		}
		copied := *a
		copied.ID = ""
		return &copied, nil
	case ProvenanceNone:
		return nil, nil
	}
	return nil, errors.Errorf("set provenance %q: %w", w.opts.SetProvenance, ErrInvalidArgument)
}

// handleCreator returns who created the file handle src points at, or "" when
// the handle is not listed.
func (w *walker) handleCreator(ctx context.Context, src *remote.Entity) (string, error) {
	handles, err := w.client.ListFileHandles(ctx, src.ID, src.VersionNumber)
	if err != nil {
		return "", errors.Errorf("listing file handles: %w", err)
	}
	for _, h := range handles {
		if h.ID == src.DataFileHandleID {
			return h.CreatedBy, nil
		}
	}
	return "", nil
}

func (w *walker) actingUser(ctx context.Context) (*remote.UserProfile, error) {
	if w.user != nil {
		return w.user, nil
	}
	u, err := w.client.GetUserProfile(ctx)
	if err != nil {
		return nil, errors.Errorf("getting user profile: %w", err)
	}
	w.user = u
	return u, nil
}

// rehost downloads the content of src into a scratch dir and uploads it as a
// new file handle owned by the acting user.
func (w *walker) rehost(ctx context.Context, src *remote.Entity) (string, error) {
	scratch, err := os.MkdirTemp("", "syncopy-file-")
	if err != nil {
		return "", errors.Errorf("creating scratch dir: %w", err)
	}
	defer os.RemoveAll(scratch)

	local, err := w.client.DownloadFile(ctx, src.ID, src.VersionNumber, scratch)
	if err != nil {
		return "", errors.Errorf("downloading: %w", err)
	}

	handle, err := w.client.UploadFile(ctx, local)
	if err != nil {
		return "", errors.Errorf("uploading: %w", err)
	}
	return handle.ID, nil
}
