package operation

import (
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/syncopy/pkg/entity"
)

var (
	// ErrDuplicateName means the destination already holds an entity with the copied name
	ErrDuplicateName = errors.Base("duplicate name")
	// ErrInvalidArgument means an option value or combination cannot be honored
	ErrInvalidArgument = errors.Base("invalid argument")
	// ErrUnsupportedEntityType means the source holds an entity kind that cannot be copied
	ErrUnsupportedEntityType = errors.BaseWrap(entity.ErrUnsupportedType, "cannot copy entity")
	// ErrBrokenLinkTarget is the reason recorded for links whose target no longer exists
	ErrBrokenLinkTarget = errors.Base("link target no longer exists")
)
