package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/joylabs/catalogsync/internal/logger"
	"github.com/joylabs/catalogsync/internal/store"
	"github.com/joylabs/catalogsync/models"
)

// imageInvalidator evicts cached media in response to change notifications.
// Eviction is keyed by the image object's remote identity, never by URL:
// the remote can serve new content behind an unchanged URL, so the URL is
// useless as a staleness signal.
type imageInvalidator struct {
	cache       store.ImageFileCache
	catalog     store.CatalogRepository
	coordinator SyncCoordinator
	logger      *logger.Logger
}

// NewImageInvalidator wires an ImageInvalidator over the on-disk image cache
// and the local replica. Evictions are announced on the coordinator's event
// stream so display layers can drop their in-memory copies too.
func NewImageInvalidator(cache store.ImageFileCache, catalog store.CatalogRepository, coordinator SyncCoordinator, l *logger.Logger) ImageInvalidator {
	return &imageInvalidator{
		cache:       cache,
		catalog:     catalog,
		coordinator: coordinator,
		logger:      l,
	}
}

// OnNotification evicts the cached media the notification makes stale. A
// notification about an IMAGE object evicts that image directly; a
// notification about an image-owning object evicts every image the locally
// stored copy references. Unknown objects and objects without images are
// no-ops. Eviction is idempotent, so over-evicting on a duplicate
// notification costs only a re-download.
func (inv *imageInvalidator) OnNotification(ctx context.Context, notification models.ChangeNotification) error {
	objectType := notification.Data.ObjectType
	objectID := notification.Data.ObjectID
	if objectID == "" || !models.KnownType(objectType) {
		return nil
	}

	imageIDs := []string{objectID}
	if objectType != models.TypeImage {
		obj, err := inv.catalog.GetObject(ctx, objectType, objectID)
		if errors.Is(err, store.ErrObjectNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("loading %s %s for image invalidation: %w", objectType, objectID, err)
		}
		imageIDs = obj.ImageIDs()
	}

	for _, imageID := range imageIDs {
		if err := inv.cache.Evict(imageID); err != nil {
			return fmt.Errorf("evicting cached image %s: %w", imageID, err)
		}
		inv.coordinator.Publish(Event{Kind: EventImageInvalidated, ObjectID: imageID})
		inv.logger.Debug().
			Str("func", "OnNotification").
			Str("image_id", imageID).
			Str("object_type", objectType).
			Msg("cached image evicted")
	}
	return nil
}
