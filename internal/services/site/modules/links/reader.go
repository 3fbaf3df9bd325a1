package links

import (
	"context"

	apperrors "github.com/jppf-project/site/internal/services/site/platform/errors"
	"github.com/jppf-project/site/internal/services/site/storage"
)

// GroupedLinkReader issues the ordered directory reads for one request.
// Every call re-executes its query; nothing is cached.
type GroupedLinkReader struct {
	dir storage.LinkDirectory
}

// NewGroupedLinkReader binds a reader to an open directory.
func NewGroupedLinkReader(dir storage.LinkDirectory) GroupedLinkReader {
	return GroupedLinkReader{dir: dir}
}

// FetchGroups returns every group ascending by ID.
func (r GroupedLinkReader) FetchGroups(ctx context.Context) ([]storage.LinkGroup, error) {
	if r.dir == nil {
		return nil, apperrors.DataSourceUnavailable("link directory is not configured", nil)
	}
	groups, err := r.dir.ListLinkGroups(ctx)
	if err != nil {
		return nil, apperrors.DataSourceUnavailable("fetch link groups", err)
	}
	return groups, nil
}

// FetchLinksForGroup returns the group's links ascending by ID. An absent or
// empty group yields an empty slice.
func (r GroupedLinkReader) FetchLinksForGroup(ctx context.Context, groupID int64) ([]storage.Link, error) {
	if r.dir == nil {
		return nil, apperrors.DataSourceUnavailable("link directory is not configured", nil)
	}
	links, err := r.dir.ListGroupLinks(ctx, groupID)
	if err != nil {
		return nil, apperrors.DataSourceUnavailable("fetch group links", err)
	}
	if links == nil {
		links = []storage.Link{}
	}
	return links, nil
}
