package links

import (
	"context"
	"log"

	apperrors "github.com/jppf-project/site/internal/services/site/platform/errors"
	"github.com/jppf-project/site/internal/services/site/storage"
	"github.com/jppf-project/site/internal/services/site/templates"
)

type service struct {
	directories storage.LinkDirectoryOpener
	snapshot    bool
	logger      *log.Logger
}

// loadDirectory reads every group and its links on one connection, released
// on every exit path. Any failure discards what was read so far.
func (s service) loadDirectory(ctx context.Context) ([]templates.LinkGroupView, error) {
	if s.directories == nil {
		return nil, apperrors.DataSourceUnavailable("link directory is not configured", nil)
	}
	dir, err := s.directories.OpenLinkDirectory(ctx, storage.ReadOptions{Snapshot: s.snapshot})
	if err != nil {
		return nil, apperrors.DataSourceUnavailable("open link directory", err)
	}
	defer func() {
		if closeErr := dir.Close(); closeErr != nil {
			s.logger.Printf("links directory close failed err=%v", closeErr)
		}
	}()

	reader := NewGroupedLinkReader(dir)
	groups, err := reader.FetchGroups(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]templates.LinkGroupView, 0, len(groups))
	for _, group := range groups {
		links, err := reader.FetchLinksForGroup(ctx, group.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, groupView(group, links))
	}
	return views, nil
}

func groupView(group storage.LinkGroup, links []storage.Link) templates.LinkGroupView {
	view := templates.LinkGroupView{
		ID:          group.ID,
		Description: group.Description,
		Links:       make([]templates.LinkView, 0, len(links)),
	}
	for _, link := range links {
		view.Links = append(view.Links, templates.LinkView{
			ID:          link.ID,
			URL:         link.URL,
			Title:       link.Title,
			Description: link.Description,
		})
	}
	return view
}
